package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/diamondsched/tournament-server/handlers"
	"github.com/diamondsched/tournament-server/live"
	"github.com/diamondsched/tournament-server/middleware"
	"github.com/diamondsched/tournament-server/models"
)

// SetupRoutes mounts every HTTP endpoint on the router. Standings and seeds
// are public reads; anything that mutates tournament state requires an
// organizer or admin token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	hub *live.Hub,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	gameHandler *handlers.GameHandler,
	standingsHandler *handlers.StandingsHandler,
	reportHandler *handlers.ReportHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		handlers.ServeWs(hub, w, r)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListTournaments)
		r.Get("/{tournamentID}", tournamentHandler.GetTournament)
		r.Get("/{tournamentID}/games", gameHandler.ListTournamentGames)
		r.Get("/{tournamentID}/standings", standingsHandler.GetPoolStandings)
		r.Get("/{tournamentID}/seeds", standingsHandler.GetPlayoffSeeds)
		r.Get("/{tournamentID}/playoff-formats", tournamentHandler.AvailablePlayoffFormats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(models.RoleOrganizer, models.RoleAdmin))

			r.Put("/{tournamentID}/playoff-config", tournamentHandler.ConfigurePlayoffs)
			r.Post("/{tournamentID}/reports", reportHandler.ExportPoolPlayReport)
		})
	})

	router.Route("/games", func(r chi.Router) {
		r.Get("/{gameID}", gameHandler.GetGame)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(models.RoleOrganizer, models.RoleAdmin))

			r.Put("/{gameID}/result", gameHandler.RecordResult)
		})
	})
}
