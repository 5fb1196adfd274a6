package handlers

import (
	"net/http"

	"github.com/diamondsched/tournament-server/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// ListTournamentGames godoc
// @Summary Games of a tournament
// @Tags games
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Games ordered by scheduled time"
// @Router /tournaments/{tournamentID}/games [get]
func (h *GameHandler) ListTournamentGames(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.gameService.ListByTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetGame godoc
// @Summary Single game by ID
// @Tags games
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} map[string]interface{} "Game"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/{gameID} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResult godoc
// @Summary Record or correct a game result
// @Tags games
// @Description Finalizes the game with the given score or forfeit ruling and pushes refreshed standings to subscribers. Organizer only.
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID"
// @Param body body services.RecordResultInput true "Final score, innings batted, forfeit status"
// @Success 200 {object} map[string]interface{} "Updated game"
// @Failure 400 {object} map[string]string "Invalid result"
// @Failure 404 {object} map[string]string "Game not found"
// @Security BearerAuth
// @Router /games/{gameID}/result [put]
func (h *GameHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.RecordResult(r.Context(), gameID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
