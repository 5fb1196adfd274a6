package handlers

import (
	"net/http"

	"github.com/diamondsched/tournament-server/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// GetPoolStandings godoc
// @Summary Pool standings for a tournament
// @Tags standings
// @Description Returns the tiebreak-sorted standings for every pool in the tournament, recomputed from the current game results.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Standings per pool"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Failure 422 {object} map[string]string "Malformed game data"
// @Router /tournaments/{tournamentID}/standings [get]
func (h *StandingsHandler) GetPoolStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	poolStandings, err := h.standingsService.GetPoolStandings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pools": poolStandings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayoffSeeds godoc
// @Summary Playoff seed list for a tournament
// @Tags standings
// @Description Returns the ordered overall seed list for the configured playoff format and seeding pattern.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Seed list, seed 1 first"
// @Failure 400 {object} map[string]string "Playoffs not configured or configuration invalid"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{tournamentID}/seeds [get]
func (h *StandingsHandler) GetPlayoffSeeds(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	seeds, err := h.standingsService.GetPlayoffSeeds(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeds": seeds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
