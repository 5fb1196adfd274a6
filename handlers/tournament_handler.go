package handlers

import (
	"net/http"

	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// ListTournaments godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Success 200 {object} map[string]interface{} "Tournaments"
// @Router /tournaments [get]
func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTournament godoc
// @Summary Tournament with pools and teams
// @Tags tournaments
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Tournament"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{tournamentID} [get]
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AvailablePlayoffFormats godoc
// @Summary Playoff formats allowed for this tournament
// @Tags tournaments
// @Description Returns the bracket sizes the tournament can support given its number of teams.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Formats"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{tournamentID}/playoff-formats [get]
func (h *TournamentHandler) AvailablePlayoffFormats(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	formats, err := h.tournamentService.AvailablePlayoffFormats(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"formats": formats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type configurePlayoffsRequest struct {
	PlayoffFormat  models.PlayoffFormat  `json:"playoffFormat"`
	SeedingPattern models.SeedingPattern `json:"seedingPattern"`
}

// ConfigurePlayoffs godoc
// @Summary Set playoff format and seeding pattern
// @Tags tournaments
// @Description Validates the format against the tournament's team and pool counts before saving. Organizer only.
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body configurePlayoffsRequest true "Playoff configuration"
// @Success 200 {object} map[string]interface{} "Updated tournament"
// @Failure 400 {object} map[string]string "Unsupported format or pattern"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/playoff-config [put]
func (h *TournamentHandler) ConfigurePlayoffs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input configurePlayoffsRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.ConfigurePlayoffs(r.Context(), tournamentID, input.PlayoffFormat, input.SeedingPattern)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
