package handlers

import (
	"net/http"

	"github.com/diamondsched/tournament-server/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportPoolPlayReport godoc
// @Summary Export pool play standings as CSV
// @Tags reports
// @Description Renders current standings and seeds to CSV and uploads the file to object storage. Organizer only.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 201 {object} map[string]interface{} "Report location"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/reports [post]
func (h *ReportHandler) ExportPoolPlayReport(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.reportService.ExportPoolPlayReport(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"report": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
