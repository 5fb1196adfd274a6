package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diamondsched/tournament-server/storage"
)

// ReportService renders the end-of-pool-play report (standings per pool with
// tiebreaker notes, plus the seed list once playoffs are configured) as CSV
// and uploads it to object storage for distribution.
type ReportService interface {
	ExportPoolPlayReport(ctx context.Context, tournamentID string) (*storage.UploadResult, error)
}

type reportService struct {
	standingsService StandingsService
	uploader         storage.FileUploader
}

func NewReportService(standingsService StandingsService, uploader storage.FileUploader) ReportService {
	return &reportService{
		standingsService: standingsService,
		uploader:         uploader,
	}
}

func (s *reportService) ExportPoolPlayReport(ctx context.Context, tournamentID string) (*storage.UploadResult, error) {
	poolStandings, err := s.standingsService.GetPoolStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"pool", "rank", "team", "wins", "losses", "points",
		"runs_for", "runs_against", "run_differential",
		"runs_against_per_inning", "tiebreakers",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, ps := range poolStandings {
		for _, row := range ps.Rows {
			rapi := ""
			if row.RunsAgainstPerInning != nil {
				rapi = strconv.FormatFloat(*row.RunsAgainstPerInning, 'f', 3, 64)
			}
			record := []string{
				ps.Pool.Name,
				strconv.Itoa(row.PoolRank),
				row.TeamName,
				strconv.Itoa(row.Wins),
				strconv.Itoa(row.Losses),
				strconv.Itoa(row.Points),
				strconv.Itoa(row.RunsFor),
				strconv.Itoa(row.RunsAgainst),
				strconv.Itoa(row.RunDifferential),
				rapi,
				strings.Join(row.TiebreakersApplied, "; "),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write report row: %w", err)
			}
		}
	}

	// The seed list is part of the report once the organizer has picked a
	// playoff format; before that the standings alone are the report.
	seeds, err := s.standingsService.GetPlayoffSeeds(ctx, tournamentID)
	switch {
	case err == nil:
		if err := w.Write([]string{}); err != nil {
			return nil, fmt.Errorf("failed to write report separator: %w", err)
		}
		if err := w.Write([]string{"seed", "team", "pool", "pool_rank"}); err != nil {
			return nil, fmt.Errorf("failed to write seed header: %w", err)
		}
		for _, seed := range seeds {
			record := []string{
				strconv.Itoa(*seed.OverallSeed),
				seed.TeamName,
				seed.PoolName,
				strconv.Itoa(seed.PoolRank),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write seed row: %w", err)
			}
		}
	case errors.Is(err, ErrPlayoffNotConfigured):
		// Standings-only report.
	default:
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	key := fmt.Sprintf("reports/%s/pool-play-%s.csv", tournamentID, time.Now().UTC().Format("20060102-150405"))
	result, err := s.uploader.Upload(ctx, key, "text/csv", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload pool play report: %w", err)
	}
	return result, nil
}
