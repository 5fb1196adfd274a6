package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondsched/tournament-server/storage"
)

type stubUploader struct {
	key         string
	contentType string
	body        string
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	s.key = key
	s.contentType = contentType
	s.body = string(data)
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (s *stubUploader) Delete(ctx context.Context, key string) error { return nil }

func (s *stubUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }

// TestExportPoolPlayReport_WithSeeds checks that the CSV carries both the
// standings table and the seed section when playoffs are configured.
func TestExportPoolPlayReport_WithSeeds(t *testing.T) {
	uploader := &stubUploader{}
	standingsService := NewStandingsService(twoPoolFixture())
	svc := NewReportService(standingsService, uploader)

	result, err := svc.ExportPoolPlayReport(context.Background(), "t1")
	require.NoError(t, err)

	assert.Contains(t, result.Key, "reports/t1/pool-play-")
	assert.Equal(t, "text/csv", uploader.contentType)

	assert.True(t, strings.HasPrefix(uploader.body, "pool,rank,team,"))
	assert.Contains(t, uploader.body, "A,1,Hawks,1,0,2,5,2,3")
	assert.Contains(t, uploader.body, "seed,team,pool,pool_rank")
	assert.Contains(t, uploader.body, "1,Ravens,B,1")
}

// TestExportPoolPlayReport_WithoutPlayoffConfig checks the standings-only
// fallback before a format is chosen.
func TestExportPoolPlayReport_WithoutPlayoffConfig(t *testing.T) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	tournamentRepo.tournament.PlayoffFormat = nil
	tournamentRepo.tournament.SeedingPattern = nil

	uploader := &stubUploader{}
	standingsService := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)
	svc := NewReportService(standingsService, uploader)

	_, err := svc.ExportPoolPlayReport(context.Background(), "t1")
	require.NoError(t, err)

	assert.NotContains(t, uploader.body, "seed,team,pool,pool_rank")
}

func TestExportPoolPlayReport_TournamentNotFound(t *testing.T) {
	uploader := &stubUploader{}
	standingsService := NewStandingsService(twoPoolFixture())
	svc := NewReportService(standingsService, uploader)

	_, err := svc.ExportPoolPlayReport(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
	assert.Empty(t, uploader.body)
}
