package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondsched/tournament-server/models"
)

func newGameServiceFixture() (GameService, *stubGameRepo) {
	tournamentRepo, poolRepo, teamRepo, gameRepo := twoPoolFixture()
	scheduled := models.Game{
		ID:           "g3",
		TournamentID: "t1",
		PoolID:       "pool-a",
		HomeTeamID:   "owls",
		AwayTeamID:   "hawks",
		Status:       models.GameStatusScheduled,
	}
	gameRepo.games = append(gameRepo.games, scheduled)

	standingsService := NewStandingsService(tournamentRepo, poolRepo, teamRepo, gameRepo)
	return NewGameService(gameRepo, standingsService, nil), gameRepo
}

// TestRecordResult_FinalizesScheduledGame checks the happy path: the score
// is stored, the game flips to completed, innings default to a full seven.
func TestRecordResult_FinalizesScheduledGame(t *testing.T) {
	svc, gameRepo := newGameServiceFixture()

	game, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		HomeScore: intPtr(7),
		AwayScore: intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, models.GameStatusCompleted, game.Status)
	assert.Equal(t, 7, *game.HomeScore)
	assert.Equal(t, 4, *game.AwayScore)
	assert.Equal(t, 7.0, game.HomeInningsBatted)
	assert.Equal(t, 7.0, game.AwayInningsBatted)

	stored, err := gameRepo.GetByID(context.Background(), "g3")
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusCompleted, stored.Status)
	assert.Equal(t, 7, *stored.HomeScore)
}

// TestRecordResult_ForfeitWithoutScores checks that a forfeit ruling needs
// no score at all.
func TestRecordResult_ForfeitWithoutScores(t *testing.T) {
	svc, _ := newGameServiceFixture()

	game, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		ForfeitStatus: models.ForfeitHome,
	})
	require.NoError(t, err)

	assert.Equal(t, models.GameStatusCompleted, game.Status)
	assert.Equal(t, models.ForfeitHome, game.ForfeitStatus)
	assert.Nil(t, game.HomeScore)
	assert.Nil(t, game.AwayScore)
}

// TestRecordResult_PartialInnings checks that a rain-shortened game keeps
// its partial innings.
func TestRecordResult_PartialInnings(t *testing.T) {
	svc, _ := newGameServiceFixture()

	innings := 4.5
	game, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		HomeScore:         intPtr(10),
		AwayScore:         intPtr(0),
		HomeInningsBatted: &innings,
		AwayInningsBatted: &innings,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, game.HomeInningsBatted)
}

// TestRecordResult_RejectsTiedScore checks that a tie never reaches storage.
func TestRecordResult_RejectsTiedScore(t *testing.T) {
	svc, gameRepo := newGameServiceFixture()

	_, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		HomeScore: intPtr(3),
		AwayScore: intPtr(3),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	stored, err := gameRepo.GetByID(context.Background(), "g3")
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusScheduled, stored.Status)
}

func TestRecordResult_RejectsMissingScore(t *testing.T) {
	svc, _ := newGameServiceFixture()

	_, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		HomeScore: intPtr(3),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestRecordResult_RejectsUnknownForfeitStatus(t *testing.T) {
	svc, _ := newGameServiceFixture()

	_, err := svc.RecordResult(context.Background(), "g3", RecordResultInput{
		ForfeitStatus: models.ForfeitStatus("both"),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestRecordResult_GameNotFound(t *testing.T) {
	svc, _ := newGameServiceFixture()

	_, err := svc.RecordResult(context.Background(), "missing", RecordResultInput{
		HomeScore: intPtr(1),
		AwayScore: intPtr(0),
	})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

// TestRecordResult_CorrectsCompletedGame checks that re-entering a result on
// an already completed game overwrites the previous score.
func TestRecordResult_CorrectsCompletedGame(t *testing.T) {
	svc, gameRepo := newGameServiceFixture()

	game, err := svc.RecordResult(context.Background(), "g1", RecordResultInput{
		HomeScore: intPtr(2),
		AwayScore: intPtr(6),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, *game.HomeScore)
	assert.Equal(t, 6, *game.AwayScore)

	stored, err := gameRepo.GetByID(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, 6, *stored.AwayScore)
}
