package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondsched/tournament-server/models"
)

func intPtr(v int) *int { return &v }

func completedGame(id, home, away string, homeScore, awayScore int) models.Game {
	return models.Game{
		ID:                id,
		HomeTeamID:        home,
		AwayTeamID:        away,
		HomeScore:         intPtr(homeScore),
		AwayScore:         intPtr(awayScore),
		HomeInningsBatted: 7,
		AwayInningsBatted: 7,
		ForfeitStatus:     models.ForfeitNone,
		Status:            models.GameStatusCompleted,
	}
}

// TestNormalizeGame_CompletedGame checks that a regular final produces two
// mirrored rows, one per team.
func TestNormalizeGame_CompletedGame(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 8, 3)

	results, err := NormalizeGame(game)
	require.NoError(t, err)
	require.Len(t, results, 2)

	home, away := results[0], results[1]
	assert.Equal(t, "hawks", home.ForTeamID)
	assert.Equal(t, "owls", home.AgainstTeamID)
	assert.Equal(t, 8, home.RunsFor)
	assert.Equal(t, 3, home.RunsAgainst)
	assert.True(t, home.Win)

	assert.Equal(t, "owls", away.ForTeamID)
	assert.Equal(t, 3, away.RunsFor)
	assert.Equal(t, 8, away.RunsAgainst)
	assert.False(t, away.Win)
}

// TestNormalizeGame_ScheduledGame checks that games not yet played contribute
// nothing to standings.
func TestNormalizeGame_ScheduledGame(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 0, 0)
	game.Status = models.GameStatusScheduled
	game.HomeScore = nil
	game.AwayScore = nil

	results, err := NormalizeGame(game)
	require.NoError(t, err)
	assert.Nil(t, results)
}

// TestNormalizeGame_ForfeitWithoutScores checks that a forfeit with no score
// entered still records a win and a loss, with runs counted as 0-0.
func TestNormalizeGame_ForfeitWithoutScores(t *testing.T) {
	game := models.Game{
		ID:            "g1",
		HomeTeamID:    "hawks",
		AwayTeamID:    "owls",
		ForfeitStatus: models.ForfeitHome,
		Status:        models.GameStatusCompleted,
	}

	results, err := NormalizeGame(game)
	require.NoError(t, err)
	require.Len(t, results, 2)

	home, away := results[0], results[1]
	assert.False(t, home.Win)
	assert.True(t, away.Win)
	assert.Equal(t, 0, home.RunsFor)
	assert.Equal(t, 0, home.RunsAgainst)
	assert.Equal(t, 0, away.RunsFor)
	assert.Equal(t, 0, away.RunsAgainst)
}

// TestNormalizeGame_ForfeitOverridesScore checks that the forfeit ruling
// decides the winner even when the forfeiting team outscored its opponent
// before the game was awarded.
func TestNormalizeGame_ForfeitOverridesScore(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 9, 2)
	game.ForfeitStatus = models.ForfeitHome

	results, err := NormalizeGame(game)
	require.NoError(t, err)

	assert.False(t, results[0].Win)
	assert.True(t, results[1].Win)
	// Runs still count as recorded.
	assert.Equal(t, 9, results[0].RunsFor)
	assert.Equal(t, 2, results[1].RunsFor)
}

// TestNormalizeGame_MissingScore checks that a completed, non-forfeited game
// with a missing score is rejected rather than defaulted.
func TestNormalizeGame_MissingScore(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 5, 3)
	game.AwayScore = nil

	_, err := NormalizeGame(game)
	assert.ErrorIs(t, err, ErrScoreMissing)
}

// TestNormalizeGame_NegativeScore checks that negative scores are rejected.
func TestNormalizeGame_NegativeScore(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", -1, 3)

	_, err := NormalizeGame(game)
	assert.ErrorIs(t, err, ErrScoreNegative)
}

// TestNormalizeGame_TiedScore checks that a tied final is rejected; the
// ruleset has no draws.
func TestNormalizeGame_TiedScore(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 4, 4)

	_, err := NormalizeGame(game)
	assert.ErrorIs(t, err, ErrScoreTied)
}

// TestNormalizeGame_InningsCarriedThrough checks that innings batted flow to
// the per-team rows with offense and defense swapped for the away side.
func TestNormalizeGame_InningsCarriedThrough(t *testing.T) {
	game := completedGame("g1", "hawks", "owls", 6, 2)
	game.HomeInningsBatted = 6.5
	game.AwayInningsBatted = 7

	results, err := NormalizeGame(game)
	require.NoError(t, err)

	assert.Equal(t, 6.5, results[0].InningsFor)
	assert.Equal(t, 7.0, results[0].InningsAgainst)
	assert.Equal(t, 7.0, results[1].InningsFor)
	assert.Equal(t, 6.5, results[1].InningsAgainst)
}
