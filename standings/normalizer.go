package standings

import (
	"fmt"

	"github.com/diamondsched/tournament-server/models"
)

// TeamGameResult is one side of a completed game, as seen by the team it
// belongs to. Every completed game normalizes into exactly two of these.
type TeamGameResult struct {
	ForTeamID     string
	AgainstTeamID string

	RunsFor     int
	RunsAgainst int

	InningsFor     float64
	InningsAgainst float64

	Win bool
}

// NormalizeGame converts a raw game record into the symmetric pair of
// per-team results. Scheduled games produce no rows. Forfeited games always
// produce one win and one loss; missing scores on a forfeit count as 0/0
// rather than excluding the game. Malformed scores on a completed,
// non-forfeited game are returned as errors, since defaulting them would
// corrupt every downstream ranking.
func NormalizeGame(g models.Game) ([]TeamGameResult, error) {
	if g.Status != models.GameStatusCompleted {
		return nil, nil
	}

	homeScore, err := scoreValue(g.HomeScore, g.ForfeitStatus, g.ID, "home")
	if err != nil {
		return nil, err
	}
	awayScore, err := scoreValue(g.AwayScore, g.ForfeitStatus, g.ID, "away")
	if err != nil {
		return nil, err
	}

	var homeWin bool
	switch g.ForfeitStatus {
	case models.ForfeitHome:
		homeWin = false
	case models.ForfeitAway:
		homeWin = true
	default:
		if homeScore == awayScore {
			return nil, fmt.Errorf("game %s: %d-%d: %w", g.ID, homeScore, awayScore, ErrScoreTied)
		}
		homeWin = homeScore > awayScore
	}

	home := TeamGameResult{
		ForTeamID:      g.HomeTeamID,
		AgainstTeamID:  g.AwayTeamID,
		RunsFor:        homeScore,
		RunsAgainst:    awayScore,
		InningsFor:     g.HomeInningsBatted,
		InningsAgainst: g.AwayInningsBatted,
		Win:            homeWin,
	}
	away := TeamGameResult{
		ForTeamID:      g.AwayTeamID,
		AgainstTeamID:  g.HomeTeamID,
		RunsFor:        awayScore,
		RunsAgainst:    homeScore,
		InningsFor:     g.AwayInningsBatted,
		InningsAgainst: g.HomeInningsBatted,
		Win:            !homeWin,
	}
	return []TeamGameResult{home, away}, nil
}

// scoreValue resolves a possibly-nil score field. On a forfeited game a
// missing score is recorded as 0; on a regular completed game it is an error.
func scoreValue(score *int, forfeit models.ForfeitStatus, gameID, side string) (int, error) {
	if score == nil {
		if forfeit != models.ForfeitNone {
			return 0, nil
		}
		return 0, fmt.Errorf("game %s: %s score: %w", gameID, side, ErrScoreMissing)
	}
	if *score < 0 {
		return 0, fmt.Errorf("game %s: %s score %d: %w", gameID, side, *score, ErrScoreNegative)
	}
	return *score, nil
}
