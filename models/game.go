package models

import "time"

type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusCompleted GameStatus = "completed"
)

// ForfeitStatus names the side that forfeited, if any. A forfeited game is
// still counted as exactly one win and one loss regardless of recorded scores.
type ForfeitStatus string

const (
	ForfeitNone ForfeitStatus = "none"
	ForfeitHome ForfeitStatus = "home"
	ForfeitAway ForfeitStatus = "away"
)

type Game struct {
	ID           string `json:"id" db:"id"`
	TournamentID string `json:"tournament_id" db:"tournament_id"`
	PoolID       string `json:"pool_id" db:"pool_id"`
	HomeTeamID   string `json:"home_team_id" db:"home_team_id"`
	AwayTeamID   string `json:"away_team_id" db:"away_team_id"`

	// Scores stay nil until a result is recorded. A completed, non-forfeited
	// game must have both present.
	HomeScore *int `json:"home_score,omitempty" db:"home_score"`
	AwayScore *int `json:"away_score,omitempty" db:"away_score"`

	// Innings batted by each side, recorded as plain decimals (5.2 for 5 and
	// two outs). Used for the runs-against-per-inning tiebreaker.
	HomeInningsBatted float64 `json:"home_innings_batted" db:"home_innings_batted"`
	AwayInningsBatted float64 `json:"away_innings_batted" db:"away_innings_batted"`

	ForfeitStatus ForfeitStatus `json:"forfeit_status" db:"forfeit_status"`
	Status        GameStatus    `json:"status" db:"status"`

	ScheduledTime time.Time `json:"scheduled_time" db:"scheduled_time"`
	Diamond       *string   `json:"diamond,omitempty" db:"diamond"`
}
