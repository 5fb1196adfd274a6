package models

// TeamStandingRow is one team's line in a pool standings table. Rows are
// recomputed from scratch on every request; nothing here is persisted.
type TeamStandingRow struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	PoolID   string `json:"pool_id"`
	PoolName string `json:"pool_name"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Points int `json:"points"`

	RunsFor         int `json:"runs_for"`
	RunsAgainst     int `json:"runs_against"`
	RunDifferential int `json:"run_differential"`

	OffensiveInnings float64 `json:"offensive_innings"`
	DefensiveInnings float64 `json:"defensive_innings"`

	// RunsAgainstPerInning is nil when the team has no defensive innings;
	// such a row sorts as worst on this criterion, it is not an error.
	RunsAgainstPerInning *float64 `json:"runs_against_per_inning,omitempty"`

	// PoolRank is the 1-based position after the tiebreak sort within the pool.
	PoolRank int `json:"pool_rank"`

	// OverallSeed is assigned only to teams selected into the playoff field.
	OverallSeed *int `json:"overall_seed,omitempty"`

	// TiebreakersApplied lists, in cascade order, the rules that were needed
	// to separate this team from a neighbour in the sort. A team separated
	// purely on points records nothing.
	TiebreakersApplied []string `json:"tiebreakers_applied,omitempty"`
}
