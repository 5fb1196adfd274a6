package standings

import "github.com/diamondsched/tournament-server/models"

// Points scheme: two for a win, nothing for a loss. Draws are not a
// representable outcome in this ruleset.
const (
	PointsPerWin  = 2
	PointsPerLoss = 0
)

// Accumulate folds the normalized results for one pool into one unsorted
// standings row per team. Every team in the pool appears exactly once,
// including teams with no completed games yet. Aggregation is a straight sum.
func Accumulate(pool models.Pool, teams []models.Team, results []TeamGameResult) []models.TeamStandingRow {
	rows := make([]models.TeamStandingRow, 0, len(teams))
	index := make(map[string]int, len(teams))

	for _, t := range teams {
		index[t.ID] = len(rows)
		rows = append(rows, models.TeamStandingRow{
			TeamID:   t.ID,
			TeamName: t.Name,
			PoolID:   pool.ID,
			PoolName: pool.Name,
		})
	}

	for _, res := range results {
		i, ok := index[res.ForTeamID]
		if !ok {
			// Result for a team outside this pool; nothing to fold it into.
			continue
		}
		row := &rows[i]
		if res.Win {
			row.Wins++
			row.Points += PointsPerWin
		} else {
			row.Losses++
			row.Points += PointsPerLoss
		}
		row.RunsFor += res.RunsFor
		row.RunsAgainst += res.RunsAgainst
		row.OffensiveInnings += res.InningsFor
		row.DefensiveInnings += res.InningsAgainst
	}

	for i := range rows {
		row := &rows[i]
		row.RunDifferential = row.RunsFor - row.RunsAgainst
		if row.DefensiveInnings > 0 {
			rapi := float64(row.RunsAgainst) / row.DefensiveInnings
			row.RunsAgainstPerInning = &rapi
		}
	}

	return rows
}
