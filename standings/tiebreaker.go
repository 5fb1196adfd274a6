package standings

import (
	"sort"

	"github.com/diamondsched/tournament-server/models"
)

// Tiebreak rule names recorded in TeamStandingRow.TiebreakersApplied.
// Separation on points alone records nothing.
const (
	RuleRunDifferential      = "run_differential"
	RuleRunsAgainstPerInning = "runs_against_per_inning"
	RuleHeadToHead           = "head_to_head"
	RuleTeamID               = "team_id"
)

// SortPool returns the rows of one pool in final standings order and assigns
// PoolRank. The cascade is: points desc, run differential desc,
// runs-against-per-inning asc (no defensive innings sorts last), head-to-head
// between exactly two tied teams, then team id lexicographic. Team id is
// always reachable, so the order is a strict total order and reproducible
// across runs. games supplies the head-to-head results and should be the
// pool's games.
func SortPool(rows []models.TeamStandingRow, games []models.Game) []models.TeamStandingRow {
	sorted := make([]models.TeamStandingRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		return lessByStats(sorted[i], sorted[j])
	})

	h2h := buildHeadToHead(games)

	// Head-to-head applies only when exactly two teams remain tied after the
	// numeric rules. Larger tie groups fall through to team id; resolving
	// them would take a round-robin sub-table and change observable seeding.
	decided := make(map[[2]string]bool)
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && statsTied(sorted[i], sorted[j]) {
			j++
		}
		if j-i == 2 {
			a, b := sorted[i], sorted[i+1]
			if w := h2h.winnerBetween(a.TeamID, b.TeamID); w != "" {
				if w == b.TeamID {
					sorted[i], sorted[i+1] = b, a
				}
				decided[pairKey(a.TeamID, b.TeamID)] = true
			}
		}
		i = j
	}

	for i := range sorted {
		sorted[i].PoolRank = i + 1
	}

	// Record, on both rows of each adjacent pair, the rule that actually
	// separated them.
	for i := 0; i+1 < len(sorted); i++ {
		rule := separatingRule(sorted[i], sorted[i+1], decided)
		if rule == "" {
			continue
		}
		sorted[i].TiebreakersApplied = append(sorted[i].TiebreakersApplied, rule)
		sorted[i+1].TiebreakersApplied = append(sorted[i+1].TiebreakersApplied, rule)
	}

	return sorted
}

// lessByStats orders two rows by the numeric cascade plus the team-id
// fallback, without head-to-head (which depends on tie-group size).
func lessByStats(a, b models.TeamStandingRow) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.RunDifferential != b.RunDifferential {
		return a.RunDifferential > b.RunDifferential
	}
	if c := compareRunsAgainstPerInning(a, b); c != 0 {
		return c < 0
	}
	return a.TeamID < b.TeamID
}

func statsTied(a, b models.TeamStandingRow) bool {
	return a.Points == b.Points &&
		a.RunDifferential == b.RunDifferential &&
		compareRunsAgainstPerInning(a, b) == 0
}

// compareRunsAgainstPerInning returns a negative value when a is better
// (fewer runs allowed per defensive inning). A team with no defensive innings
// sorts as worst on this criterion, never as an error.
func compareRunsAgainstPerInning(a, b models.TeamStandingRow) int {
	av, bv := a.RunsAgainstPerInning, b.RunsAgainstPerInning
	switch {
	case av == nil && bv == nil:
		return 0
	case av == nil:
		return 1
	case bv == nil:
		return -1
	case *av < *bv:
		return -1
	case *av > *bv:
		return 1
	default:
		return 0
	}
}

func separatingRule(a, b models.TeamStandingRow, decided map[[2]string]bool) string {
	if a.Points != b.Points {
		return ""
	}
	if a.RunDifferential != b.RunDifferential {
		return RuleRunDifferential
	}
	if compareRunsAgainstPerInning(a, b) != 0 {
		return RuleRunsAgainstPerInning
	}
	if decided[pairKey(a.TeamID, b.TeamID)] {
		return RuleHeadToHead
	}
	return RuleTeamID
}

// headToHead maps a team pair to the id of the team with the better
// head-to-head record, or "" when the record is even.
type headToHead map[[2]string]string

func (h headToHead) winnerBetween(teamA, teamB string) string {
	return h[pairKey(teamA, teamB)]
}

func buildHeadToHead(games []models.Game) headToHead {
	wins := make(map[[2]string]map[string]int)
	for _, g := range games {
		winner, loser, ok := gameWinner(g)
		if !ok {
			continue
		}
		key := pairKey(winner, loser)
		if wins[key] == nil {
			wins[key] = make(map[string]int)
		}
		wins[key][winner]++
	}

	h := make(headToHead, len(wins))
	for key, counts := range wins {
		a, b := key[0], key[1]
		switch {
		case counts[a] > counts[b]:
			h[key] = a
		case counts[b] > counts[a]:
			h[key] = b
		default:
			h[key] = ""
		}
	}
	return h
}

// gameWinner resolves the winner of a game for head-to-head purposes.
// Games without a decidable outcome are skipped; malformed scores are
// surfaced by the normalizer before the sort ever runs.
func gameWinner(g models.Game) (winner, loser string, ok bool) {
	if g.Status != models.GameStatusCompleted {
		return "", "", false
	}
	switch g.ForfeitStatus {
	case models.ForfeitHome:
		return g.AwayTeamID, g.HomeTeamID, true
	case models.ForfeitAway:
		return g.HomeTeamID, g.AwayTeamID, true
	}
	if g.HomeScore == nil || g.AwayScore == nil || *g.HomeScore == *g.AwayScore {
		return "", "", false
	}
	if *g.HomeScore > *g.AwayScore {
		return g.HomeTeamID, g.AwayTeamID, true
	}
	return g.AwayTeamID, g.HomeTeamID, true
}

func pairKey(teamA, teamB string) [2]string {
	if teamA < teamB {
		return [2]string{teamA, teamB}
	}
	return [2]string{teamB, teamA}
}
