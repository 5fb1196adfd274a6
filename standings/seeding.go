package standings

import (
	"fmt"
	"sort"

	"github.com/diamondsched/tournament-server/models"
)

// PoolStandings couples a pool with its final, tiebreak-sorted standings rows.
type PoolStandings struct {
	Pool models.Pool              `json:"pool"`
	Rows []models.TeamStandingRow `json:"rows"`
}

// crossPool4Slots is the fixed bracket skeleton for cross-pool seeding with
// four pools (A, B, C, D in name order): A1-C2, A2-C1, B1-D2, B2-D1. Only
// which team fills each slot comes from the standings; the slot layout never
// does.
var crossPool4Slots = [8]struct {
	pool int // index into the name-ordered pool list
	rank int // 1-based pool rank
}{
	{0, 1}, {2, 2},
	{0, 2}, {2, 1},
	{1, 1}, {3, 2},
	{1, 2}, {3, 1},
}

// ComputeSeeds maps final pool standings into the ordered overall seed list
// (seed 1 first) for the chosen format and pattern. Only teams within the
// format's advance count are selected; everything else is left out of the
// playoff field. Unsupported format/pattern pairs and fields the standings
// cannot fill are configuration errors, not truncated brackets.
func ComputeSeeds(pools []PoolStandings, format models.PlayoffFormat, pattern models.SeedingPattern) ([]models.TeamStandingRow, error) {
	numberOfTeams := 0
	for _, p := range pools {
		numberOfTeams += len(p.Rows)
	}
	if err := ValidateFormat(format, numberOfTeams, len(pools)); err != nil {
		return nil, err
	}
	if err := ValidatePattern(pattern, format, len(pools)); err != nil {
		return nil, err
	}

	ordered := make([]PoolStandings, len(pools))
	copy(ordered, pools)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Pool.Name != ordered[j].Pool.Name {
			return ordered[i].Pool.Name < ordered[j].Pool.Name
		}
		return ordered[i].Pool.ID < ordered[j].Pool.ID
	})

	var seeds []models.TeamStandingRow
	var err error
	switch pattern {
	case models.SeedingStandard:
		seeds, err = standardSeeds(ordered, format.AdvanceCount())
	case models.SeedingCrossPool4:
		seeds, err = crossPool4Seeds(ordered)
	default:
		err = fmt.Errorf("%q: %w", pattern, ErrUnknownPattern)
	}
	if err != nil {
		return nil, err
	}

	for i := range seeds {
		seed := i + 1
		seeds[i].OverallSeed = &seed
	}
	return seeds, nil
}

// standardSeeds ranks all pool winners ahead of all runners-up, and so on
// down the pool ranks until the field is full. Winners are ordered by record
// then run differential; lower tiers by record then runs against, which
// rewards the tighter defense among teams that already lost a game.
func standardSeeds(pools []PoolStandings, advance int) ([]models.TeamStandingRow, error) {
	seeds := make([]models.TeamStandingRow, 0, advance)
	for rank := 1; len(seeds) < advance; rank++ {
		tier := make([]models.TeamStandingRow, 0, len(pools))
		for _, p := range pools {
			if rank <= len(p.Rows) {
				tier = append(tier, p.Rows[rank-1])
			}
		}
		if len(tier) == 0 {
			// Pools exhausted before the field filled. Guarded by
			// ValidateFormat on total team count, but uneven pools could
			// still get here.
			return nil, fmt.Errorf("only %d teams available for a %d-team field: %w",
				len(seeds), advance, ErrNotEnoughTeams)
		}

		byRunDiff := rank == 1
		sort.SliceStable(tier, func(i, j int) bool {
			return betterInTier(tier[i], tier[j], byRunDiff)
		})

		if remaining := advance - len(seeds); len(tier) > remaining {
			tier = tier[:remaining]
		}
		seeds = append(seeds, tier...)
	}
	return seeds, nil
}

// betterInTier orders teams holding the same pool rank. Pool winners compare
// on run differential (higher is better); every other tier compares on runs
// against (lower is better). Team id keeps the order deterministic.
func betterInTier(a, b models.TeamStandingRow, byRunDiff bool) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.Losses != b.Losses {
		return a.Losses < b.Losses
	}
	if byRunDiff {
		if a.RunDifferential != b.RunDifferential {
			return a.RunDifferential > b.RunDifferential
		}
	} else {
		if a.RunsAgainst != b.RunsAgainst {
			return a.RunsAgainst < b.RunsAgainst
		}
	}
	return a.TeamID < b.TeamID
}

func crossPool4Seeds(pools []PoolStandings) ([]models.TeamStandingRow, error) {
	seeds := make([]models.TeamStandingRow, 0, len(crossPool4Slots))
	for _, slot := range crossPool4Slots {
		p := pools[slot.pool]
		if slot.rank > len(p.Rows) {
			return nil, fmt.Errorf("pool %s has no rank-%d team: %w",
				p.Pool.Name, slot.rank, ErrNotEnoughTeams)
		}
		seeds = append(seeds, p.Rows[slot.rank-1])
	}
	return seeds, nil
}
