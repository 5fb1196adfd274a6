package standings

import (
	"fmt"

	"github.com/diamondsched/tournament-server/models"
)

// allFormats is ordered smallest field first; AvailableFormats preserves
// this order.
var allFormats = []models.PlayoffFormat{
	models.FormatTop4,
	models.FormatTop6,
	models.FormatTop8,
}

// AvailableFormats lists the playoff formats legal for the tournament type
// and team count. Single-elimination tournaments skip pool play entirely, so
// no pool-based format applies to them.
func AvailableFormats(tournamentType models.TournamentType, numberOfTeams int) []models.PlayoffFormat {
	if tournamentType != models.TypePoolPlayPlayoffs {
		return nil
	}
	formats := make([]models.PlayoffFormat, 0, len(allFormats))
	for _, f := range allFormats {
		if f.AdvanceCount() <= numberOfTeams {
			formats = append(formats, f)
		}
	}
	return formats
}

// ValidateFormat checks a playoff format against the tournament's team and
// pool counts. An illegal format is a configuration error for the caller to
// surface; it is never silently clamped to a smaller field.
func ValidateFormat(format models.PlayoffFormat, numberOfTeams, numberOfPools int) error {
	advance := format.AdvanceCount()
	if advance == 0 {
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if advance > numberOfTeams {
		return fmt.Errorf("%s requires at least %d teams, have %d: %w",
			format, advance, numberOfTeams, ErrNotEnoughTeams)
	}
	if numberOfPools < 1 {
		return fmt.Errorf("%s requires at least one pool: %w", format, ErrPoolCountMismatch)
	}
	if numberOfPools > advance {
		// Every pool must be able to advance at least one team.
		return fmt.Errorf("%s cannot advance a team from each of %d pools: %w",
			format, numberOfPools, ErrPoolCountMismatch)
	}
	return nil
}

// ValidatePattern checks a seeding pattern against the chosen format and the
// pool count. Not every pattern is valid for every pair: cross-pool seeding
// is defined only for a top-8 field drawn from exactly four pools.
func ValidatePattern(pattern models.SeedingPattern, format models.PlayoffFormat, numberOfPools int) error {
	switch pattern {
	case models.SeedingStandard:
		return nil
	case models.SeedingCrossPool4:
		if numberOfPools != 4 {
			return fmt.Errorf("%s requires exactly 4 pools, have %d: %w",
				pattern, numberOfPools, ErrPoolCountMismatch)
		}
		if format != models.FormatTop8 {
			return fmt.Errorf("%s with %s: %w", pattern, format, ErrUnsupportedCombination)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", pattern, ErrUnknownPattern)
	}
}
