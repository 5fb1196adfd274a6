package models

// PlayoffFormat defines how many teams advance out of pool play. The set is
// closed: anything else is rejected at configuration time, never clamped.
type PlayoffFormat string

const (
	FormatTop4 PlayoffFormat = "top_4"
	FormatTop6 PlayoffFormat = "top_6"
	FormatTop8 PlayoffFormat = "top_8"
)

// AdvanceCount reports how many teams the format carries into the playoff
// bracket, or 0 for an unknown format.
func (f PlayoffFormat) AdvanceCount() int {
	switch f {
	case FormatTop4:
		return 4
	case FormatTop6:
		return 6
	case FormatTop8:
		return 8
	default:
		return 0
	}
}

// SeedingPattern defines how pool standings map onto the overall seed list.
type SeedingPattern string

const (
	// SeedingStandard ranks all pool winners ahead of all runners-up, and so on.
	SeedingStandard SeedingPattern = "standard"
	// SeedingCrossPool4 pairs pools into a fixed bracket skeleton. Requires
	// exactly four pools.
	SeedingCrossPool4 SeedingPattern = "cross_pool_4"
)
