package standings

import "errors"

// Data errors surfaced by the normalizer. A malformed score aborts the whole
// computation for the affected pool; it is never silently coerced.
var (
	ErrScoreNegative = errors.New("game score must not be negative")
	ErrScoreMissing  = errors.New("completed game is missing a score")
	ErrScoreTied     = errors.New("completed game cannot end in a tie")
)

// Configuration errors surfaced by the format catalog and the seeding mapper,
// before any seeding is attempted.
var (
	ErrUnknownFormat          = errors.New("unknown playoff format")
	ErrUnknownPattern         = errors.New("unknown seeding pattern")
	ErrNotEnoughTeams         = errors.New("not enough teams for playoff format")
	ErrPoolCountMismatch      = errors.New("seeding pattern does not fit the pool configuration")
	ErrUnsupportedCombination = errors.New("playoff format and seeding pattern combination is not supported")
)
