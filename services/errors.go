package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrPlayoffNotConfigured = errors.New("tournament has no playoff format configured")
	ErrGameNotCompletable   = errors.New("game result is incomplete")
	ErrTeamsNotInGame       = errors.New("team does not belong to this game")

	// Conflicts
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrTeamNameConflict       = errors.New("team name is already in use in this tournament")
	ErrTournamentNameConflict = errors.New("tournament name already exists")

	// Authentication and authorization
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors (more context than the generic one)
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPoolNotFound       = errors.New("pool not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrTournamentNotFound = errors.New("tournament not found")
)
