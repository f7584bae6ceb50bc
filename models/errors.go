package models

import "errors"

// Domain error kinds. All of these are expected, recoverable conditions;
// callers branch on them with errors.Is.
var (
	ErrInvalidGame             = errors.New("a team cannot play itself")
	ErrInvalidScore            = errors.New("score points must be positive values")
	ErrTeamNotInGame           = errors.New("team is not in this game")
	ErrGameNotScored           = errors.New("game has not yet been scored")
	ErrTeamAlreadyInTournament = errors.New("team is already in tournament")
	ErrGameAlreadyInTournament = errors.New("game already exists in tournament")
	ErrGameDoesNotExist        = errors.New("game does not exist in tournament")
	ErrCoachAlreadyOnTeam      = errors.New("coach is already on team")
	ErrPlayerAlreadyOnTeam     = errors.New("player is already on team")
	ErrNumberAlreadyInUse      = errors.New("number is already in use on team")
)
