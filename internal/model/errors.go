package model

import "errors"

var (
	// User/session related errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already claimed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrUnknownRole   = errors.New("unknown role")

	// Team related errors
	ErrTeamNotFound   = errors.New("team not found")
	ErrNotInTeam      = errors.New("user is not in a team")
	ErrInviteNotFound = errors.New("invite not found")

	// Project/submission related errors
	ErrProjectNotFound = errors.New("project not found")
	ErrRoundNotFound   = errors.New("judging round not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
