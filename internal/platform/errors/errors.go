package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoActiveSession      = errors.New("no active sleep session")
	ErrSessionAlreadyActive = errors.New("sleep session already active")
)
