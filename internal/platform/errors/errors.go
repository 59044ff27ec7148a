package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveTimer       = errors.New("no active timer")
	ErrTimerAlreadyRunning = errors.New("timer already running")
	ErrTimerTooShort       = errors.New("timer stopped too quickly")
)
