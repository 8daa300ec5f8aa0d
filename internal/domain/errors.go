package domain

import "errors"

var (
	// ErrNotConfigured is returned when an operation requires the trivia
	// config and no config row exists yet.
	ErrNotConfigured = errors.New("trivia is not configured yet")

	// ErrAlreadyConfigured is returned by setup when a config row already
	// exists. Setup is insert-once; later changes go through the update
	// operations.
	ErrAlreadyConfigured = errors.New("trivia is already configured")

	// ErrInvalidSchedule is returned when a schedule string does not match
	// HH:MM in 24-hour format.
	ErrInvalidSchedule = errors.New("invalid schedule, expected HH:MM in 24-hour format")
)
