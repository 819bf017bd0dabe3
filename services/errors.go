package services

import "errors"

var (
	// ErrInvalidEntry means a food entry is structurally unusable
	// (missing owner or date). Nutrition anomalies never trigger it.
	ErrInvalidEntry = errors.New("invalid entry: owner and date are required")

	// ErrInvalidGoal rejects a goal update that would set any daily
	// target to zero or below. The previous profile is kept unchanged.
	ErrInvalidGoal = errors.New("invalid goal: daily targets must be positive")

	// ErrEmptyBuffer means undo was requested with nothing restorable.
	ErrEmptyBuffer = errors.New("nothing to restore")
)
