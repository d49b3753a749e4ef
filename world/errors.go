package world

import "errors"

var (
	// ErrLevelNotFound is returned when a level identifier has no backing
	// data.
	ErrLevelNotFound = errors.New("level not found")
	// ErrEmptyLevel is returned when level data parses but contains no start
	// cell.
	ErrEmptyLevel = errors.New("level has no start cell")
	// ErrInvalidIntent is returned by World.Step for an intent outside the
	// recognized set. A well-behaved input layer never produces one.
	ErrInvalidIntent = errors.New("invalid intent")
	// ErrSimulationVersion is returned when a playthrough was recorded with a
	// different simulation than the one in this executable.
	ErrSimulationVersion = errors.New("incompatible simulation version")
)
