package inactivity

import "errors"

var (
	ErrTriggerNotFound = errors.New("inactivity trigger not found")
	ErrInvalidStage    = errors.New("invalid alert stage")
	ErrSweepFailed     = errors.New("inactivity sweep failed")
)
