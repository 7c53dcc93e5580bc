package domain

import (
	"errors"
	"fmt"
)

// ErrModelNotLoaded is reported on every prediction attempt after the model
// store failed to load at startup. It is never fatal to the interface; the
// condition clears only when the model file is fixed and the tool restarted.
var ErrModelNotLoaded = errors.New("model store not loaded")

// ErrNoTargets is returned when the store holds no pipeline for the
// requested solution type.
var ErrNoTargets = errors.New("no trained targets for solution")

// ValidationError reports a malformed or out-of-range user input.
// Recovered locally: shown as a message, never propagated past the form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// PredictionError wraps a single pipeline's inference failure with the
// target it belongs to.
type PredictionError struct {
	Target string
	Err    error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("predict %q: %v", e.Target, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
