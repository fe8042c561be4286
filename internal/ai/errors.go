package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrompt is returned when the prompt is missing or blank.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrToolNotFound means the configured generation backend is not
	// available in this environment (binary missing, API key unset).
	ErrToolNotFound = errors.New("generation tool not found")
)

// GenerationError wraps a failure while producing or storing one part of a
// site. Stage is the asset kind or pipeline step that failed.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
