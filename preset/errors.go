package preset

import (
	"errors"
	"fmt"
)

// ErrPresetNotFound is returned when building an unregistered preset
var ErrPresetNotFound = errors.New("preset not found")

// Error types for preset operations
type (
	// CompilationError indicates a preset or one of its expressions could not be compiled
	CompilationError struct {
		Preset     string
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates an expression failed while building a request
	EvaluationError struct {
		Preset     string
		Key        string
		Expression string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	switch {
	case e.Expression != "" && e.Preset != "":
		return fmt.Sprintf("compilation error in preset '%s' at '%s': %s", e.Preset, e.Expression, e.Reason)
	case e.Expression != "":
		return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
	default:
		return fmt.Sprintf("compilation error in preset '%s': %s", e.Preset, e.Reason)
	}
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error in preset '%s' for key '%s' ('%s'): %v", e.Preset, e.Key, e.Expression, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
