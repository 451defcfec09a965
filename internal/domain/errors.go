package domain

import "fmt"

// PlanWeaverError is the base error type with context.
type PlanWeaverError struct {
	Phase      string // "config", "scan", "load", "validate", "translate", "write"
	File       string
	LineNumber int
	Message    string
	Suggestion string
	Cause      error
}

func (e *PlanWeaverError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *PlanWeaverError) Unwrap() error {
	return e.Cause
}

// NewError creates a new PlanWeaverError.
func NewError(phase, file string, line int, message string, cause error) *PlanWeaverError {
	return &PlanWeaverError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates a PlanWeaverError carrying an actionable hint.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *PlanWeaverError {
	return &PlanWeaverError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}
