package annealer

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the base interface for all registry errors.
type Error interface {
	error
	IsAnnealerError() bool
}

// Compile-time verification that all error types implement Error.
var (
	_ Error = (*NotFoundError)(nil)
	_ Error = (*InvalidArgumentError)(nil)
	_ Error = (*UnknownToolError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotFound indicates a referenced problem identifier is absent.
	ErrNotFound = errors.New("problem not found")

	// ErrInvalidArgument indicates a request argument failed validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownTool indicates a tool name outside the registered catalog.
	ErrUnknownTool = errors.New("unknown tool")
)

// NotFoundError indicates a solve request referenced a problem identifier
// that is not in the registry.
type NotFoundError struct {
	ProblemID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Problem ID %s not found", e.ProblemID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsAnnealerError implements Error.
func (e *NotFoundError) IsAnnealerError() bool { return true }

// InvalidArgumentError indicates a request argument was missing or failed
// validation. Reason carries the caller-facing message.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsAnnealerError implements Error.
func (e *InvalidArgumentError) IsAnnealerError() bool { return true }

// UnknownToolError indicates a tool invocation named an operation that is
// not part of the registered catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// IsAnnealerError implements Error.
func (e *UnknownToolError) IsAnnealerError() bool { return true }

// MissingParameterError builds the InvalidArgumentError used when a
// required tool argument is absent. The parameter string names the missing
// field, or fields in the combined form callers expect (e.g. "h and J").
func MissingParameterError(parameter string) *InvalidArgumentError {
	noun := "parameter"
	if strings.Contains(parameter, " ") {
		noun = "parameters"
	}

	return &InvalidArgumentError{
		Reason: fmt.Sprintf("Missing required %s: %s", noun, parameter),
	}
}
