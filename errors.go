package dwavemcp

import "github.com/qanneal/dwave-mcp-go/internal/annealer"

// Re-export error types from the registry package

// NotFoundError indicates a solve request referenced an absent problem.
type NotFoundError = annealer.NotFoundError

// InvalidArgumentError indicates a request argument was missing or invalid.
type InvalidArgumentError = annealer.InvalidArgumentError

// UnknownToolError indicates a tool name outside the registered catalog.
type UnknownToolError = annealer.UnknownToolError

// AnnealerError is the base interface for all registry errors.
type AnnealerError = annealer.Error

// Re-export sentinel errors from the registry package.
var (
	// ErrNotFound indicates a referenced problem identifier is absent.
	ErrNotFound = annealer.ErrNotFound

	// ErrInvalidArgument indicates a request argument failed validation.
	ErrInvalidArgument = annealer.ErrInvalidArgument

	// ErrUnknownTool indicates a tool name outside the registered catalog.
	ErrUnknownTool = annealer.ErrUnknownTool
)
