package dwavemcp

import (
	"github.com/qanneal/dwave-mcp-go/internal/annealer"
)

// Re-export registry types so callers outside the module can name them.

// SimulatorType selects which annealing simulator the configuration
// pretends to run problems on.
type SimulatorType = annealer.SimulatorType

// Recognized simulator types.
const (
	SimulatorDWave = annealer.SimulatorDWave
	SimulatorNeal  = annealer.SimulatorNeal
)

// SimulatorConfig holds the mutable simulator configuration.
type SimulatorConfig = annealer.Config

// DefaultSimulatorConfig returns the configuration a fresh server starts
// with: simulator enabled, "dwave" type.
func DefaultSimulatorConfig() SimulatorConfig {
	return annealer.DefaultConfig()
}

// ProblemKind distinguishes the two stored problem formulations.
type ProblemKind = annealer.ProblemKind

// Stored problem kinds.
const (
	KindQUBO  = annealer.KindQUBO
	KindIsing = annealer.KindIsing
)

// Pair identifies a pairwise coefficient by its two variable indices.
type Pair = annealer.Pair

// Problem is a stored annealing problem.
type Problem = annealer.Problem

// ProblemSummary is what problem creation returns.
type ProblemSummary = annealer.ProblemSummary

// Result is a fabricated solve outcome.
type Result = annealer.Result

// SimulatorStatus reports the current simulator configuration.
type SimulatorStatus = annealer.Status

// ConfigUpdate echoes a successful configuration change.
type ConfigUpdate = annealer.ConfigUpdate

// AnnealingTimeStatus reports the fixed annealing-time settings.
type AnnealingTimeStatus = annealer.AnnealingTimeStatus

// StatusCompleted is the status every fabricated result carries.
const StatusCompleted = annealer.StatusCompleted

// Default sampling parameters applied when a solve request omits them.
const (
	DefaultNumReads      = annealer.DefaultNumReads
	DefaultAnnealingTime = annealer.DefaultAnnealingTime
)

// Registry is the in-memory problem store backing the adapter's tools.
type Registry = annealer.Registry

// NewRegistry creates a standalone problem store with the given
// simulator configuration, for callers that want the store without the
// MCP surface.
func NewRegistry(config SimulatorConfig) *Registry {
	return annealer.New(config)
}
