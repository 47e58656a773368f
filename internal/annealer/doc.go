// Package annealer implements the in-memory problem registry behind the
// D-Wave MCP adapter.
//
// The registry stores QUBO and Ising problems keyed by generated
// identifiers, fabricates solve results without performing any real
// annealing, and tracks the mutable simulator configuration. All state
// lives in process memory; nothing is evicted or persisted.
//
// Every method is safe for concurrent use. The solver is an explicit stub:
// it returns a fixed five-variable assignment and a fixed energy for every
// problem, varying only with the problem kind.
package annealer
