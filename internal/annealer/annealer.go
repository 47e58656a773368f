package annealer

import (
	"fmt"
	"maps"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// SimulatorType selects which annealing simulator the configuration
// pretends to run problems on.
type SimulatorType string

// Recognized simulator types.
const (
	SimulatorDWave SimulatorType = "dwave"
	SimulatorNeal  SimulatorType = "neal"
)

// Config holds the mutable simulator configuration.
type Config struct {
	UseSimulator  bool
	SimulatorType SimulatorType
}

// DefaultConfig returns the configuration a fresh registry starts with:
// simulator enabled, "dwave" type.
func DefaultConfig() Config {
	return Config{UseSimulator: true, SimulatorType: SimulatorDWave}
}

// ProblemKind distinguishes the two stored problem formulations.
type ProblemKind string

// Stored problem kinds, as reported in creation summaries.
const (
	KindQUBO  ProblemKind = "qubo"
	KindIsing ProblemKind = "ising"
)

// Problem is a stored annealing problem. Q is set for QUBO problems, H and
// J for Ising problems. Problems are immutable once stored.
type Problem struct {
	ID          string
	Kind        ProblemKind
	Q           map[Pair]float64
	H           map[int]float64
	J           map[Pair]float64
	Description string
}

// ProblemSummary is what problem creation returns. The coefficient maps
// themselves are never echoed back to the caller.
type ProblemSummary struct {
	ProblemID    string `json:"problem_id"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	NumVariables int    `json:"num_variables"`
}

// Result is a fabricated solve outcome. Energy, solution, and the timing
// fields are fixed constants; only ProblemID and the generated ResultID
// vary between calls.
type Result struct {
	ResultID           string         `json:"result_id"`
	ProblemID          string         `json:"problem_id"`
	Energy             float64        `json:"energy"`
	Solution           map[string]int `json:"solution"`
	QPUAccessTime      float64        `json:"qpu_access_time"`
	ExecutionTime      float64        `json:"execution_time"`
	TotalAnnealingTime float64        `json:"total_annealing_time"`
	Status             string         `json:"status"`
}

// Status reports the current simulator configuration. Real quantum
// hardware is never available in this adapter.
type Status struct {
	UseSimulator             bool   `json:"use_simulator"`
	SimulatorType            string `json:"simulator_type"`
	UsingSimulator           bool   `json:"using_simulator"`
	QuantumHardwareAvailable bool   `json:"quantum_hardware_available"`
}

// ConfigUpdate echoes a successful configuration change.
type ConfigUpdate struct {
	UseSimulator  bool   `json:"use_simulator"`
	SimulatorType string `json:"simulator_type"`
	Updated       bool   `json:"updated"`
}

// AnnealingTimeStatus reports annealing time settings. No usage accounting
// exists behind it; every field is a fixed mock value.
type AnnealingTimeStatus struct {
	MinAnnealingTimeNs     int     `json:"min_annealing_time_ns"`
	MaxAnnealingTimeNs     int     `json:"max_annealing_time_ns"`
	CurrentAnnealingTimeNs int     `json:"current_annealing_time_ns"`
	TotalAnnealingTimeNs   int     `json:"total_annealing_time_ns"`
	TimeLimit              float64 `json:"time_limit"`
	TotalAnnealingTime     float64 `json:"total_annealing_time"`
	RemainingTime          float64 `json:"remaining_time"`
}

// StatusCompleted is the status every fabricated result carries.
const StatusCompleted = "COMPLETED"

// Default sampling parameters applied when a solve request omits them.
// The stub accepts both values and ignores them.
const (
	DefaultNumReads      = 100
	DefaultAnnealingTime = 20
)

// Fabricated solver outputs. The stub never inspects coefficients; it
// reports the same five-variable assignment, energy, and timings for every
// problem of a given kind.
const (
	mockEnergy             = -1.5
	mockSolutionSize       = 5
	mockQPUAccessTime      = 0.05
	mockExecutionTime      = 0.05
	mockTotalAnnealingTime = 0.005
)

// Registry is the in-memory store of problems, results, and simulator
// configuration. A single RWMutex guards all three; entries are never
// evicted.
type Registry struct {
	mu       sync.RWMutex
	config   Config
	problems map[string]*Problem
	results  map[string]*Result
}

// New creates an empty registry starting from the given configuration.
// An unset SimulatorType falls back to the default "dwave".
func New(config Config) *Registry {
	if config.SimulatorType == "" {
		config.SimulatorType = SimulatorDWave
	}

	return &Registry{
		config:   config,
		problems: make(map[string]*Problem),
		results:  make(map[string]*Result),
	}
}

// CreateQUBO normalizes a string-keyed QUBO coefficient map and stores it
// as a new problem. Keys must parse as "i,j" or "(i,j)"; see ParsePair.
func (r *Registry) CreateQUBO(q map[string]float64, description string) (*ProblemSummary, error) {
	formatted := make(map[Pair]float64, len(q))
	for key, value := range q {
		pair, err := ParsePair(key)
		if err != nil {
			return nil, err
		}

		formatted[pair] = value
	}

	return r.CreateQUBOFromPairs(formatted, description), nil
}

// CreateQUBOFromPairs stores a pair-keyed QUBO coefficient map as a new
// problem and returns its summary. The map is copied; later mutation of
// the argument does not affect the stored problem.
func (r *Registry) CreateQUBOFromPairs(q map[Pair]float64, description string) *ProblemSummary {
	problem := &Problem{
		ID:          uuid.New().String(),
		Kind:        KindQUBO,
		Q:           maps.Clone(q),
		Description: description,
	}

	r.mu.Lock()
	r.problems[problem.ID] = problem
	r.mu.Unlock()

	return &ProblemSummary{
		ProblemID:    problem.ID,
		Type:         string(KindQUBO),
		Description:  description,
		NumVariables: countPairIndices(q),
	}
}

// CreateIsing normalizes string-keyed Ising bias maps and stores them as a
// new problem. Keys of h must parse as integers, keys of j as "i,j" or
// "(i,j)" pairs.
func (r *Registry) CreateIsing(h, j map[string]float64, description string) (*ProblemSummary, error) {
	formattedH := make(map[int]float64, len(h))
	for key, value := range h {
		index, err := parseIndex(key)
		if err != nil {
			return nil, err
		}

		formattedH[index] = value
	}

	formattedJ := make(map[Pair]float64, len(j))
	for key, value := range j {
		pair, err := ParsePair(key)
		if err != nil {
			return nil, err
		}

		formattedJ[pair] = value
	}

	return r.CreateIsingFromPairs(formattedH, formattedJ, description), nil
}

// CreateIsingFromPairs stores pair-keyed Ising bias maps as a new problem
// and returns its summary. num_variables counts the entries of h only,
// matching the wire contract.
func (r *Registry) CreateIsingFromPairs(h map[int]float64, j map[Pair]float64, description string) *ProblemSummary {
	problem := &Problem{
		ID:          uuid.New().String(),
		Kind:        KindIsing,
		H:           maps.Clone(h),
		J:           maps.Clone(j),
		Description: description,
	}

	r.mu.Lock()
	r.problems[problem.ID] = problem
	r.mu.Unlock()

	return &ProblemSummary{
		ProblemID:    problem.ID,
		Type:         string(KindIsing),
		Description:  description,
		NumVariables: len(h),
	}
}

// Solve fabricates a result for a stored problem. It fails with a
// NotFoundError when the identifier is absent. numReads and annealingTime
// are accepted for interface parity and have no effect on the output.
func (r *Registry) Solve(problemID string, numReads, annealingTime int) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	problem, ok := r.problems[problemID]
	if !ok {
		return nil, &NotFoundError{ProblemID: problemID}
	}

	result := &Result{
		ResultID:           uuid.New().String(),
		ProblemID:          problemID,
		Energy:             mockEnergy,
		Solution:           mockSolution(problem.Kind),
		QPUAccessTime:      mockQPUAccessTime,
		ExecutionTime:      mockExecutionTime,
		TotalAnnealingTime: mockTotalAnnealingTime,
		Status:             StatusCompleted,
	}

	r.results[result.ResultID] = result

	return result, nil
}

// SimulatorStatus reads the current configuration.
func (r *Registry) SimulatorStatus() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Status{
		UseSimulator:             r.config.UseSimulator,
		SimulatorType:            string(r.config.SimulatorType),
		UsingSimulator:           r.config.UseSimulator,
		QuantumHardwareAvailable: false,
	}
}

// SetSimulatorConfig validates and applies a configuration change. Only
// "dwave" and "neal" are recognized simulator types.
func (r *Registry) SetSimulatorConfig(useSimulator bool, simulatorType string) (*ConfigUpdate, error) {
	typed := SimulatorType(simulatorType)
	if typed != SimulatorDWave && typed != SimulatorNeal {
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("Invalid simulator_type: %s. Must be 'dwave' or 'neal'.", simulatorType),
		}
	}

	r.mu.Lock()
	r.config = Config{UseSimulator: useSimulator, SimulatorType: typed}
	r.mu.Unlock()

	return &ConfigUpdate{
		UseSimulator:  useSimulator,
		SimulatorType: simulatorType,
		Updated:       true,
	}, nil
}

// AnnealingTimeStatus returns the fixed annealing-time report.
func (r *Registry) AnnealingTimeStatus() AnnealingTimeStatus {
	return AnnealingTimeStatus{
		MinAnnealingTimeNs:     200,
		MaxAnnealingTimeNs:     2000,
		CurrentAnnealingTimeNs: 500,
		TotalAnnealingTimeNs:   500,
		TimeLimit:              0.1,
		TotalAnnealingTime:     0.0,
		RemainingTime:          0.1,
	}
}

// Problem looks up a stored problem by identifier.
func (r *Registry) Problem(id string) (*Problem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problem, ok := r.problems[id]

	return problem, ok
}

// Result looks up a stored result by identifier.
func (r *Registry) Result(id string) (*Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[id]

	return result, ok
}

// ProblemCount reports how many problems the registry holds.
func (r *Registry) ProblemCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.problems)
}

// ResultCount reports how many results the registry holds.
func (r *Registry) ResultCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.results)
}

func mockSolution(kind ProblemKind) map[string]int {
	solution := make(map[string]int, mockSolutionSize)

	if kind == KindQUBO {
		for v := range mockSolutionSize {
			solution[strconv.Itoa(v)] = 0
		}
		solution["0"] = 1
		solution["2"] = 1

		return solution
	}

	for v := range mockSolutionSize {
		solution[strconv.Itoa(v)] = -1
	}
	solution["0"] = 1
	solution["3"] = 1

	return solution
}

func countPairIndices(q map[Pair]float64) int {
	seen := make(map[int]struct{}, len(q)*2)
	for pair := range q {
		seen[pair.I] = struct{}{}
		seen[pair.J] = struct{}{}
	}

	return len(seen)
}
