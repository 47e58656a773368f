package dwavemcp

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qanneal/dwave-mcp-go/internal/annealer"
)

// Tool names exposed by the adapter. The catalog is closed: these six
// operations are the entire surface on every transport.
const (
	ToolGetSimulatorStatus     = "get_simulator_status"
	ToolSetSimulatorConfig     = "set_simulator_config"
	ToolCreateQUBO             = "create_qubo"
	ToolCreateIsing            = "create_ising"
	ToolSolveProblem           = "solve_problem"
	ToolGetAnnealingTimeStatus = "get_annealing_time_status"
)

// errorEnvelopePrefix starts every error envelope message, whatever the
// failure kind.
const errorEnvelopePrefix = "Error processing D-Wave server query: "

// toolDef pairs a tool's catalog entry with its bound handler. Handlers
// return plain errors; the server folds them into the error envelope.
type toolDef struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

type setSimulatorConfigInput struct {
	UseSimulator  *bool   `json:"use_simulator"`
	SimulatorType *string `json:"simulator_type"`
}

type createQUBOInput struct {
	Q           map[string]float64 `json:"Q"`
	Description string             `json:"description"`
}

type createIsingInput struct {
	H           map[string]float64 `json:"h"`
	J           map[string]float64 `json:"J"`
	Description string             `json:"description"`
}

type solveProblemInput struct {
	ProblemID     *string `json:"problem_id"`
	NumReads      *int    `json:"num_reads"`
	AnnealingTime *int    `json:"annealing_time"`
}

// toolDefs builds the closed tool table backed by the given registry.
func toolDefs(registry *annealer.Registry) []*toolDef {
	return []*toolDef{
		{
			tool: &mcp.Tool{
				Name:        ToolGetSimulatorStatus,
				Description: "Get the status of the D-Wave quantum simulator",
				InputSchema: emptyObjectSchema(),
			},
			handler: func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(registry.SimulatorStatus())
			},
		},
		{
			tool: &mcp.Tool{
				Name:        ToolSetSimulatorConfig,
				Description: "Configure the D-Wave simulator settings",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"use_simulator": {
							Type:        "boolean",
							Description: "Whether to use the simulator instead of real quantum hardware",
						},
						"simulator_type": {
							Type:        "string",
							Description: "Type of simulator to use",
							Enum:        []any{"dwave", "neal"},
						},
					},
					Required: []string{"use_simulator", "simulator_type"},
				},
			},
			handler: func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				input, err := parseInput[setSimulatorConfigInput](req)
				if err != nil {
					return nil, err
				}
				if input.UseSimulator == nil {
					return nil, annealer.MissingParameterError("use_simulator")
				}
				if input.SimulatorType == nil {
					return nil, annealer.MissingParameterError("simulator_type")
				}

				update, err := registry.SetSimulatorConfig(*input.UseSimulator, *input.SimulatorType)
				if err != nil {
					return nil, err
				}

				return jsonResult(update)
			},
		},
		{
			tool: &mcp.Tool{
				Name:        ToolCreateQUBO,
				Description: "Create a Quadratic Unconstrained Binary Optimization (QUBO) problem",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"Q": {
							Type:        "object",
							Description: "QUBO matrix as a nested dictionary or dictionary with string keys like '(0,1)'",
						},
						"description": {
							Type:        "string",
							Description: "Optional description of the problem",
						},
					},
					Required: []string{"Q"},
				},
			},
			handler: func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				input, err := parseInput[createQUBOInput](req)
				if err != nil {
					return nil, err
				}
				if input.Q == nil {
					return nil, annealer.MissingParameterError("Q")
				}

				summary, err := registry.CreateQUBO(input.Q, input.Description)
				if err != nil {
					return nil, err
				}

				return jsonResult(summary)
			},
		},
		{
			tool: &mcp.Tool{
				Name:        ToolCreateIsing,
				Description: "Create an Ising model problem",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"h": {
							Type:        "object",
							Description: "Linear biases dictionary with variable indices as keys",
						},
						"J": {
							Type:        "object",
							Description: "Quadratic biases dictionary with keys like '(0,1)' representing variable pairs",
						},
						"description": {
							Type:        "string",
							Description: "Optional description of the problem",
						},
					},
					Required: []string{"h", "J"},
				},
			},
			handler: func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				input, err := parseInput[createIsingInput](req)
				if err != nil {
					return nil, err
				}
				if input.H == nil || input.J == nil {
					return nil, annealer.MissingParameterError("h and J")
				}

				summary, err := registry.CreateIsing(input.H, input.J, input.Description)
				if err != nil {
					return nil, err
				}

				return jsonResult(summary)
			},
		},
		{
			tool: &mcp.Tool{
				Name:        ToolSolveProblem,
				Description: "Solve a quantum problem using D-Wave's quantum computer or simulator",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"problem_id": {
							Type:        "string",
							Description: "ID of the problem to solve",
						},
						"num_reads": {
							Type:        "integer",
							Description: "Number of annealing reads to request",
						},
						"annealing_time": {
							Type:        "integer",
							Description: "Annealing time per read, in microseconds",
						},
					},
					Required: []string{"problem_id"},
				},
			},
			handler: func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				input, err := parseInput[solveProblemInput](req)
				if err != nil {
					return nil, err
				}
				if input.ProblemID == nil {
					return nil, annealer.MissingParameterError("problem_id")
				}

				numReads := annealer.DefaultNumReads
				if input.NumReads != nil {
					numReads = *input.NumReads
				}

				annealingTime := annealer.DefaultAnnealingTime
				if input.AnnealingTime != nil {
					annealingTime = *input.AnnealingTime
				}

				result, err := registry.Solve(*input.ProblemID, numReads, annealingTime)
				if err != nil {
					return nil, err
				}

				return jsonResult(result)
			},
		},
		{
			tool: &mcp.Tool{
				Name:        ToolGetAnnealingTimeStatus,
				Description: "Get information about quantum annealing time settings",
				InputSchema: emptyObjectSchema(),
			},
			handler: func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(registry.AnnealingTimeStatus())
			},
		},
	}
}

// parseInput unmarshals the raw request arguments into a typed input
// struct. A missing or empty arguments payload decodes to the zero value;
// a payload that does not match the expected shape is an invalid argument.
func parseInput[T any](req *mcp.CallToolRequest) (T, error) {
	var input T

	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return input, nil
	}

	if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
		return input, &annealer.InvalidArgumentError{
			Reason: "Invalid arguments payload: " + err.Error(),
		}
	}

	return input, nil
}

func emptyObjectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
}

// jsonResult marshals a registry value as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return TextResult(string(data)), nil
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult carrying the error envelope.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}
