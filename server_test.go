package dwavemcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		options := applyOptions(nil)

		require.Equal(t, DefaultServerName, options.Name)
		require.Equal(t, DefaultServerVersion, options.Version)
		require.NotNil(t, options.Logger)
		require.Equal(t, DefaultSimulatorConfig(), options.Simulator)
	})

	t.Run("overrides", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		options := applyOptions([]Option{
			WithLogger(logger),
			WithImplementation("quantum-gateway", "2.0.0"),
			WithSimulatorConfig(SimulatorConfig{
				UseSimulator:  false,
				SimulatorType: SimulatorNeal,
			}),
		})

		require.Same(t, logger, options.Logger)
		require.Equal(t, "quantum-gateway", options.Name)
		require.Equal(t, "2.0.0", options.Version)
		require.False(t, options.Simulator.UseSimulator)
		require.Equal(t, SimulatorNeal, options.Simulator.SimulatorType)
	})

	t.Run("use simulator toggle keeps type", func(t *testing.T) {
		options := applyOptions([]Option{WithUseSimulator(false)})

		require.False(t, options.Simulator.UseSimulator)
		require.Equal(t, SimulatorDWave, options.Simulator.SimulatorType)
	})
}

func TestNewRegistersAllTools(t *testing.T) {
	s := New()

	require.Len(t, s.tools, 6)
	for _, name := range []string{
		ToolGetSimulatorStatus,
		ToolSetSimulatorConfig,
		ToolCreateQUBO,
		ToolCreateIsing,
		ToolSolveProblem,
		ToolGetAnnealingTimeStatus,
	} {
		require.Contains(t, s.tools, name)
	}
}

func TestNewAppliesSimulatorConfig(t *testing.T) {
	s := New(WithSimulatorConfig(SimulatorConfig{
		UseSimulator:  false,
		SimulatorType: SimulatorNeal,
	}))

	status := decodeResult[SimulatorStatus](t, callTool(t, s, ToolGetSimulatorStatus, nil))

	require.False(t, status.UseSimulator)
	require.Equal(t, "neal", status.SimulatorType)
}

func TestServerLogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	s := New(WithLogger(logger))
	callTool(t, s, ToolGetSimulatorStatus, nil)

	logs := buf.String()
	require.Contains(t, logs, "tool call started")
	require.Contains(t, logs, "tool call completed")
	require.Contains(t, logs, "tool=get_simulator_status")
	require.Contains(t, logs, "request_id=")
}

func TestInMemorySession(t *testing.T) {
	ctx := context.Background()

	s := New()
	t1, t2 := mcp.NewInMemoryTransports()

	serverSession, err := s.MCPServer().Connect(ctx, t1, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "dwavemcp-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	descriptions := make(map[string]string, len(tools.Tools))
	for _, tool := range tools.Tools {
		descriptions[tool.Name] = tool.Description
	}

	require.Len(t, descriptions, 6)
	require.Equal(t, "Get the status of the D-Wave quantum simulator",
		descriptions[ToolGetSimulatorStatus])
	require.Equal(t, "Configure the D-Wave simulator settings",
		descriptions[ToolSetSimulatorConfig])
	require.Equal(t, "Create a Quadratic Unconstrained Binary Optimization (QUBO) problem",
		descriptions[ToolCreateQUBO])
	require.Equal(t, "Create an Ising model problem",
		descriptions[ToolCreateIsing])
	require.Equal(t, "Solve a quantum problem using D-Wave's quantum computer or simulator",
		descriptions[ToolSolveProblem])
	require.Equal(t, "Get information about quantum annealing time settings",
		descriptions[ToolGetAnnealingTimeStatus])

	created, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: ToolCreateQUBO,
		Arguments: map[string]any{
			"Q":           map[string]float64{"0,0": -1, "1,1": -1, "0,1": 2},
			"description": "Simple QUBO example via mcp.client",
		},
	})
	require.NoError(t, err)
	require.False(t, created.IsError)

	var summary ProblemSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, created)), &summary))
	require.Equal(t, "qubo", summary.Type)
	require.Equal(t, 2, summary.NumVariables)

	solved, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolSolveProblem,
		Arguments: map[string]any{"problem_id": summary.ProblemID},
	})
	require.NoError(t, err)
	require.False(t, solved.IsError)

	var result Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, solved)), &result))
	require.Equal(t, summary.ProblemID, result.ProblemID)
	require.Equal(t, StatusCompleted, result.Status)

	_, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "not_a_tool"})
	require.Error(t, err)
}
