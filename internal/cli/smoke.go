package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	dwavemcp "github.com/qanneal/dwave-mcp-go"
)

// NewSmokeCmd creates the smoke command.
func NewSmokeCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run a smoke test against a running HTTP adapter",
		Long: `Connect to a running adapter over streamable HTTP, list the
published tools, then create and solve a small QUBO problem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return runSmoke(ctx, cmd.OutOrStdout(), url)
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:3000/mcp", "MCP endpoint URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall smoke test timeout")

	return cmd
}

func runSmoke(ctx context.Context, out io.Writer, url string) error {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "dwave-mcp-smoke",
		Version: Version,
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: url}, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		return fmt.Errorf("listing tools: %w", err)
	}

	fmt.Fprintln(out, "Available tools:")
	for _, tool := range tools.Tools {
		fmt.Fprintf(out, "  %s: %s\n", tool.Name, tool.Description)
	}

	status, err := callText(ctx, session, dwavemcp.ToolGetSimulatorStatus, map[string]any{})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Simulator status:")
	fmt.Fprintln(out, status)

	created, err := callText(ctx, session, dwavemcp.ToolCreateQUBO, map[string]any{
		"Q":           map[string]float64{"0,0": -1, "1,1": -1, "0,1": 2},
		"description": "Simple QUBO example via mcp.client",
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Created problem:")
	fmt.Fprintln(out, created)

	var summary dwavemcp.ProblemSummary
	if err := json.Unmarshal([]byte(created), &summary); err != nil {
		return fmt.Errorf("decoding create_qubo result: %w", err)
	}

	solved, err := callText(ctx, session, dwavemcp.ToolSolveProblem, map[string]any{
		"problem_id": summary.ProblemID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Solve result:")
	fmt.Fprintln(out, solved)

	return nil
}

// callText invokes a tool and returns its text content, treating an
// error envelope as a failure.
func callText(ctx context.Context, session *mcp.ClientSession, name string, arguments map[string]any) (string, error) {
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", name, err)
	}

	text := contentText(res)
	if res.IsError {
		return "", fmt.Errorf("calling %s: %s", name, text)
	}

	return text, nil
}

func contentText(res *mcp.CallToolResult) string {
	for _, content := range res.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			return text.Text
		}
	}

	return ""
}
