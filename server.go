package dwavemcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/qanneal/dwave-mcp-go/internal/annealer"
)

// Server exposes an in-memory quantum problem store as a fixed set of
// MCP tools. Construct one with New, then either serve it over stdio
// with Run, mount it over HTTP with Handler, or dispatch calls directly
// with CallTool.
type Server struct {
	registry *annealer.Registry
	server   *mcp.Server
	logger   *slog.Logger
	tools    map[string]*toolDef
}

// New creates a server with the six problem-store tools registered.
// Without options it serves the default simulator configuration and
// discards logs.
func New(opts ...Option) *Server {
	options := applyOptions(opts)

	registry := annealer.New(options.Simulator)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    options.Name,
		Version: options.Version,
	}, nil)

	s := &Server{
		registry: registry,
		server:   server,
		logger:   options.Logger,
		tools:    make(map[string]*toolDef),
	}

	for _, def := range toolDefs(registry) {
		s.tools[def.tool.Name] = def
		server.AddTool(def.tool, s.instrument(def))
	}

	return s
}

// Run serves the adapter over stdio until ctx is cancelled or the
// transport closes.
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "serving MCP over stdio",
		"tools", len(s.tools))

	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// CallTool dispatches a tool call by name through the same path the MCP
// transports use. Unknown names and handler failures surface as error
// envelopes in the result, not as Go errors; the error return is
// reserved for failures to encode the arguments or the result.
func (s *Server) CallTool(ctx context.Context, name string, arguments any) (*mcp.CallToolResult, error) {
	def, ok := s.tools[name]
	if !ok {
		unknown := &annealer.UnknownToolError{Name: name}
		s.logger.DebugContext(ctx, "tool call rejected",
			"tool", name,
			"error", unknown)

		return ErrorResult(errorEnvelopePrefix + unknown.Error()), nil
	}

	raw, err := json.Marshal(arguments)
	if err != nil {
		return nil, err
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: raw,
		},
	}

	return s.call(ctx, def, req)
}

// Registry returns the problem store backing the tools.
func (s *Server) Registry() *annealer.Registry {
	return s.registry
}

// MCPServer returns the underlying MCP server, for connecting custom
// transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}

func (s *Server) instrument(def *toolDef) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.call(ctx, def, req)
	}
}

// call invokes a tool handler with request-scoped logging. Handler
// errors become error envelopes so the failure reaches the caller
// in-band.
func (s *Server) call(ctx context.Context, def *toolDef, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := ulid.Make().String()
	start := time.Now()

	s.logger.DebugContext(ctx, "tool call started",
		"request_id", requestID,
		"tool", def.tool.Name)

	result, err := def.handler(ctx, req)
	if err != nil {
		s.logger.DebugContext(ctx, "tool call failed",
			"request_id", requestID,
			"tool", def.tool.Name,
			"duration", time.Since(start),
			"error", err)

		return ErrorResult(errorEnvelopePrefix + err.Error()), nil
	}

	s.logger.DebugContext(ctx, "tool call completed",
		"request_id", requestID,
		"tool", def.tool.Name,
		"duration", time.Since(start),
		"problems", s.registry.ProblemCount(),
		"results", s.registry.ResultCount())

	return result, nil
}
