package dwavemcp

import (
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPPath is the path the streamable HTTP transport is mounted at.
const MCPPath = "/mcp"

// HealthMessage is the liveness message served at the root path.
const HealthMessage = "DWave MCP Server is running. MCP endpoint at /mcp"

// Handler returns an http.Handler that serves the MCP streamable
// transport at MCPPath and a JSON liveness message at the root path.
// Every connection is served by this server, so session state is shared
// across clients.
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(MCPPath, streamable)
	mux.Handle(MCPPath+"/", streamable)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": HealthMessage,
		})
	})

	return mux
}
