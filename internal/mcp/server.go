package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/patternbook/internal/patterns"
	"github.com/ziadkadry99/patternbook/internal/render"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the pattern directory to agents.
type Server struct {
	dir      string
	opts     patterns.Options
	renderer *render.Renderer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over the given pattern directory.
func NewServer(dir string, opts patterns.Options, renderer *render.Renderer) *Server {
	s := &Server{
		dir:      dir,
		opts:     opts,
		renderer: renderer,
	}

	s.mcp = server.NewMCPServer(
		"patternbook",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPatternsTool, s.handleListPatterns)
	s.mcp.AddTool(getPatternSourceTool, s.handleGetPatternSource)
	s.mcp.AddTool(getPatternMarkupTool, s.handleGetPatternMarkup)
	s.mcp.AddTool(getMenuTool, s.handleGetMenu)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
