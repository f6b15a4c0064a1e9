package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/tools"
)

// ServerName is advertised to MCP clients during initialization.
const ServerName = "nba-stats-agent"

// New exposes every registered tool over the Model Context Protocol.
func New(registry *tools.Registry, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))
	for _, t := range registry.All() {
		s.AddTool(toMCPTool(t), callHandler(registry, t.Name, logger))
	}
	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s)
}

func toMCPTool(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		opts = append(opts, mcp.WithString(p.Name,
			mcp.Required(),
			mcp.Description(p.Description),
			mcp.Enum(p.Enum...),
		))
	}
	return mcp.NewTool(t.Name, opts...)
}

func callHandler(registry *tools.Registry, name string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx, logger))
		args := request.GetArguments()
		if args == nil {
			args = map[string]any{}
		}
		text, err := registry.Call(ctx, name, args)
		if err != nil {
			if _, ok := tools.AsArgumentError(err); ok || errors.Is(err, tools.ErrUnknownTool) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return nil, fmt.Errorf("call %s: %w", name, err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// ServeStdio serves s over stdin/stdout until the input closes or the process is signalled.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
