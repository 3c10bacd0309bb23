package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "shelfsense-mcp-server"

// NewServer builds an MCP server with every ShelfSense tool registered.
func NewServer(client *Client, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	NewTools(client).Register(s)
	return s
}

// ServeStdio runs the server over stdin/stdout until the stream closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// ServeSSE runs the server over HTTP server-sent events on addr.
func ServeSSE(s *server.MCPServer, addr string) error {
	return server.NewSSEServer(s).Start(addr)
}
