package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mnavar-evidence/shelfsense/internal/mcp"
)

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
		cfg.MCP.Transport = transport
	}
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.MCP.APIURL = apiURL
	}

	client := mcp.NewClient(cfg.MCP.APIURL)
	srv := mcp.NewServer(client, version)

	switch cfg.MCP.Transport {
	case "stdio":
		// No logging on stdout: the protocol owns it
		log.Info().Str("api_url", client.BaseURL()).Msg("MCP server on stdio")
		return mcp.ServeStdio(srv)
	case "sse":
		addr := fmt.Sprintf(":%d", cfg.MCP.SSEPort)
		log.Info().Str("api_url", client.BaseURL()).Str("addr", addr).Msg("MCP server on SSE")
		return mcp.ServeSSE(srv, addr)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", cfg.MCP.Transport)
	}
}
