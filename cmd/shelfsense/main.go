package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mnavar-evidence/shelfsense/internal/config"
)

const (
	appName = "ShelfSense"
	version = "1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Optional .env for local development
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "shelfsense",
		Short:   "ShelfSense mock micromarket inventory platform",
		Version: version,
		Long: `ShelfSense serves synthetic micromarket inventory intelligence:
pick lists, demand forecasts, performance analytics, trends, and alerts.

Run 'shelfsense api' for the HTTP API, or 'shelfsense mcp' to expose the
same data as MCP tools for AI assistants.`,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "Run the HTTP API server",
		Long:  "Serve the read-only inventory, forecasting, analytics, and alert endpoints",
		RunE:  runAPI,
	}
	apiCmd.Flags().String("host", "", "Bind address (overrides config)")
	apiCmd.Flags().Int("port", 0, "Listen port (overrides config)")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP tool server",
		Long:  "Expose the ShelfSense API as Model Context Protocol tools over stdio or SSE",
		RunE:  runMCP,
	}
	mcpCmd.Flags().String("transport", "", "Transport to serve on: stdio or sse (overrides config)")
	mcpCmd.Flags().String("api-url", "", "Backend API base URL (overrides config)")

	rootCmd.AddCommand(apiCmd, mcpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
