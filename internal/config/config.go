// Package config loads ShelfSense settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete runtime configuration for the API and MCP servers.
type Config struct {
	API APIConfig `yaml:"api"`
	MCP MCPConfig `yaml:"mcp"`
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	Host      string  `yaml:"host"`
	Port      int     `yaml:"port"`
	RateLimit float64 `yaml:"rate_limit"` // Requests per second
	RateBurst int     `yaml:"rate_burst"` // Burst capacity
}

// MCPConfig configures the MCP tool server.
type MCPConfig struct {
	APIURL    string `yaml:"api_url"`   // Backend API base URL
	Transport string `yaml:"transport"` // stdio or sse
	SSEPort   int    `yaml:"sse_port"`  // Port for the SSE transport
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Host:      "0.0.0.0",
			Port:      8000,
			RateLimit: 100,
			RateBurst: 200,
		},
		MCP: MCPConfig{
			APIURL:    "http://localhost:8000",
			Transport: "stdio",
			SSEPort:   8001,
		},
	}
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty), applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// applyEnv overrides file values from SHELFSENSE_* environment variables.
func (c *Config) applyEnv() error {
	if host := os.Getenv("SHELFSENSE_HOST"); host != "" {
		c.API.Host = host
	}
	if port := os.Getenv("SHELFSENSE_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SHELFSENSE_PORT %q: %w", port, err)
		}
		c.API.Port = n
	}
	if url := os.Getenv("SHELFSENSE_API_URL"); url != "" {
		c.MCP.APIURL = url
	}
	if port := os.Getenv("SHELFSENSE_MCP_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SHELFSENSE_MCP_PORT %q: %w", port, err)
		}
		c.MCP.SSEPort = n
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.API.Host == "" {
		return fmt.Errorf("api host cannot be empty")
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api port must be between 0 and 65535, got %d", c.API.Port)
	}
	if c.API.RateLimit <= 0 {
		return fmt.Errorf("api rate_limit must be positive, got %f", c.API.RateLimit)
	}
	if c.API.RateBurst <= 0 {
		return fmt.Errorf("api rate_burst must be positive, got %d", c.API.RateBurst)
	}
	if c.MCP.APIURL == "" {
		return fmt.Errorf("mcp api_url cannot be empty")
	}
	if c.MCP.Transport != "stdio" && c.MCP.Transport != "sse" {
		return fmt.Errorf("mcp transport must be stdio or sse, got %q", c.MCP.Transport)
	}
	if c.MCP.SSEPort <= 0 || c.MCP.SSEPort > 65535 {
		return fmt.Errorf("mcp sse_port must be between 1 and 65535, got %d", c.MCP.SSEPort)
	}
	return nil
}
