package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// Host is the base URL of the Cloudera ML workbench.
	Host string `env:"CML_HOST"`
	// APIKey is the bearer token for workbench API calls.
	APIKey string `env:"CML_API_KEY"`
	// ProjectID is the default project scope for project-bound tools.
	ProjectID string `env:"CML_PROJECT_ID"`
	// LogLevel sets the logger level.
	LogLevel string `env:"CML_LOG_LEVEL" envDefault:"info"`
	// Transport selects stdio or http.
	Transport string `env:"CML_TRANSPORT" envDefault:"stdio"`
	// HTTPListen is the listen address for the http transport.
	HTTPListen string `env:"CML_HTTP_LISTEN" envDefault:":8080"`
	// HTTPPath is the MCP endpoint path for the http transport.
	HTTPPath string `env:"CML_HTTP_PATH" envDefault:"/mcp"`
	// HTTPTimeout is the workbench API client timeout.
	HTTPTimeout time.Duration `env:"CML_HTTP_TIMEOUT" envDefault:"30s"`
	// UploadInterval is the pause between sequential file uploads.
	UploadInterval time.Duration `env:"CML_UPLOAD_INTERVAL" envDefault:"500ms"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"CML_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if strings.TrimSpace(cfg.Host) == "" {
		return fmt.Errorf("CML_HOST is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return fmt.Errorf("CML_API_KEY is required")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "stdio", "http":
	default:
		return fmt.Errorf("CML_TRANSPORT must be stdio or http")
	}
	if cfg.HTTPPath == "" {
		cfg.HTTPPath = "/mcp"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.UploadInterval < 0 {
		return fmt.Errorf("CML_UPLOAD_INTERVAL must be >= 0")
	}
	return nil
}
