package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
)

// File holds the optional YAML server-settings overlay. Only fields that
// are set in the file override the environment-derived Config.
type File struct {
	Server struct {
		// Name overrides the advertised server name.
		Name string `yaml:"name,omitempty"`
		// Version overrides the advertised server version.
		Version string `yaml:"version,omitempty"`
		// Transport selects stdio or http.
		Transport string `yaml:"transport,omitempty"`
		// Listen is the http listen address.
		Listen string `yaml:"listen,omitempty"`
		// Path is the MCP endpoint path.
		Path string `yaml:"path,omitempty"`
		// HTTPTimeout is the workbench API client timeout.
		HTTPTimeout string `yaml:"http_timeout,omitempty"`
		// ShutdownTimeout controls graceful shutdown duration.
		ShutdownTimeout string `yaml:"shutdown_timeout,omitempty"`
	} `yaml:"server"`
}

// LoadFile parses a YAML settings file and applies it over cfg.
func LoadFile(path string, cfg *Config) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ApplyFile(data, cfg)
}

// ApplyFile parses YAML bytes and applies the overlay to cfg.
func ApplyFile(data []byte, cfg *Config) (*File, error) {
	var file File
	if err := yaml.Load(data, &file, yaml.WithKnownFields()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if v := strings.TrimSpace(file.Server.Transport); v != "" {
		cfg.Transport = v
	}
	if v := strings.TrimSpace(file.Server.Listen); v != "" {
		cfg.HTTPListen = v
	}
	if v := strings.TrimSpace(file.Server.Path); v != "" {
		cfg.HTTPPath = v
	}
	if v := strings.TrimSpace(file.Server.HTTPTimeout); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("server.http_timeout is invalid: %w", err)
		}
		cfg.HTTPTimeout = parsed
	}
	if v := strings.TrimSpace(file.Server.ShutdownTimeout); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("server.shutdown_timeout is invalid: %w", err)
		}
		cfg.ShutdownTimeout = parsed
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &file, nil
}
