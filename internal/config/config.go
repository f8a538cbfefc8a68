// Package config loads the server configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Error provides constant error strings to the config functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
const (
	ErrInvalidLogFormat = Error("log format must be json or console")
	ErrMissingAddress   = Error("server ip and port must be set")
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the complete configuration of a HouseRev node.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig describes where and how the HTTP server runs.
type ServerConfig struct {
	IPAddr          string        `yaml:"ip"`
	PortAddr        string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// IP returns the IP address the server listens on.
func (scfg *ServerConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port the server listens on.
func (scfg *ServerConfig) Port() string {
	return scfg.PortAddr
}

// Addr returns the host:port the server listens on.
func (scfg *ServerConfig) Addr() string {
	return scfg.IPAddr + ":" + scfg.PortAddr
}

// LogConfig describes the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			IPAddr:          "127.0.0.1",
			PortAddr:        "8000",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatJSON,
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path returns the defaults. Unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that can't be defaulted.
func (c *Config) Validate() error {
	if c.Server.IPAddr == "" || c.Server.PortAddr == "" {
		return ErrMissingAddress
	}
	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return ErrInvalidLogFormat
	}
	return nil
}
