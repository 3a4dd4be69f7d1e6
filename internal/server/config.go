package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the advisor service configuration.
type Config struct {
	Server  Settings       `hcl:"server,block"`
	Advisor *AdvisorConfig `hcl:"advisor,block"`
}

// Settings holds the listener-level options.
type Settings struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	IdleTimeoutSec int    `hcl:"idle_timeout_seconds,optional"`
}

// AdvisorConfig controls the decision engine behind the endpoint.
type AdvisorConfig struct {
	WarmCache bool `hcl:"warm_cache,optional"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:        "localhost",
			Port:           8080,
			LogLevel:       "info",
			IdleTimeoutSec: 300,
		},
		Advisor: &AdvisorConfig{},
	}
}

// LoadConfig reads an HCL configuration file, falling back to defaults
// when the file does not exist and for any field left unset.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Server.IdleTimeoutSec == 0 {
		config.Server.IdleTimeoutSec = defaults.Server.IdleTimeoutSec
	}
	if config.Advisor == nil {
		config.Advisor = &AdvisorConfig{}
	}

	return &config, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.IdleTimeoutSec < 0 {
		return fmt.Errorf("invalid idle timeout: %d", c.Server.IdleTimeoutSec)
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Server.LogLevel)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
