// Package config provides configuration management.
//
// Configuration lives in an HCL file, e.g.:
//
//	logging {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	server {
//	  addr = ":8080"
//	}
//
//	output {
//	  format = "report"
//	}
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"bitterroot-intake/internal/errors"
	"bitterroot-intake/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Logging contains logging configuration
	Logging logging.Config

	// Server contains HTTP server configuration
	Server ServerConfig

	// Output contains output configuration
	Output OutputConfig
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default CLI output format (report, json)
	Format string
}

// fileConfig is the HCL file schema; every block is optional
type fileConfig struct {
	Logging *logging.Config `hcl:"logging,block"`
	Server  *serverBlock    `hcl:"server,block"`
	Output  *outputBlock    `hcl:"output,block"`
}

type serverBlock struct {
	Addr string `hcl:"addr,optional"`
}

type outputBlock struct {
	Format string `hcl:"format,optional"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Server:  ServerConfig{Addr: ":8080"},
		Output:  OutputConfig{Format: "report"},
	}
}

// Load loads configuration from an HCL file, falling back to defaults
// for any block or attribute the file does not set.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var file fileConfig
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("failed to parse config file", err).WithContext("path", path)
	}

	if file.Logging != nil {
		merged := cfg.Logging
		if file.Logging.Level != "" {
			merged.Level = file.Logging.Level
		}
		if file.Logging.Format != "" {
			merged.Format = file.Logging.Format
		}
		if file.Logging.Output != "" {
			merged.Output = file.Logging.Output
		}
		merged.Development = file.Logging.Development
		cfg.Logging = merged
	}
	if file.Server != nil && file.Server.Addr != "" {
		cfg.Server.Addr = file.Server.Addr
	}
	if file.Output != nil && file.Output.Format != "" {
		cfg.Output.Format = file.Output.Format
	}

	return cfg, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
