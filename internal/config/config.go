// Package config loads tool configuration from file and environment.
package config

// Config represents the complete abracadabra configuration.
// It can be loaded from .abracadabra.yaml with environment variable overrides.
type Config struct {
	// Ignore lists glob patterns for folders and files the workspace
	// scanner must skip when expanding recursive paths.
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`

	// LogLevel controls logger verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// Interactive forces prompts on or off. When unset the tool decides
	// based on whether stdout is a terminal.
	Interactive *bool `yaml:"interactive" mapstructure:"interactive"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Ignore: []string{
			"**/node_modules/**",
			"**/dist/**",
			"**/build/**",
			"**/.git/**",
		},
		LogLevel: "info",
	}
}
