// Package config provides configuration management for the contactbook CLI.
//
// Values are layered with koanf: built-in defaults, then a YAML config file,
// then CONTACTBOOK_* environment variables, then explicitly set flags.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	DataFile       string        `koanf:"data_file"`
	Backend        string        `koanf:"backend"`
	HistoryFile    string        `koanf:"history_file"`
	Prompt         string        `koanf:"prompt"`
	UpcomingWindow time.Duration `koanf:"upcoming_window"`
	OutputFormat   string        `koanf:"output"`
	Verbose        bool          `koanf:"verbose"`
	LogLevel       string        `koanf:"log_level"`
	LogFormat      string        `koanf:"log_format"`
}

// Default configuration values.
const (
	DefaultDataFile       = "addressbook.yaml"
	DefaultBackend        = "auto"
	DefaultPrompt         = "Enter a command: "
	DefaultUpcomingWindow = 7 * 24 * time.Hour
	DefaultOutput         = "auto" // TTY=text, non-TTY=markdown
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	EnvPrefix             = "CONTACTBOOK_"
)

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		DataFile:       DefaultDataFile,
		Backend:        DefaultBackend,
		Prompt:         DefaultPrompt,
		UpcomingWindow: DefaultUpcomingWindow,
		OutputFormat:   DefaultOutput,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}
