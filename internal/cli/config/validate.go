package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contactbook/internal/storage"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json", "table"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if _, err := storage.ResolveBackend(storage.Backend(c.Backend), c.DataFile); err != nil {
		return err
	}
	if c.UpcomingWindow <= 0 {
		return fmt.Errorf("upcoming_window must be positive, got %s", c.UpcomingWindow)
	}
	if err := oneOf("output", c.OutputFormat, validOutputs); err != nil {
		return err
	}
	if err := oneOf("log_level", c.LogLevel, validLogLevels); err != nil {
		return err
	}
	return oneOf("log_format", c.LogFormat, validLogFormats)
}

func oneOf(key, value string, valid []string) error {
	for _, v := range valid {
		if strings.EqualFold(value, v) {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (valid: %s)", key, value, strings.Join(valid, ", "))
}
