// Package logging provides structured file logging for chainpulse.
package logging

import (
	"os"
	"path/filepath"

	"github.com/nebulahq/chainpulse/internal/config"
)

// Config holds logging configuration.
type Config struct {
	// Enabled determines whether logging is active.
	Enabled bool
	// Level is the minimum log level to record.
	Level string
	// MaxFiles is the maximum number of log files to retain.
	MaxFiles int
	// Command is the name of the command being executed.
	Command string
	// PID is the process ID.
	PID int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig creates a logging Config from the global configuration.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool(config.KeyLoggingEnabled, false)
	cfg.Level = config.Get(config.KeyLoggingLevel, "info")
	cfg.MaxFiles = config.GetInt(config.KeyLoggingMaxFiles, 10)
	return cfg
}

// LogDir returns the directory where log files should be stored.
func LogDir() (string, error) {
	base := filepath.Join(os.TempDir(), "chainpulse", "logs")
	if err := os.MkdirAll(base, 0700); err != nil {
		return "", err
	}
	return base, nil
}
