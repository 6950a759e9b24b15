// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	logger       Logger
	loggerMu     sync.RWMutex
)

func init() {
	if val := os.Getenv("CHAINPULSE_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func mirror(level string, msg string) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return
	}
	switch level {
	case "debug":
		l.Debug(msg)
	case "warn":
		l.Warn(msg)
	case "error":
		l.Error(msg)
	default:
		l.Info(msg)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror("error", msg)
	fmt.Fprintf(os.Stderr, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror("warn", msg)
	fmt.Fprintf(os.Stderr, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror("info", msg)
	fmt.Fprintf(os.Stdout, "%s%s%s\n", Cyan, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror("info", msg)
	fmt.Fprintf(os.Stdout, "%s%s %s%s\n", Green, checkmark, msg, Reset)
}

// Debug outputs a debug message to stderr when debug output is enabled.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror("debug", msg)
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%sDebug:%s %s%s\n", Blue, Reset, msg, Reset)
}
