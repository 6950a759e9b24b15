// Package errors provides error presentation for the CLI and TUI frontends.
package errors

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console output surface the CLI handler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr using the colors package.
type CLIHandler struct {
	colors ColorOutput
}

// NewCLIHandler creates a CLI error handler over the given output.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}
