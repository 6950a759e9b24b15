package errors

import "github.com/nebulahq/chainpulse/internal/colors"

// consoleColors adapts the colors package functions to ColorOutput.
type consoleColors struct{}

func (consoleColors) Error(msgs ...string)   { colors.Error(msgs...) }
func (consoleColors) Warning(msgs ...string) { colors.Warning(msgs...) }
func (consoleColors) Info(msgs ...string)    { colors.Info(msgs...) }
func (consoleColors) Success(msgs ...string) { colors.Success(msgs...) }

// DefaultCLIHandler returns a CLIHandler writing through the colors package.
func DefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(consoleColors{})
}
