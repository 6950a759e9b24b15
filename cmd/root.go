/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/colors"
	"github.com/nebulahq/chainpulse/internal/config"
	"github.com/nebulahq/chainpulse/internal/logging"
	"github.com/nebulahq/chainpulse/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chainpulse",
	Short: "A terminal pulse on the blockchain ecosystem around you.",
	Long:  `A terminal pulse on the blockchain ecosystem around you.`,
}

// logger is the process-wide structured logger. It is a no-op unless
// logging is enabled in the configuration.
var logger, _ = logging.Init(logging.Config{})

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	config.Load()

	if config.GetBool(config.KeyDebug, false) {
		colors.SetDebug(true)
	}

	l, err := logging.Init(logging.FromGlobalConfig())
	if err != nil {
		// Logging failures never block the CLI.
		l, _ = logging.Init(logging.Config{})
	}
	logger = l
	defer func() {
		_ = logger.Shutdown()
	}()

	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = version.Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Set custom help function that keeps commands in a stable order
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"feed",
		"inbox",
		"mark-read",
		"mark-all-read",
		"projects",
		"reviews",
		"review",
		"vote",
		"favorite",
		"favorites",
		"wallet",
		"tui",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-24s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`chainpulse v%s

A terminal pulse on the blockchain ecosystem around you.

USAGE:
    chainpulse [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.Version, strings.Join(cmdLines, "\n"))
	fmt.Print(helpText)
}
