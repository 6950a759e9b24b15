/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/config"
	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/tui"
)

var tuiWallet string

// runProgram is swappable in tests.
var runProgram = func(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal interface",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}
		projects, err := getProjects()
		if err != nil {
			fail(err.Error())
		}

		connector := getConnector(tuiWallet)
		policy, _ := domain.ParseRankPolicy(
			config.Get(config.KeyDefaultRankPolicy, domain.DefaultRankPolicy().String()))

		model := tui.NewModel(session, connector, projects, tui.Options{
			RankPolicy:  policy,
			UnreadFirst: config.GetBool(config.KeyUnreadFirst, true),
		})

		logger.Info("starting tui", "projects", len(projects))
		if err := runProgram(model); err != nil {
			fail(err.Error())
		}
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiWallet, "wallet", "", "wallet address to act as")
	rootCmd.AddCommand(tuiCmd)
}
