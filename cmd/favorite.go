/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/wallet"
)

var favoriteWallet string

// favoriteCmd represents the favorite command
var favoriteCmd = &cobra.Command{
	Use:   "favorite <project-id>",
	Short: "Toggle a project in your favorites",
	Long: `Toggle a project in your favorites. A connected wallet is required;
pass --wallet or set CHAINPULSE_WALLET.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		connector := getConnector(favoriteWallet)
		gate := wallet.NewGate(connector, nil)

		projectID := args[0]
		ran := gate.RequireAuth(func() {
			if session.Favorites.Toggle(projectID) {
				fmt.Fprintf(cmd.OutOrStdout(), "added %s to favorites\n", projectID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s from favorites\n", projectID)
			}
		})
		if !ran {
			gate.Resolve(false)
			fail("wallet connection required: pass --wallet or set " + wallet.EnvWalletAddress)
		}
	},
}

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite projects",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		ids := session.Favorites.List()
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no favorites yet")
			return
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
	},
}

func init() {
	favoriteCmd.Flags().StringVar(&favoriteWallet, "wallet", "", "wallet address to act as")
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
}
