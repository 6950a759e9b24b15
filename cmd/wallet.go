/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/wallet"
)

// walletCmd represents the wallet command
var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the wallet connection status",
	Run: func(cmd *cobra.Command, args []string) {
		connector := wallet.NewSessionConnectorFromEnv()
		if connector.IsAuthenticated() {
			fmt.Fprintf(cmd.OutOrStdout(), "connected: %s\n", connector.Address())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "not connected (set %s)\n", wallet.EnvWalletAddress)
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
}
