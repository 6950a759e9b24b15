/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// markAllReadCmd represents the mark-all-read command
var markAllReadCmd = &cobra.Command{
	Use:   "mark-all-read",
	Short: "Mark every notification as read",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		session.Notifications.MarkAllRead()
		fmt.Fprintln(cmd.OutOrStdout(), "0 unread")
	},
}

func init() {
	rootCmd.AddCommand(markAllReadCmd)
}
