/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// markReadCmd represents the mark-read command
var markReadCmd = &cobra.Command{
	Use:   "mark-read <id>",
	Short: "Mark a notification as read",
	Long: `Mark the notification with the given ID as read.

Marking an already-read or unknown notification is a no-op.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fail(fmt.Sprintf("invalid notification id: %s", args[0]))
		}

		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		session.Notifications.MarkRead(id)
		logger.Debug("notification marked read", "id", id)
		fmt.Fprintf(cmd.OutOrStdout(), "%d unread\n", session.Notifications.UnreadCount())
	},
}

func init() {
	rootCmd.AddCommand(markReadCmd)
}
