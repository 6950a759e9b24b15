/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/format"
)

var (
	inboxUnread   bool
	inboxCategory string
	inboxFormat   string
)

// inboxCmd represents the inbox command
var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Show the notification inbox",
	Long: `Show notifications in arrival order with their read state.

The unread count is printed as a trailing summary line.`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		filter := domain.NotificationFilter{}
		if inboxUnread {
			filter.ReadFilter = domain.ReadFilterUnread
		}
		if inboxCategory != "" {
			category, err := domain.ParseNotificationCategory(inboxCategory)
			if err != nil {
				fail(err.Error())
			}
			filter.Category = category
		}

		notifs := domain.FilterNotifications(session.Notifications.List(), filter)
		formatter := format.GetFormatter(outputFormat(inboxFormat))
		if err := formatter.FormatNotifications(notifs, cmd.OutOrStdout()); err != nil {
			fail(err.Error())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d unread\n", session.Notifications.UnreadCount())
	},
}

func init() {
	inboxCmd.Flags().BoolVar(&inboxUnread, "unread", false, "only show unread notifications")
	inboxCmd.Flags().StringVar(&inboxCategory, "category", "", "only show this category: new_project, review, or update")
	inboxCmd.Flags().StringVar(&inboxFormat, "format", "", "output format: simple, table, or json")
	rootCmd.AddCommand(inboxCmd)
}
