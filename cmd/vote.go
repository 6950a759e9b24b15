/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// voteCmd represents the vote command
var voteCmd = &cobra.Command{
	Use:   "vote <review-id> <yes|no>",
	Short: "Vote on whether a review was helpful",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fail(fmt.Sprintf("invalid review id: %s", args[0]))
		}
		choice, err := domain.ParseHelpfulChoice(args[1])
		if err != nil {
			fail(err.Error())
		}

		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		session.Reviews.VoteHelpful(id, choice)
		if review, ok := session.Reviews.Get(id); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "review %d: %d yes / %d no\n",
				review.ID, review.Helpful.Yes, review.Helpful.No)
			return
		}
		// Unknown review IDs are a quiet no-op.
		fmt.Fprintf(cmd.OutOrStdout(), "review %d not found\n", id)
	},
}

func init() {
	rootCmd.AddCommand(voteCmd)
}
