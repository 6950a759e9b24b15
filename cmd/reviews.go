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

var reviewsFormat string

// reviewsCmd represents the reviews command
var reviewsCmd = &cobra.Command{
	Use:   "reviews <project-id>",
	Short: "List reviews for a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		reviews := session.Reviews.ListFor(args[0])
		formatter := format.GetFormatter(outputFormat(reviewsFormat))
		if err := formatter.FormatReviews(reviews, cmd.OutOrStdout()); err != nil {
			fail(err.Error())
		}
		if len(reviews) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\naverage rating: %.1f\n", domain.AverageRating(reviews))
		}
	},
}

func init() {
	reviewsCmd.Flags().StringVar(&reviewsFormat, "format", "", "output format: simple, table, or json")
	rootCmd.AddCommand(reviewsCmd)
}
