/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/wallet"
)

var (
	reviewRating  int
	reviewComment string
	reviewAuthor  string
	reviewWallet  string
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <project-id>",
	Short: "Submit a review for a project",
	Long: `Submit a review for a project. A connected wallet is required; pass
--wallet or set CHAINPULSE_WALLET.

Ratings run from 1 to 5 and the comment must not be empty. On submission
failure the review is discarded and can be retried.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		connector := getConnector(reviewWallet)
		gate := wallet.NewGate(connector, nil)

		projectID := args[0]
		author := reviewAuthor
		if author == "" {
			author = connector.Address()
		}
		draft := domain.ReviewDraft{
			Author:  author,
			Rating:  reviewRating,
			Comment: reviewComment,
		}

		var review domain.Review
		var submitErr error
		ran := gate.RequireAuth(func() {
			review, submitErr = session.Reviews.Submit(context.Background(), projectID, draft)
		})
		if !ran {
			gate.Resolve(false)
			fail("wallet connection required: pass --wallet or set " + wallet.EnvWalletAddress)
		}
		if submitErr != nil {
			logger.Warn("review submission rejected", "project", projectID, "error", submitErr.Error())
			fail(submitErr.Error())
		}

		logger.Info("review published", "project", projectID, "review_id", review.ID)
		errorHandler.Success(fmt.Sprintf("Review %d published for %s", review.ID, projectID))
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewRating, "rating", 0, "star rating from 1 to 5")
	reviewCmd.Flags().StringVar(&reviewComment, "comment", "", "review text")
	reviewCmd.Flags().StringVar(&reviewAuthor, "author", "", "display name (defaults to the wallet address)")
	reviewCmd.Flags().StringVar(&reviewWallet, "wallet", "", "wallet address to submit as")
	rootCmd.AddCommand(reviewCmd)
}
