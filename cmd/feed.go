/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/config"
	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/format"
	"github.com/nebulahq/chainpulse/internal/search"
)

var (
	feedRank     string
	feedPlatform string
	feedSearch   string
	feedFormat   string
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the ranked community feed",
	Long: `Show the community feed ranked by the selected policy.

Policies:
  latest    newest posts first
  popular   most liked posts first
  trending  engagement weighted by post age`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := getSession()
		if err != nil {
			fail(err.Error())
		}

		rank := feedRank
		if rank == "" {
			rank = config.Get(config.KeyDefaultRankPolicy, domain.DefaultRankPolicy().String())
		}
		policy, err := domain.ParseRankPolicy(rank)
		if err != nil {
			fail(err.Error())
		}

		posts := session.RankedFeed(policy, time.Now())
		if feedPlatform != "" {
			posts = domain.FilterPostsByPlatform(posts, feedPlatform)
		}
		if feedSearch != "" {
			provider := search.NewTokenProvider(search.WithCaseInsensitive(true))
			posts = search.FilterPosts(posts, provider, feedSearch)
		}

		logger.Debug("rendering feed", "policy", policy.String(), "posts", len(posts))
		formatter := format.GetFormatter(outputFormat(feedFormat))
		if err := formatter.FormatPosts(posts, cmd.OutOrStdout()); err != nil {
			fail(err.Error())
		}
	},
}

// outputFormat resolves the effective output format from flag then config.
func outputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(config.KeyOutputFormat, string(format.FormatterTypeSimple))
}

func init() {
	feedCmd.Flags().StringVar(&feedRank, "rank", "", "ranking policy: latest, popular, or trending")
	feedCmd.Flags().StringVar(&feedPlatform, "platform", "", "only show posts from this platform")
	feedCmd.Flags().StringVar(&feedSearch, "search", "", "filter posts matching this query")
	feedCmd.Flags().StringVar(&feedFormat, "format", "", "output format: simple, table, or json")
	rootCmd.AddCommand(feedCmd)
}
