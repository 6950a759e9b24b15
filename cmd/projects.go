/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nebulahq/chainpulse/internal/catalog"
	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/format"
)

var (
	projectsCategory string
	projectsSearch   string
	projectsFormat   string
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse the ecosystem project directory",
	Long: `Browse the project directory, optionally filtered by category or a
search query over name, symbol, and description.`,
	Run: func(cmd *cobra.Command, args []string) {
		projects, err := getProjects()
		if err != nil {
			fail(err.Error())
		}

		var category domain.ProjectCategory
		if projectsCategory != "" {
			category, err = domain.ParseProjectCategory(projectsCategory)
			if err != nil {
				fail(err.Error())
			}
		}

		ctx := context.Background()
		cat, err := catalog.New()
		if err != nil {
			fail(err.Error())
		}
		defer func() {
			_ = cat.Close()
		}()
		if err := cat.Load(ctx, projects); err != nil {
			fail(err.Error())
		}

		listed, err := cat.List(ctx, category, projectsSearch)
		if err != nil {
			fail(err.Error())
		}

		formatter := format.GetFormatter(outputFormat(projectsFormat))
		if err := formatter.FormatProjects(listed, cmd.OutOrStdout()); err != nil {
			fail(err.Error())
		}
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectsCategory, "category", "", "only show this category: defi, nft, infra, gaming, or dao")
	projectsCmd.Flags().StringVar(&projectsSearch, "search", "", "filter projects matching this query")
	projectsCmd.Flags().StringVar(&projectsFormat, "format", "", "output format: simple, table, or json")
	rootCmd.AddCommand(projectsCmd)
}
