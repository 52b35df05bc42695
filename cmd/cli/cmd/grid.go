// Package cmd - grid command
package cmd

import (
	"github.com/spf13/cobra"

	"pricing-configurator/core/output"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
)

var gridTier string

// gridCmd prints every price the table can produce
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print every sessions/visio/period combination with its total",
	Long: `Print the full price grid of the table, one row per combination.

Examples:
  pricing-configurator grid
  pricing-configurator grid --tier expert --format json`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().StringVarP(&gridTier, "tier", "t", "", "only this tier")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	table, _, layoutPath, err := loadEngine()
	if err != nil {
		return err
	}

	tiers := table.Tiers()
	if gridTier != "" {
		tier, ok := types.ParseTier(gridTier)
		if !ok {
			return apperrors.Inputf("unknown tier %q", gridTier)
		}
		tiers = []types.Tier{tier}
	}

	var quotes []pricing.Quote
	for _, tier := range tiers {
		grid, err := table.Grid(tier)
		if err != nil {
			return apperrors.Pricing("failed to build grid", err)
		}
		quotes = append(quotes, grid...)
	}

	return writeResult(cmd, &output.Result{Quotes: quotes}, table, layoutPath)
}
