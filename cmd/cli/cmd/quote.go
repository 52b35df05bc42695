// Package cmd - quote command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricing-configurator/core/configurator"
	"pricing-configurator/core/output"
	"pricing-configurator/core/pricing"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
)

var (
	quoteTier      string
	quoteSessions  int
	quoteVisioStep int
	quotePeriod    string
)

// quoteCmd prices one selection the way a card would display it
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price one tier/sessions/visio/period selection",
	Long: `Move the sliders of the card for --tier and print its price.

--sessions is the sessions slider value (40, 80 or 120 with the built-in
layout). --visio-step is the visio slider position (0-3), which maps to
0, 10, 20 or 50 hours.

Examples:
  pricing-configurator quote --tier starter --sessions 80 --visio-step 2
  pricing-configurator quote --tier expert --sessions 40 --visio-step 3 --period yearly`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "t", "starter", "tier (starter, expert)")
	quoteCmd.Flags().IntVarP(&quoteSessions, "sessions", "s", 40, "sessions slider value")
	quoteCmd.Flags().IntVar(&quoteVisioStep, "visio-step", 0, "visio slider position")
	quoteCmd.Flags().StringVarP(&quotePeriod, "period", "p", "monthly", "billing period (monthly, yearly)")

	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	tier, ok := types.ParseTier(quoteTier)
	if !ok {
		return apperrors.Inputf("unknown tier %q", quoteTier)
	}
	period, ok := types.ParseBillingPeriod(quotePeriod)
	if !ok {
		return apperrors.Inputf("unknown billing period %q", quotePeriod)
	}

	table, layout, layoutPath, err := loadEngine()
	if err != nil {
		return err
	}

	var spec *configurator.CardSpec
	for i := range layout.Cards {
		if layout.Cards[i].Tier == tier {
			spec = &layout.Cards[i]
			break
		}
	}
	if spec == nil {
		return apperrors.NotFound("card for tier", tier.String())
	}

	conf, err := configurator.New(table, layout)
	if err != nil {
		return apperrors.Wrap(apperrors.TypeConfig, "invalid layout", err)
	}
	conf.Init()

	events := []configurator.Event{
		configurator.SliderInput{SliderID: spec.Sessions, Raw: quoteSessions},
		configurator.SliderInput{SliderID: spec.Visio, Raw: quoteVisioStep},
		configurator.BillingSelect{ControlID: controlFor(layout, period)},
	}
	for _, ev := range events {
		if _, err := conf.Handle(ev); err != nil {
			return err
		}
	}

	view, _ := conf.Snapshot().Card(spec.ID)
	if view.Quote == nil {
		return apperrors.Pricing(fmt.Sprintf("card %s has no price", spec.ID), fmt.Errorf("%s", view.Error))
	}
	return writeResult(cmd, &output.Result{Quotes: []pricing.Quote{*view.Quote}}, table, layoutPath)
}

func controlFor(layout configurator.Layout, p types.BillingPeriod) string {
	if p == types.BillingYearly {
		return layout.Billing.YearlyID
	}
	return layout.Billing.MonthlyID
}
