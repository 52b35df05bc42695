// Package cmd - render and simulate commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-configurator/core/configurator"
	"pricing-configurator/core/output"
	"pricing-configurator/core/types"
	apperrors "pricing-configurator/internal/errors"
	"pricing-configurator/internal/logging"
)

var renderPeriod string

// renderCmd shows the page after its initial pass
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every pricing card after the initial pass",
	Long: `Run the page's initial pass and print every card.

Examples:
  pricing-configurator render
  pricing-configurator render --period yearly --format html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

// simulateCmd replays user events
var simulateCmd = &cobra.Command{
	Use:   "simulate EVENT...",
	Short: "Replay slider and billing events and show the page after each",
	Long: `Replay events in order, printing the page after each one.

An event is either <slider-id>=<position> or billing=<control-id>.
With the built-in layout the sliders are starter-sessions, starter-visio,
expert-sessions and expert-visio, and the controls monthlyBtn and yearlyBtn.

Examples:
  pricing-configurator simulate starter-sessions=80 starter-visio=2
  pricing-configurator simulate billing=yearlyBtn expert-sessions=120`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	renderCmd.Flags().StringVarP(&renderPeriod, "period", "p", "", "billing period to select before printing")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newConfigurator() (*configurator.Configurator, string, error) {
	table, layout, layoutPath, err := loadEngine()
	if err != nil {
		return nil, layoutPath, err
	}
	conf, err := configurator.New(table, layout)
	if err != nil {
		return nil, layoutPath, apperrors.Wrap(apperrors.TypeConfig, "invalid layout", err)
	}
	logReport(conf.Init())
	return conf, layoutPath, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	conf, layoutPath, err := newConfigurator()
	if err != nil {
		return err
	}

	if renderPeriod != "" {
		period, ok := types.ParseBillingPeriod(renderPeriod)
		if !ok {
			return apperrors.Inputf("unknown billing period %q", renderPeriod)
		}
		var control string
		for _, c := range conf.Snapshot().Controls {
			if c.Period == period {
				control = c.ID
			}
		}
		report, err := conf.Handle(configurator.BillingSelect{ControlID: control})
		if err != nil {
			return err
		}
		logReport(report)
	}

	return writeResult(cmd, &output.Result{Pages: []*configurator.Snapshot{conf.Snapshot()}}, conf.Table(), layoutPath)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	events, err := configurator.ParseEvents(args)
	if err != nil {
		return err
	}

	conf, layoutPath, err := newConfigurator()
	if err != nil {
		return err
	}

	pages := make([]*configurator.Snapshot, 0, len(events))
	for _, ev := range events {
		report, err := conf.Handle(ev)
		if err != nil {
			return apperrors.Wrapf(apperrors.TypeInput, err, "event %s", ev)
		}
		logReport(report)

		snap := conf.Snapshot()
		snap.Event = ev.String()
		pages = append(pages, snap)
	}

	return writeResult(cmd, &output.Result{Pages: pages}, conf.Table(), layoutPath)
}

func logReport(r *configurator.Report) {
	logging.Debug("event applied",
		zap.String("event", r.Event),
		zap.Strings("synced", r.Synced),
		zap.Strings("rendered", r.Rendered),
		zap.Int("failures", len(r.Failures)))
}
