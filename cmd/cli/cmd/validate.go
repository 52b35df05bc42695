// Package cmd - validate and config commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricing-configurator/adapters/hcl"
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/ui"
	"pricing-configurator/internal/config"
	apperrors "pricing-configurator/internal/errors"
)

// validateCmd checks a layout file without rendering it
var validateCmd = &cobra.Command{
	Use:   "validate LAYOUT",
	Short: "Check that a layout file loads and matches its price table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := hcl.NewLoader().LoadFile(args[0])
		if err != nil {
			return err
		}
		conf, err := configurator.New(result.Table, result.Layout)
		if err != nil {
			return apperrors.Wrap(apperrors.TypeConfig, "invalid layout", err)
		}
		report := conf.Init()

		out := ui.NewWriter(cmd.OutOrStdout(), noColor || config.Get().Output.NoColor)
		for _, f := range report.Failures {
			out.Warning("%s: %s", f.Target, f.Message)
		}
		snap := conf.Snapshot()
		out.Println("%s: %d cards, %d standalone sliders, %d tiers priced in %s",
			args[0], len(snap.Cards), len(snap.Sliders), len(result.Table.Tiers()), result.Table.Currency())
		out.Println("  price table fingerprint %s", result.Table.Fingerprint())
	if !result.TableFromFile {
			out.Println("  using the built-in price table")
		}
		if !result.LayoutFromFile {
			out.Println("  using the built-in card layout")
		}
		return nil
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the default configuration (JSON, or YAML for .yaml/.yml)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().Save(path); err != nil {
			return apperrors.Wrapf(apperrors.TypeConfig, err, "failed to write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := ui.NewWriter(cmd.OutOrStdout(), true)
		t := out.NewTable("Key", "Value")
		t.AddRow("version", cfg.Version)
		t.AddRow("pricing.layout_path", cfg.Pricing.LayoutPath)
		t.AddRow("pricing.default_period", cfg.Pricing.DefaultPeriod.String())
		t.AddRow("output.default_format", cfg.Output.DefaultFormat)
		t.AddRow("output.no_color", fmt.Sprint(cfg.Output.NoColor))
		t.AddRow("logging.level", cfg.Logging.Level)
		t.AddRow("logging.format", cfg.Logging.Format)
		t.AddRow("logging.output", cfg.Logging.Output)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
