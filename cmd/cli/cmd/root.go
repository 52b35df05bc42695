// Package cmd provides the CLI commands for pricing-configurator.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-configurator/adapters/hcl"
	"pricing-configurator/core/catalog"
	"pricing-configurator/core/configurator"
	"pricing-configurator/core/output"
	"pricing-configurator/core/pricing"
	"pricing-configurator/internal/config"
	"pricing-configurator/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	layoutFile   string
	outputFormat string
	noColor      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricing-configurator",
	Short: "Price subscription cards from sessions, visio hours and billing period",
	Long: `pricing-configurator drives the pricing cards of the marketing site.

Each card has a tier, a sessions slider and a visio slider. Prices come from
a static table; the monthly/yearly toggle picks the column.

Examples:
  pricing-configurator quote --tier starter --sessions 80 --visio-step 2
  pricing-configurator grid --tier expert --format markdown
  pricing-configurator simulate starter-sessions=120 billing=yearlyBtn`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or YAML (default is $HOME/.pricing-configurator.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&layoutFile, "layout", "l", "", "HCL layout file (default is the built-in layout)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, html, markdown)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pricing-configurator version %s\n", Version)
	},
}

// loadEngine returns the price table and layout selected by flags and config
func loadEngine() (*pricing.PriceTable, configurator.Layout, string, error) {
	cfg := config.Get()

	path := layoutFile
	if path == "" {
		path = cfg.Pricing.LayoutPath
	}
	if path == "" {
		layout := catalog.DefaultLayout()
		if cfg.Pricing.DefaultPeriod != "" {
			layout.Billing.Default = cfg.Pricing.DefaultPeriod
		}
		return catalog.DefaultTable(), layout, "", nil
	}

	result, err := hcl.NewLoader().LoadFile(path)
	if err != nil {
		return nil, configurator.Layout{}, path, err
	}
	logging.Debug("layout loaded",
		zap.String("path", path),
		zap.Bool("table_from_file", result.TableFromFile),
		zap.Bool("layout_from_file", result.LayoutFromFile))
	return result.Table, result.Layout, path, nil
}

// writeResult renders result in the selected format to the command's stdout
func writeResult(cmd *cobra.Command, result *output.Result, table *pricing.PriceTable, layoutPath string) error {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewRegistry(noColor || cfg.Output.NoColor).Get(output.Format(format))
	if err != nil {
		return err
	}

	result.Metadata = output.Metadata{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
		Layout:    layoutPath,
	}
	if table != nil {
		result.Metadata.TableFingerprint = table.Fingerprint().Hex()
	}
	return formatter.Render(cmd.OutOrStdout(), result)
}
