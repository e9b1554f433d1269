package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/internal/export"
	"github.com/iwvelando/finlit/internal/logging"
	"github.com/iwvelando/finlit/internal/scenario"
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/output"
	"github.com/iwvelando/finlit/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig       string
	flagLogLevel     string
	flagOutputFormat string
	flagExport       string
	flagNoExport     bool
	flagDashboard    bool
)

var rootCmd = &cobra.Command{
	Use:   "finlit",
	Short: "Financial literacy calculators with country-specific rules",
	Long: "Computes emergency fund targets, budget splits, savings goals, debt payoff\n" +
		"and compound growth for each configured scenario, then writes an export file.",
	SilenceUsage: true,
	RunE:         runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&flagOutputFormat, "output-format", "o", "", "type of output override: pretty, csv, json")
	rootCmd.Flags().StringVarP(&flagExport, "export", "e", "", "export file override (.json, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&flagNoExport, "no-export", false, "skip writing the export file")
	rootCmd.Flags().BoolVar(&flagDashboard, "dashboard", false, "print the summary dashboard of the first scenario")
}

// loadConfiguration reads the config file. When the default file is absent
// the built-in demonstration is used instead.
func loadConfiguration(path string, explicit bool) (*config.Configuration, bool, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, false, nil
	}
	if _, statErr := os.Stat(path); !explicit && errors.Is(statErr, fs.ErrNotExist) {
		return config.DefaultConfiguration(), true, nil
	}
	return nil, false, err
}

// setup is the shared loading path of all commands.
func setup(cmd *cobra.Command) (*config.Configuration, *zap.Logger, error) {
	explicit := cmd.Flags().Changed("config")
	conf, builtIn, err := loadConfiguration(flagConfig, explicit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", flagConfig, err)
	}

	logger, err := logging.New(conf.Logging, flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if builtIn {
		logger.Info(fmt.Sprintf("no configuration at %s, running the built-in demonstration", flagConfig),
			zap.String("op", "main.setup"),
		)
	}
	return conf, logger, nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	conf, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if flagOutputFormat != "" {
		outputFormat = flagOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	table, err := conf.RuleTable()
	if err != nil {
		return fmt.Errorf("failed to build country rule table: %w", err)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration(table) {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runReport"),
		)
	}

	reports, err := scenario.GetReports(logger, *conf)
	if err != nil {
		return fmt.Errorf("failed to compute reports: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := output.Write(out, outputFormat, reports); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if flagDashboard && len(reports) > 0 {
		_, _ = fmt.Fprintln(out)
		output.Dashboard(out, reports[0])
	}

	if flagNoExport || conf.Export.Disabled {
		return nil
	}

	path := conf.ExportPath()
	if flagExport != "" {
		path = flagExport
	}
	if err := export.Write(path, export.NewDocument(table, reports, time.Now())); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	logger.Info("export written",
		zap.String("op", "main.runReport"),
		zap.String("path", path),
		zap.Int("scenarios", len(reports)),
	)
	return nil
}
