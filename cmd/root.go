package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosap/internal/config"
	"github.com/alexiusacademia/gosap/internal/logging"
	"github.com/alexiusacademia/gosap/internal/setup"
	"github.com/alexiusacademia/gosap/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configFile string
	logLevel   string
	logDir     string
	unitsFlag  string

	// Loaded in PersistentPreRunE
	conf   *config.Config
	opts   setup.Options
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gosap",
	Short: "SAP2000 shell result post-processor",
	Long: `gosap - Go SAP2000 Result Post-Processor

A CLI tool for post-processing result tables exported from SAP2000.

This tool helps structural engineers:
  - Average shell forces over joints shared by several elements
  - Combine M11, M22 and M12 into Wood-Armer design moments
  - Plot design moments and print PDF summaries

Result tables are read from CSV, JSON, YAML or XLSX files.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gosap v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go SAP2000 Result Post-Processor                        ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Post-processing of shell, frame and joint result tables")
		fmt.Fprintln(out, "  exported from SAP2000.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Wood-Armer design moments for orthogonal and skew reinforcement")
		fmt.Fprintln(out, "    • Averaging of nodal results over shared joints")
		fmt.Fprintln(out, "    • Table conversion between CSV, JSON, YAML and XLSX")
		fmt.Fprintln(out, "    • Moment diagrams (terminal, PNG/SVG/PDF, HTML) and PDF reports")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gosap --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./gosap.yaml or $HOME/.gosap/gosap.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for rotating log files")
	rootCmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "", "Unit system of the results, name or code (see 'gosap units')")
}

// loadSettings reads the configuration, applies the global flags on top of
// it and builds the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		conf.Logging.Level = logLevel
	}
	if logDir != "" {
		conf.Logging.Directory = logDir
	}
	if unitsFlag != "" {
		conf.Units = unitsFlag
	}

	logOpts := conf.LoggingOptions()
	logOpts.Console = cmd.ErrOrStderr()
	if logger, err = logging.New(logOpts); err != nil {
		return err
	}

	if opts, err = conf.ResultOptions(); err != nil {
		return err
	}
	logger.Debug("settings loaded",
		zap.String("command", cmd.CommandPath()),
		zap.Stringer("units", opts.Units),
		zap.Stringer("nl_static", opts.NLStatic),
		zap.Stringer("ms_static", opts.MSStatic),
		zap.Stringer("mv_combo", opts.MVCombo),
	)
	return nil
}
