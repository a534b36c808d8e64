// Package root contains the root command for the application
package root

import (
	"tribute-xlsx/internal/aggregator"
	"tribute-xlsx/internal/classifier"
	"tribute-xlsx/internal/common"
	"tribute-xlsx/internal/config"
	"tribute-xlsx/internal/extractor"
	"tribute-xlsx/internal/report"
	"tribute-xlsx/internal/transcriptparser"
	"tribute-xlsx/internal/xlsxwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Sender string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tribute-xlsx",
		Short: "A CLI tool to turn Tribute bot chat exports into quarterly payment reports.",
		Long: `tribute-xlsx reads an exported Telegram chat transcript (JSON) from the
Tribute payment-notification bot, extracts the payment events and produces
one XLSX report per quarter with summary statistics and the raw payments.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tribute-xlsx!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Flags beat config file and environment.
			if SharedFlags.Sender != "" {
				Cfg.Report.Sender = SharedFlags.Sender
			}
			if SharedFlags.Output == "" {
				SharedFlags.Output = Cfg.Report.OutputDir
			}

			// Set the configured logger for all pipeline packages
			transcriptparser.SetLogger(Log)
			classifier.SetLogger(Log)
			extractor.SetLogger(Log)
			aggregator.SetLogger(Log)
			xlsxwriter.SetLogger(Log)
			report.SetLogger(Log)
			common.SetLogger(Log)

			common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input transcript JSON file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory (reports) or file (export)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Sender, "sender", "s", "", "Bot account name to filter on (default from config, \"Tribute\")")
}
