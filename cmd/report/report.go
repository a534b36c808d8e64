// Package report handles the quarterly XLSX generation command
package report

import (
	"fmt"

	"tribute-xlsx/cmd/root"
	"tribute-xlsx/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate quarterly XLSX reports from a chat transcript",
	Long: `Generate one XLSX report per non-empty quarter from an exported chat
transcript, each with a summary table and the quarter's raw payments.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Report generation command called")
	root.Log.Infof("Input transcript file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	generator, err := report.NewGenerator(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error creating report generator: %v", err)
	}

	reports, err := generator.Process(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error processing transcript: %v", err)
	}
	if len(reports) == 0 {
		root.Log.Warn("No payment records found, nothing to report")
		return
	}

	paths, err := report.WriteWorkbooks(reports, root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("Error writing reports: %v", err)
	}

	for i, r := range reports {
		fmt.Printf("%s\n%s\n\n", r.Title(), report.FormatSummaryText(r.Summary))
		root.Log.WithField("file", paths[i]).Info("Report written")
	}
	root.Log.Info("Quarterly report generation completed successfully!")
}
