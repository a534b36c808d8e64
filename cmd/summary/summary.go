// Package summary handles the text summary command
package summary

import (
	"fmt"

	"tribute-xlsx/cmd/root"
	"tribute-xlsx/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-quarter payment summaries without writing files",
	Run:   summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")

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
		root.Log.Warn("No payment records found")
		return
	}

	for _, r := range reports {
		fmt.Printf("%s\n%s\n\n", r.Title(), report.FormatSummaryText(r.Summary))
	}
}
