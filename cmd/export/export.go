// Package export handles the flat CSV export command
package export

import (
	"tribute-xlsx/cmd/root"
	"tribute-xlsx/internal/common"
	"tribute-xlsx/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all extracted payment records to a single CSV file",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("CSV export command called")
	root.Log.Infof("Input transcript file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	output := root.SharedFlags.Output
	if output == "" || output == "." {
		output = "payments.csv"
	}

	generator, err := report.NewGenerator(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error creating report generator: %v", err)
	}

	records, err := generator.Extract(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error extracting records: %v", err)
	}
	if len(records) == 0 {
		root.Log.Warn("No payment records found, nothing to export")
		return
	}

	if err := common.WriteRecordsToCSV(records, output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.WithField("file", output).Info("CSV export completed successfully!")
}
