package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-advisor/internal/export"
	"github.com/jonathan/placement-advisor/internal/types"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write an analysis as a plain-text report",
	Long:  "Renders the analysis (the current one when no id is given) into its fixed text report. Without --out the report goes to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (defaults to the generated report name; '-' for stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var result *types.AnalysisResult
	if len(args) == 1 {
		result = gateway.Analysis(cmd.Context(), args[0])
	} else {
		result = gateway.Current(cmd.Context())
	}
	if result == nil {
		fmt.Println("No analysis found.")
		return nil
	}

	report := export.Report(result)

	if exportOut == "-" {
		fmt.Print(report)
		return nil
	}

	path := exportOut
	if path == "" {
		path = export.Filename(result)
	}
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}
