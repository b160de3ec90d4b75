package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	profileID    string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-qc",
	Short: "Extract and validate invoice data from PDF files",
	Long: `Invoice QC is a CLI tool for extracting structured data from PDF
invoices and running quality control checks on the result.

The pipeline has two stages:
  1. Extraction: pattern matching against the PDF text layer, with
     German and English field patterns selected by language detection.
  2. Validation: completeness, format, totals consistency, anomaly and
     duplicate checks producing a machine readable report.

Examples:
  # Extract all PDFs in a directory
  invoice-qc extract invoices/ -o extracted.json

  # Validate previously extracted invoices
  invoice-qc validate --input extracted.json --report report.json

  # Extract and validate in one pass
  invoice-qc run invoices/ -o results.json

  # Start the HTTP API
  invoice-qc serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&profileID, "profile", "", "Extraction profile (default: din5008)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
