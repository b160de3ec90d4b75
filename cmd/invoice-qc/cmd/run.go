package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/validate"
)

var runOutput string

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Extract and validate in one pass",
	Long: `Run the full pipeline: extract invoice data from the given PDF
files, then validate the batch.

The output bundles the extracted invoices and the validation report,
in the same shape the HTTP API returns.

Examples:
  invoice-qc run invoices/
  invoice-qc run invoices/ -o results.json
  invoice-qc run 'scans/*.pdf' -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output file (default: stdout)")
}

// runResult mirrors the HTTP run endpoint's response body.
type runResult struct {
	ExtractedInvoices []*model.Invoice `json:"extracted_invoices"`
	Validation        *model.Report    `json:"validation"`
}

func runRun(cmd *cobra.Command, args []string) error {
	invoices, err := extractFiles(args)
	if err != nil {
		return err
	}

	report := validate.ValidateInvoices(invoices)

	if err := writeOutput(runOutput, func(w *os.File) error {
		switch outputFormat {
		case "json":
			return encodeJSON(w, runResult{ExtractedInvoices: invoices, Validation: report})
		case "table":
			if err := invoiceTable(w, invoices); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return reportTable(w, report)
		default:
			return fmt.Errorf("unsupported output format: %s", outputFormat)
		}
	}); err != nil {
		return err
	}

	if runOutput != "" {
		printSummary(os.Stderr, report.Summary)
	}
	return nil
}
