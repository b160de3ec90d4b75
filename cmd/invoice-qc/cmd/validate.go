package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/validate"
)

var (
	validateInput  string
	validateReport string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate extracted invoice data",
	Long: `Validate a batch of extracted invoices against the rule set.

The input is a JSON array of invoices, normally produced by the
extract command. A batch where every invoice fails its checks is
still a successful run; the command only errors on unreadable or
malformed input.

Examples:
  invoice-qc validate --input extracted.json
  invoice-qc validate --input extracted.json --report report.json
  invoice-qc validate -i extracted.json -f table`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "JSON file with extracted invoices (required)")
	validateCmd.Flags().StringVarP(&validateReport, "report", "r", "", "Report output file (default: stdout)")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	invoices, err := loadInvoices(validateInput)
	if err != nil {
		return err
	}

	report := validate.ValidateInvoices(invoices)

	if err := writeOutput(validateReport, func(w *os.File) error {
		switch outputFormat {
		case "json":
			return encodeJSON(w, report)
		case "table":
			return reportTable(w, report)
		default:
			return fmt.Errorf("unsupported output format: %s", outputFormat)
		}
	}); err != nil {
		return err
	}

	if validateReport != "" {
		printSummary(os.Stderr, report.Summary)
	}
	return nil
}

func loadInvoices(path string) ([]*model.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return model.DecodeInvoices(path, data)
}

func printSummary(w *os.File, s model.ValidationSummary) {
	fmt.Fprintf(w, "Validated %d invoices: %d valid, %d invalid\n",
		s.TotalInvoices, s.ValidInvoices, s.InvalidInvoices)

	codes := make([]string, 0, len(s.ErrorCounts))
	for code := range s.ErrorCounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  %s: %d\n", code, s.ErrorCounts[code])
	}
}

func reportTable(w *os.File, report *model.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INVOICE\tVALID\tERRORS")
	fmt.Fprintln(tw, "-------\t-----\t------")

	for _, r := range report.Results {
		errs := ""
		if len(r.Errors) > 0 {
			errs = r.Errors[0]
			if len(r.Errors) > 1 {
				errs = fmt.Sprintf("%s (+%d more)", errs, len(r.Errors)-1)
			}
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", r.InvoiceID, r.IsValid, errs)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printSummary(w, report.Summary)
	return nil
}
