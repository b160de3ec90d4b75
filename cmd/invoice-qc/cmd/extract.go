package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-qc/internal/extract"
	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/pdftext"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract invoice data from PDF files",
	Long: `Extract structured invoice data from one or more PDF files.

Arguments may be individual files, glob patterns, or directories.
Directories are scanned for .pdf files. Files whose text layer cannot
be read still produce an invoice record, with only the source file
set, so the validation stage can report them as incomplete.

Examples:
  invoice-qc extract invoice.pdf
  invoice-qc extract invoices/ -o extracted.json
  invoice-qc extract 'scans/*.pdf' -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	invoices, err := extractFiles(args)
	if err != nil {
		return err
	}

	return writeOutput(extractOutput, func(w *os.File) error {
		switch outputFormat {
		case "json":
			return encodeJSON(w, invoices)
		case "table":
			return invoiceTable(w, invoices)
		default:
			return fmt.Errorf("unsupported output format: %s", outputFormat)
		}
	})
}

// extractFiles runs the extraction stage over every PDF named by args,
// in sorted path order.
func extractFiles(args []string) ([]*model.Invoice, error) {
	files, err := collectFiles(args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found")
	}

	printVerbose("Found %d files to extract\n", len(files))

	docs := make([]extract.Document, 0, len(files))
	for _, file := range files {
		printVerbose("Reading: %s\n", file)

		text, err := pdftext.FromFile(file)
		if err != nil {
			printVerbose("  text extraction failed: %v\n", err)
			text = ""
		}
		docs = append(docs, extract.Document{Text: text, SourceID: filepath.Base(file)})
	}

	return newExtractor().ExtractAll(docs), nil
}

func newExtractor() *extract.Extractor {
	if profileID != "" {
		return extract.New(extract.WithProfile(profileID))
	}
	return extract.New()
}

// collectFiles expands args into a sorted, de-duplicated list of PDF
// paths. Each arg may be a file, a glob pattern, or a directory.
func collectFiles(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}
			if !info.IsDir() {
				add(arg)
				continue
			}
			matches = []string{arg}
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if !info.IsDir() {
				if isPDFPath(match) {
					add(match)
				}
				continue
			}

			err = filepath.Walk(match, func(path string, fi os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !fi.IsDir() && isPDFPath(path) {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func isPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

func writeOutput(path string, write func(*os.File) error) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return write(w)
}

func encodeJSON(w *os.File, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func invoiceTable(w *os.File, invoices []*model.Invoice) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNUMBER\tDATE\tSELLER\tCURRENCY\tNET\tGROSS\tITEMS")
	fmt.Fprintln(tw, "----\t------\t----\t------\t--------\t---\t-----\t-----")

	for _, inv := range invoices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			inv.SourceFile,
			inv.InvoiceNumber,
			inv.InvoiceDate,
			inv.SellerName,
			inv.Currency,
			decimalString(inv.NetTotal),
			decimalString(inv.GrossTotal),
			len(inv.LineItems),
		)
	}

	return tw.Flush()
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
