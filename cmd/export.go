package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses, budget and goals to a spreadsheet or JSON",
	RunE:  runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "Output format: xlsx or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default scholarhub.<format>, - for stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	format := strings.ToLower(exportFormat)
	var write func(io.Writer) error

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	state := e.sess.State()
	switch format {
	case "xlsx":
		write = func(w io.Writer) error { return export.WriteXLSX(w, state) }
	case "json":
		write = func(w io.Writer) error { return export.WriteJSON(w, state) }
	default:
		return fmt.Errorf("unknown export format %q (want xlsx or json)", exportFormat)
	}

	out := exportOut
	if out == "" {
		out = "scholarhub." + format
	}
	if out == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d expenses to %s\n", len(state.Expenses), out)
	}
	return nil
}
