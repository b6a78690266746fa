package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lascontrol/lascontrol/internal/budget"
	"github.com/lascontrol/lascontrol/internal/records"
)

func newExportCommand() *cobra.Command {
	var year int
	var out string

	cmd := &cobra.Command{
		Use:   "export <budget.xlsx>",
		Short: "Export normalized budget records as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], year, out)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to assign to records (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, path string, year int, out string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if year == 0 {
		year = cfg.Budget.Year
	}

	recs, err := budget.LoadSheet(path, cfg.Budget.Sheet, year)
	if err != nil {
		return err
	}

	if out == "" {
		return records.Write(cmd.OutOrStdout(), recs)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := records.Write(f, recs); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(recs), out)
	return nil
}
