package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lascontrol/lascontrol/internal/budget"
	"github.com/lascontrol/lascontrol/internal/chart"
)

func newChartCommand() *cobra.Command {
	var year int
	var kind string
	var out string

	cmd := &cobra.Command{
		Use:   "chart <budget.xlsx>",
		Short: "Render a chart from a budget spreadsheet",
		Long: `Render a chart from a budget spreadsheet.

Chart types:
  line     income vs expense trend lines
  bar      income vs expense side-by-side bars
  balance  signed monthly balance (income - expense + contributions)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, args[0], year, kind, out)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to load and chart (default from config)")
	cmd.Flags().StringVar(&kind, "type", string(chart.KindLine), "chart type: line, bar or balance")
	cmd.Flags().StringVar(&out, "out", "", "output HTML path (default <output_dir>/<type>-<year>.html)")

	return cmd
}

func runChart(cmd *cobra.Command, path string, year int, kindArg, out string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if year == 0 {
		year = cfg.Budget.Year
	}

	kind, err := chart.ParseKind(kindArg)
	if err != nil {
		return err
	}

	records, err := budget.LoadSheet(path, cfg.Budget.Sheet, year)
	if err != nil {
		return err
	}

	if out == "" {
		if err := os.MkdirAll(cfg.Charts.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		out = filepath.Join(cfg.Charts.OutputDir, fmt.Sprintf("%s-%d.html", kind, year))
	}

	if err := chart.RenderFile(out, records, year, kind); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s chart for %d (%d records) to %s\n", kind, year, len(records), out)
	return nil
}
