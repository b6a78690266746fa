package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lascontrol/lascontrol/internal/config"
)

func newInitCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default lascontrol.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, year)
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "default year for loaded records")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, year int) error {
	path := filepath.Join(dir, config.FileName)

	cfg := config.Default(year)
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
