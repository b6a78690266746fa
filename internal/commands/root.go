package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/lascontrol/lascontrol/internal/buildinfo"
	"github.com/lascontrol/lascontrol/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lascontrol",
		Short:   "Personal budget spreadsheet loader and chart renderer",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newChartCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// loadConfig reads lascontrol.yaml from the working directory, falling back
// to defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(time.Now().Year()), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
