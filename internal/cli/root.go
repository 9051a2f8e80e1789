package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gridview CLI.
// It wires up configuration overlays, logging and tracing, and the demo, render and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult   *logging.LogPathResult
		overlayPath string
	)

	cmd := &cobra.Command{
		Use:     "gridview",
		Short:   "Virtualized list and grid view for the terminal",
		Long:    "gridview: paint large tabular data sets with selection bands, sorting and draggable columns",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if overlayPath != "" {
				cfg := config.GetGlobalConfig()
				if err := config.ShallowMergeYAML(cfg, overlayPath); err != nil {
					return fmt.Errorf("applying --config: %w", err)
				}
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("applying --config: %w", err)
				}
			}

			result := setupLogging(cmd)
			logResult = &result

			if err := config.GlobalConfigError(); err != nil {
				logger.Warn().Ctx(cmd.Context()).Err(err).Msg("using default configuration")
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&overlayPath, "config", "",
		"YAML file whose top-level sections replace those of the loaded configuration")
	cmd.AddCommand(newDemoCmd(), newRenderCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse 10,000 synthetic tracks interactively
  gridview demo --rows 10000

  # Drive the demo with tcell instead of Bubble Tea
  gridview demo --backend tcell

  # Print one frame with rows 3-5 and 9 selected and row 4 focused
  gridview render --rows 40 --select 3-5,9 --focus 4

  # Show the effective configuration
  gridview config show`
