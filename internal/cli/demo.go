package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/tui"
)

// Demo backends.
const (
	backendBubbleTea = "bubbletea"
	backendTcell     = "tcell"
)

// demoFlags holds the flags of the demo command.
type demoFlags struct {
	rows    int
	seed    uint64
	backend string
	lang    string
}

func newDemoCmd() *cobra.Command {
	var flags demoFlags

	cmd := &cobra.Command{
		Use:         "demo",
		Short:       "Browse a synthetic music library interactively",
		Annotations: map[string]string{annotationInteractive: "true"},
		Example: `  # 10,000 rows, play counts formatted for German
  gridview demo --rows 10000 --lang de`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.rows, "rows", 1000, "number of tracks to generate")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1, "seed for the generated library")
	cmd.Flags().StringVar(&flags.backend, "backend", backendBubbleTea, "terminal backend: bubbletea or tcell")
	cmd.Flags().StringVar(&flags.lang, "lang", "en", "BCP 47 language tag used to format numbers")

	return cmd
}

func runDemo(cmd *cobra.Command, flags demoFlags) error {
	if flags.rows < 0 {
		return fmt.Errorf("--rows must be >= 0, got %d", flags.rows)
	}
	tag, err := language.Parse(flags.lang)
	if err != nil {
		return fmt.Errorf("parsing --lang: %w", err)
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	lib, err := newLibrary(config.GetGlobalConfig(), GenerateTracks(flags.rows, flags.seed), tag, *log)
	if err != nil {
		return err
	}
	log.Info().Int("rows", flags.rows).Str("backend", flags.backend).Msg("starting demo")

	switch flags.backend {
	case backendBubbleTea:
		model := tui.NewModel(lib.session, tui.DefaultKeyMap())
		model.SetMatcher(matchTrack)
		p := tea.NewProgram(model,
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err = p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("running demo: %w", err)
		}
		return nil
	case backendTcell:
		scr, scrErr := tcell.NewScreen()
		if scrErr != nil {
			return fmt.Errorf("opening terminal: %w", scrErr)
		}
		if err = scr.Init(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		defer scr.Fini()
		if err = tui.RunScreen(ctx, scr, lib.session); err != nil && !errors.Is(err, ctx.Err()) {
			return fmt.Errorf("running demo: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown --backend %q (want %s or %s)", flags.backend, backendBubbleTea, backendTcell)
	}
}
