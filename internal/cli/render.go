package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/surface"
	"github.com/rshade/gridview/internal/theme"
)

// Size used for render when stdout is not a terminal.
const (
	defaultRenderWidth  = 80
	defaultRenderHeight = 24
)

// Color modes for --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// renderFlags holds the flags of the render command.
type renderFlags struct {
	rows    int
	seed    uint64
	width   int
	height  int
	sel     string
	focus   int
	sort    string
	color   string
	lang    string
	rtl     bool
	noFocus bool
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Paint one frame of the demo library to stdout",
		Long: `Paint one frame of the demo library to stdout.

Output is ANSI colored when stdout is a terminal and plain text otherwise; --color
overrides the detection. Width and height default to the terminal size, or 80x24.`,
		Example: `  # Rows 3-5 and 9 selected, row 4 focused, sorted by plays descending
  gridview render --select 3-5,9 --focus 4 --sort plays:desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.rows, "rows", 40, "number of tracks to generate")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1, "seed for the generated library")
	cmd.Flags().IntVar(&flags.width, "width", 0, "frame width in cells (0 = terminal width)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "frame height in lines (0 = terminal height)")
	cmd.Flags().StringVar(&flags.sel, "select", "", "selected rows, e.g. 3-5,9")
	cmd.Flags().IntVar(&flags.focus, "focus", -1, "focused row (-1 = none)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort column ID with optional :asc or :desc")
	cmd.Flags().StringVar(&flags.color, "color", colorAuto, "color output: auto, always or never")
	cmd.Flags().StringVar(&flags.lang, "lang", "en", "BCP 47 language tag used to format numbers")
	cmd.Flags().BoolVar(&flags.rtl, "rtl", false, "lay the rows out right to left")
	cmd.Flags().BoolVar(&flags.noFocus, "unfocused", false, "paint as if the view did not have keyboard focus")

	return cmd
}

//nolint:cyclop // Each flag maps onto one view setting.
func runRender(cmd *cobra.Command, flags renderFlags) error {
	if flags.rows < 0 {
		return fmt.Errorf("--rows must be >= 0, got %d", flags.rows)
	}
	tag, err := language.Parse(flags.lang)
	if err != nil {
		return fmt.Errorf("parsing --lang: %w", err)
	}
	runs, err := parseRows(flags.sel)
	if err != nil {
		return fmt.Errorf("parsing --select: %w", err)
	}
	color, err := useColor(flags.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	lib, err := newLibrary(config.GetGlobalConfig(), GenerateTracks(flags.rows, flags.seed), tag, *log)
	if err != nil {
		return err
	}

	s := lib.session
	v := s.View()
	if flags.sort != "" {
		if err = applySort(lib, flags.sort); err != nil {
			return err
		}
	}

	width, height := frameSize(flags.width, flags.height, cmd.OutOrStdout())
	s.Resize(width, height)
	v.SetRtl(flags.rtl)
	v.SetHasFocus(!flags.noFocus)

	sel := s.Selection()
	for _, r := range runs {
		sel.SelectRange(r[0], r[1])
	}
	if flags.focus >= 0 {
		sel.SetFocused(flags.focus)
		v.ScrollToRow(flags.focus)
	}

	alloc := v.Allocation()
	grid := surface.NewGrid(alloc.Width, alloc.Height, lib.style.EntryForeground, lib.style.EntryBackground)
	s.Paint(grid)

	out := cmd.OutOrStdout()
	if color {
		_, err = fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, grid.String(), s.StatusLine()))
	} else {
		_, err = fmt.Fprintf(out, "%s\n%s\n", grid.Plain(), s.StatusText())
	}
	log.Debug().Int("width", width).Int("height", height).Bool("color", color).Msg("frame rendered")
	return err
}

// applySort sorts the library by "id" or "id:asc|desc" and marks the column sorted.
func applySort(lib *library, spec string) error {
	id, dirName, _ := strings.Cut(spec, ":")
	dir := theme.SortAscending
	switch dirName {
	case "", "asc":
	case "desc":
		dir = theme.SortDescending
	default:
		return fmt.Errorf("--sort direction %q (want asc or desc)", dirName)
	}

	v := lib.session.View()
	i := v.Columns().IndexOf(id)
	if i < 0 {
		return fmt.Errorf("--sort: no column %q", id)
	}
	c := v.Columns().At(i)
	sortTracks(lib.tracks, c.ID, dir)
	v.SetSortColumn(c, dir)
	return nil
}

// parseRows parses "3-5,9" into inclusive row runs.
func parseRows(spec string) ([][2]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	var runs [][2]int
	for part := range strings.SplitSeq(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", part, err)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf("row %q: %w", part, err)
			}
		}
		if from < 0 || to < from {
			return nil, fmt.Errorf("row range %q is empty or negative", part)
		}
		runs = append(runs, [2]int{from, to})
	}
	return runs, nil
}

// useColor resolves --color against whether out is a terminal.
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		f, ok := out.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("--color %q (want %s, %s or %s)", mode, colorAuto, colorAlways, colorNever)
	}
}

// frameSize fills unset dimensions from the terminal size of out, or the defaults.
func frameSize(width, height int, out io.Writer) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th := defaultRenderWidth, defaultRenderHeight
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			tw, th = w, h
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
