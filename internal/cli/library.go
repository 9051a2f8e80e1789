package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/selection"
	"github.com/rshade/gridview/internal/theme"
	"github.com/rshade/gridview/internal/tui"
	"github.com/rshade/gridview/internal/view"
)

// library is a track list hosted in a terminal session.
type library struct {
	tracks  []Track
	session *tui.Session[Track]
	style   theme.Style
}

// newLibrary builds a view over tracks configured from cfg. Sort clicks reorder
// tracks in place; starred tracks are painted bold.
func newLibrary(cfg *config.Config, tracks []Track, tag language.Tag, l zerolog.Logger) (*library, error) {
	th, err := cfg.Theme.Build()
	if err != nil {
		return nil, fmt.Errorf("building theme: %w", err)
	}
	style, err := cfg.ThemeStyle()
	if err != nil {
		return nil, fmt.Errorf("resolving theme palette: %w", err)
	}

	lib := &library{tracks: tracks, style: style}

	var v *view.ListView[Track]
	handlers := view.Handlers{
		SortChanged: func(c *column.Column) {
			sortTracks(lib.tracks, c.ID, c.Sort)
			v.InvalidateList()
		},
		ColumnReordered: func(from, to int) {
			l.Debug().Int("from", from).Int("to", to).Msg("column moved")
		},
		ColumnResized: func(index, width int) {
			l.Debug().Int("column", index).Int("width", width).Msg("column resized")
		},
	}

	v = view.New[Track](trackColumns(tag),
		view.WithOptions(cfg.View.ToViewOptions()),
		view.WithLogger(l),
		view.WithHandlers(handlers),
	)
	v.SetTheme(th)
	v.SetModel(view.SliceModel[Track](tracks))
	v.SetEmphasized(func(t Track) bool { return t.Starred })

	lib.session = tui.NewSession(v, selection.New(), style, l)
	return lib, nil
}
