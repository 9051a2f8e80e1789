package cli

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/theme"
)

// Track is one row of the demo library.
type Track struct {
	Artist   string
	Album    string
	Title    string
	Duration time.Duration
	Plays    int
	Starred  bool
}

//nolint:gochecknoglobals // Word lists for synthetic track names.
var (
	artistWords = []string{"Violet", "Iron", "Hollow", "Neon", "Glass", "Silver", "Quiet", "Paper", "Electric", "Northern"}
	artistNouns = []string{"Harbor", "Owls", "Machines", "Choir", "Tides", "Static", "Lanterns", "Orchard", "Comets", "Engines"}
	titleWords  = []string{"Midnight", "Falling", "Golden", "Empty", "Slow", "Distant", "Burning", "Broken", "Open", "Paper"}
	titleNouns  = []string{"Rooms", "Signal", "Rivers", "Hearts", "Roads", "Letters", "Skies", "Windows", "Summer", "Lights"}
)

// GenerateTracks returns n deterministic synthetic tracks for seed. Tracks are grouped
// by artist and album the way a library listing is.
func GenerateTracks(n int, seed uint64) []Track {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Track, 0, max(n, 0))

	for len(out) < n {
		artist := pick(rng, artistWords) + " " + pick(rng, artistNouns)
		albums := 1 + rng.IntN(3)
		for a := 0; a < albums && len(out) < n; a++ {
			album := pick(rng, titleWords) + " " + pick(rng, titleNouns)
			songs := 6 + rng.IntN(8)
			for s := 0; s < songs && len(out) < n; s++ {
				out = append(out, Track{
					Artist:   artist,
					Album:    album,
					Title:    pick(rng, titleWords) + " " + pick(rng, titleNouns),
					Duration: time.Duration(90+rng.IntN(360)) * time.Second,
					Plays:    rng.IntN(250_000),
					Starred:  rng.IntN(8) == 0,
				})
			}
		}
	}
	return out
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.IntN(len(words))]
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// trackColumns builds the demo column set. Play counts are formatted for tag.
func trackColumns(tag language.Tag) *column.Set {
	printer := message.NewPrinter(tag)
	text := func(get func(Track) string, align cell.Align) *cell.Text {
		return cell.NewText(func(item any) string { return get(item.(Track)) }, align)
	}

	return column.NewSet(
		column.New("title", "Title", text(func(t Track) string { return t.Title }, cell.AlignStart),
			column.WithBounds(8, 0), column.Sortable()),
		column.New("artist", "Artist", text(func(t Track) string { return t.Artist }, cell.AlignStart),
			column.WithBounds(8, 28), column.Sortable()),
		column.New("album", "Album", text(func(t Track) string { return t.Album }, cell.AlignStart),
			column.WithBounds(8, 28), column.Sortable()),
		column.New("time", "Time", text(func(t Track) string { return formatDuration(t.Duration) }, cell.AlignEnd),
			column.Fixed(6), column.Sortable()),
		column.New("plays", "Plays", text(func(t Track) string { return printer.Sprintf("%d", t.Plays) }, cell.AlignEnd),
			column.WithBounds(7, 9), column.WithWidth(9), column.Sortable()),
	)
}

// matchTrack reports whether query occurs in the title, artist or album of t, ignoring
// case.
func matchTrack(t Track, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{t.Title, t.Artist, t.Album} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// sortTracks orders tracks by the column with the given ID in direction dir. Ties keep
// their library order.
func sortTracks(tracks []Track, id string, dir theme.SortType) {
	var compare func(a, b Track) int
	switch id {
	case "title":
		compare = func(a, b Track) int { return strings.Compare(a.Title, b.Title) }
	case "artist":
		compare = func(a, b Track) int { return strings.Compare(a.Artist, b.Artist) }
	case "album":
		compare = func(a, b Track) int { return strings.Compare(a.Album, b.Album) }
	case "time":
		compare = func(a, b Track) int { return cmp.Compare(a.Duration, b.Duration) }
	case "plays":
		compare = func(a, b Track) int { return cmp.Compare(a.Plays, b.Plays) }
	default:
		return
	}

	if dir == theme.SortDescending {
		asc := compare
		compare = func(a, b Track) int { return asc(b, a) }
	}
	slices.SortStableFunc(tracks, compare)
}
