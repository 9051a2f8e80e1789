package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridview/internal/render"
)

// Style is the host-resolved style snapshot a theme derives its colors from. It plays
// the role of the toolkit style context: the host hands a fresh Style to Refresh on
// every realized or style-changed notification.
type Style struct {
	Background         render.Color // normal widget background
	Foreground         render.Color // normal widget text
	ActiveBackground   render.Color // pressed/active state background
	SelectedBackground render.Color // selected row background
	SelectedForeground render.Color // text on selected rows
	EntryBackground    render.Color // base (view) fill
	EntryForeground    render.Color // base (view) text
	HeaderBackground   render.Color
	HeaderForeground   render.Color
	Border             render.Color
}

// DefaultStyle is a dark palette suited to 24-bit terminals.
func DefaultStyle() Style {
	return Style{
		Background:         render.RGB(20, 20, 30),
		Foreground:         render.RGB(200, 200, 200),
		ActiveBackground:   render.RGB(50, 50, 70),
		SelectedBackground: render.RGB(40, 90, 150),
		SelectedForeground: render.RGB(255, 255, 255),
		EntryBackground:    render.RGB(24, 24, 36),
		EntryForeground:    render.RGB(200, 200, 200),
		HeaderBackground:   render.RGB(40, 60, 90),
		HeaderForeground:   render.RGB(255, 255, 255),
		Border:             render.RGB(60, 80, 100),
	}
}

// LightStyle is a light palette.
func LightStyle() Style {
	return Style{
		Background:         render.RGB(240, 240, 240),
		Foreground:         render.RGB(30, 30, 30),
		ActiveBackground:   render.RGB(200, 200, 210),
		SelectedBackground: render.RGB(60, 120, 210),
		SelectedForeground: render.RGB(255, 255, 255),
		EntryBackground:    render.RGB(255, 255, 255),
		EntryForeground:    render.RGB(20, 20, 20),
		HeaderBackground:   render.RGB(220, 220, 225),
		HeaderForeground:   render.RGB(20, 20, 20),
		Border:             render.RGB(160, 160, 170),
	}
}

// StyleSpec is the on-disk form of a Style: hex strings, any of which may be empty to
// keep the base palette's value.
type StyleSpec struct {
	Background         string `yaml:"background"          toml:"background"`
	Foreground         string `yaml:"foreground"          toml:"foreground"`
	ActiveBackground   string `yaml:"active_background"   toml:"active_background"`
	SelectedBackground string `yaml:"selected_background" toml:"selected_background"`
	SelectedForeground string `yaml:"selected_foreground" toml:"selected_foreground"`
	EntryBackground    string `yaml:"entry_background"    toml:"entry_background"`
	EntryForeground    string `yaml:"entry_foreground"    toml:"entry_foreground"`
	HeaderBackground   string `yaml:"header_background"   toml:"header_background"`
	HeaderForeground   string `yaml:"header_foreground"   toml:"header_foreground"`
	Border             string `yaml:"border"              toml:"border"`
}

// Apply overlays the non-empty entries of spec onto base.
func (spec StyleSpec) Apply(base Style) (Style, error) {
	fields := []struct {
		key string
		hex string
		dst *render.Color
	}{
		{"background", spec.Background, &base.Background},
		{"foreground", spec.Foreground, &base.Foreground},
		{"active_background", spec.ActiveBackground, &base.ActiveBackground},
		{"selected_background", spec.SelectedBackground, &base.SelectedBackground},
		{"selected_foreground", spec.SelectedForeground, &base.SelectedForeground},
		{"entry_background", spec.EntryBackground, &base.EntryBackground},
		{"entry_foreground", spec.EntryForeground, &base.EntryForeground},
		{"header_background", spec.HeaderBackground, &base.HeaderBackground},
		{"header_foreground", spec.HeaderForeground, &base.HeaderForeground},
		{"border", spec.Border, &base.Border},
	}

	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := render.ParseHex(f.hex)
		if err != nil {
			return Style{}, fmt.Errorf("style key %s: %w", f.key, err)
		}
		*f.dst = c
	}
	return base, nil
}

// LoadStyleFile reads a palette file (.yaml/.yml or .toml) and applies it over base.
func LoadStyleFile(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file %s: %w", path, err)
	}

	var spec StyleSpec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &spec)
	case ".toml":
		err = toml.Unmarshal(data, &spec)
	default:
		return Style{}, fmt.Errorf("%w: %s", ErrUnsupportedStyleFile, path)
	}
	if err != nil {
		return Style{}, fmt.Errorf("parsing style file %s: %w", path, err)
	}

	return spec.Apply(base)
}
