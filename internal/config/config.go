// Package config loads gridview's YAML configuration: view behavior switches, the
// theme skin and palette, and logging. A missing config file is not an error; the
// defaults from New apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/theme"
	"github.com/rshade/gridview/internal/view"
)

// CurrentVersion is written by config show for files that carry no version.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of config schema versions this build reads.
const supportedVersions = ">=1.0.0, <2.0.0"

// Variant names for ThemeConfig.Variant.
const (
	VariantDark  = "dark"
	VariantLight = "light"
)

// Config is the top-level configuration document.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	View    ViewConfig    `yaml:"view"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// ViewConfig mirrors view.Options.
type ViewConfig struct {
	DragThreshold   int  `yaml:"drag_threshold"`
	RulesHint       bool `yaml:"rules_hint"`
	HeaderVisible   bool `yaml:"header_visible"`
	RenderNullModel bool `yaml:"render_null_model"`
	Reorderable     bool `yaml:"reorderable"`
	RowPadding      int  `yaml:"row_padding"`
}

// ThemeConfig selects the skin and its palette. Palette entries override the variant's
// base colors; PaletteFile is applied after the inline palette.
type ThemeConfig struct {
	Name        string          `yaml:"name"`
	Variant     string          `yaml:"variant"`
	Radius      float64         `yaml:"radius"`
	Palette     theme.StyleSpec `yaml:"palette,omitempty"`
	PaletteFile string          `yaml:"palette_file,omitempty"`
}

// LoggingConfig configures the zerolog logger. An empty File logs to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty"`
}

// New returns the default configuration.
func New() *Config {
	defaults := view.DefaultOptions()
	return &Config{
		Version: CurrentVersion,
		View: ViewConfig{
			DragThreshold:   defaults.DragThreshold,
			RulesHint:       defaults.RulesHint,
			HeaderVisible:   defaults.HeaderVisible,
			RenderNullModel: defaults.RenderNullModel,
			Reorderable:     defaults.Reorderable,
			RowPadding:      defaults.RowPadding,
		},
		Theme: ThemeConfig{
			Name:    theme.NameFlat,
			Variant: VariantDark,
			Radius:  1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates the
// result. A path that does not exist yields the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Path is the file the configuration was loaded from, empty for New.
func (c *Config) Path() string { return c.path }

// ApplyEnv applies the GRIDVIEW_LOG_LEVEL and GRIDVIEW_THEME overrides.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvTheme); ok && v != "" {
		c.Theme.Name = v
	}
}

// Validate checks the schema version and the value ranges of every section.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}

	if c.View.DragThreshold < 0 {
		return fmt.Errorf("%w: view.drag_threshold must be >= 0, got %d", ErrInvalidConfig, c.View.DragThreshold)
	}
	if c.View.RowPadding < 0 {
		return fmt.Errorf("%w: view.row_padding must be >= 0, got %d", ErrInvalidConfig, c.View.RowPadding)
	}

	if c.Theme.Name != "" && !slices.Contains(theme.Names(), c.Theme.Name) {
		return fmt.Errorf("%w: theme.name %q (have %v)", ErrInvalidConfig, c.Theme.Name, theme.Names())
	}
	switch c.Theme.Variant {
	case "", VariantDark, VariantLight:
	default:
		return fmt.Errorf("%w: theme.variant %q", ErrInvalidConfig, c.Theme.Variant)
	}
	if c.Theme.Radius < 0 {
		return fmt.Errorf("%w: theme.radius must be >= 0", ErrInvalidConfig)
	}

	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, v, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, ver, supportedVersions)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	out := *c
	if out.Version == "" {
		out.Version = CurrentVersion
	}
	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// ToViewOptions converts the view section into view.Options.
func (vc ViewConfig) ToViewOptions() view.Options {
	return view.Options{
		DragThreshold:   vc.DragThreshold,
		RulesHint:       vc.RulesHint,
		HeaderVisible:   vc.HeaderVisible,
		RenderNullModel: vc.RenderNullModel,
		Reorderable:     vc.Reorderable,
		RowPadding:      vc.RowPadding,
	}
}

// Style resolves the palette: the variant's base style, then the inline palette, then
// the palette file. A relative palette file is resolved against base.
func (tc ThemeConfig) Style(baseDir string) (theme.Style, error) {
	style := theme.DefaultStyle()
	if tc.Variant == VariantLight {
		style = theme.LightStyle()
	}

	style, err := tc.Palette.Apply(style)
	if err != nil {
		return theme.Style{}, fmt.Errorf("theme.palette: %w", err)
	}

	if tc.PaletteFile == "" {
		return style, nil
	}
	path := tc.PaletteFile
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return theme.LoadStyleFile(path, style)
}

// Build returns the configured skin.
func (tc ThemeConfig) Build() (theme.Theme, error) {
	return theme.New(tc.Name, tc.Radius)
}

// ThemeStyle resolves the theme palette relative to the directory of the config file.
func (c *Config) ThemeStyle() (theme.Style, error) {
	baseDir := ""
	if c.path != "" {
		baseDir = filepath.Dir(c.path)
	}
	return c.Theme.Style(baseDir)
}
