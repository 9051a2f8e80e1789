package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridview/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Version: "1.0.0",
		View: config.ViewConfig{
			DragThreshold: 3,
			HeaderVisible: true,
			Reorderable:   true,
			RowPadding:    1,
		},
		Theme: config.ThemeConfig{
			Name:    "flat",
			Variant: "dark",
			Radius:  1,
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: console
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "console", target.Logging.Format)

	// Other sections should be unchanged.
	assert.Equal(t, 3, target.View.DragThreshold)
	assert.True(t, target.View.HeaderVisible)
	assert.Equal(t, "flat", target.Theme.Name)
}

func TestShallowMergeYAML_SectionIsReplacedNotMerged(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
view:
  rules_hint: true
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.True(t, target.View.RulesHint)
	// Fields absent from the overlay section take their zero value.
	assert.Zero(t, target.View.DragThreshold)
	assert.False(t, target.View.HeaderVisible)
	assert.False(t, target.View.Reorderable)
}

func TestShallowMergeYAML_MultipleKeys(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
version: 1.2.0
theme:
  name: plain
  radius: 0
  palette:
    background: "#000000"
logging:
  level: warn
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "1.2.0", target.Version)
	assert.Equal(t, "plain", target.Theme.Name)
	assert.Equal(t, "#000000", target.Theme.Palette.Background)
	assert.Empty(t, target.Theme.Variant)
	assert.Equal(t, "warn", target.Logging.Level)
	assert.Empty(t, target.Logging.Format)
	assert.Equal(t, 3, target.View.DragThreshold)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  anything: true
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  *config.Config
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "nil target",
			target:  nil,
			path:    func(t *testing.T) string { return writeOverlay(t, "view: {}\n") },
			wantErr: "nil target",
		},
		{
			name:    "missing file",
			target:  newDefaultTarget(),
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			wantErr: "reading overlay file",
		},
		{
			name:    "malformed yaml",
			target:  newDefaultTarget(),
			path:    func(t *testing.T) string { return writeOverlay(t, "view: [unclosed\n") },
			wantErr: "parsing overlay YAML",
		},
		{
			name:    "wrong section type",
			target:  newDefaultTarget(),
			path:    func(t *testing.T) string { return writeOverlay(t, "view:\n  drag_threshold: lots\n") },
			wantErr: `applying overlay section "view"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ShallowMergeYAML(tt.target, tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
