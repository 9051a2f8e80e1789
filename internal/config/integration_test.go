package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvConfig, "")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "flat", cfg.Theme.Name)
	require.NoError(t, GlobalConfigError())

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestGlobalConfig_FallsBackOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 3.0.0\n"), 0600))
	t.Setenv(EnvConfig, path)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, CurrentVersion, cfg.Version)
	require.ErrorIs(t, GlobalConfigError(), ErrUnsupportedVersion)
}

func TestConfigGetters(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvConfig, "")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/gridview-test.log"

	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/gridview-test.log", GetLogFile())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	t.Setenv(EnvConfig, "")
	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	t.Setenv(EnvConfig, "/etc/gridview.yaml")
	path, err = ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/gridview.yaml", path)

	logFile, err := DefaultLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "gridview.log"), logFile)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "gridview")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvConfig, "")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logDir := filepath.Join(t.TempDir(), "logs")
	GetGlobalConfig().Logging.File = filepath.Join(logDir, "gridview.log")

	require.NoError(t, EnsureLogDir())
	_, err := os.Stat(logDir)
	require.NoError(t, err)
}
