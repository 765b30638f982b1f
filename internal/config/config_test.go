package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsFillsZeroValues(t *testing.T) {
	cfg := &ProjectConfig{}
	cfg.ApplyDefaults()

	assert.Equal(t, []string{DefaultSearchPath}, cfg.SearchPaths)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultVerbosity, cfg.Verbosity)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &ProjectConfig{SearchPaths: []string{"src"}, Color: "never", Verbosity: "warning"}
	cfg.ApplyDefaults()

	assert.Equal(t, []string{"src"}, cfg.SearchPaths)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "warning", cfg.Verbosity)
}

func TestLoadConfigReadsFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: never\nverbosity: error\n"), 0o644))

	cfg, err := LoadConfig(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "error", cfg.Verbosity)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: never\n"), 0o644))

	t.Setenv("SILT_COLOR", "always")
	cfg, err := LoadConfig(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
}

func TestLoadConfigFlagOverridesEnvWhenChanged(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: never\n"), 0o644))
	t.Setenv("SILT_COLOR", "always")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("color", "", "")
	require.NoError(t, flags.Set("color", "auto"))

	cfg, err := LoadConfig(dir, flags)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadConfigUnchangedFlagDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: never\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("color", "", "")

	cfg, err := LoadConfig(dir, flags)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
}

func TestFindProjectRootWalksUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("color: auto\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindProjectRoot(nested))
}

func TestFindProjectRootReturnsEmptyWhenNotFound(t *testing.T) {
	assert.Equal(t, "", FindProjectRoot(t.TempDir()))
}
