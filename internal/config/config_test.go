package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "htmlpress.yaml"), false)
	require.NoError(t, err)

	require.Equal(t, "javascript", cfg.Toolchain.Dir)
	require.Equal(t, "npx", cfg.Toolchain.Npx)
	require.True(t, cfg.MinifyEnabled())
	require.False(t, cfg.Build.Preflight)
	require.Equal(t, 500*time.Millisecond, cfg.DebounceDuration())
	require.Zero(t, cfg.IntervalDuration())
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlpress.yaml")
	content := `
toolchain:
  dir: /opt/htmlpress/js
build:
  minify: false
  preflight: true
watch:
  debounce: 2s
  interval: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "/opt/htmlpress/js", cfg.Toolchain.Dir)
	require.False(t, cfg.MinifyEnabled())
	require.True(t, cfg.Build.Preflight)
	require.Equal(t, 2*time.Second, cfg.DebounceDuration())
	require.Equal(t, 5*time.Minute, cfg.IntervalDuration())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toolchain:\n  dir: from-file\n"), 0o644))

	t.Setenv("HTMLPRESS_TOOLCHAIN_DIR", "from-env")
	t.Setenv("HTMLPRESS_MINIFY", "false")
	t.Setenv("HTMLPRESS_WATCH_DEBOUNCE", "1s")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Toolchain.Dir)
	require.False(t, cfg.MinifyEnabled())
	require.Equal(t, time.Second, cfg.DebounceDuration())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toolchain: [not a map"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestValidate_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch:\n  debounce: soon\n"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}
