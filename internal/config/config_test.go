package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "classic", cfg.Theme)
	require.True(t, cfg.MouseEnabled())
	require.Empty(t, cfg.Path)
}

func TestLoadExplicitMissingFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, FileName)
	body := strings.TrimSpace(`
seed: data/clients.yaml
theme: neon
log_file: /var/tmp/swimlane.log
mouse: false
`)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "neon", cfg.Theme)
	require.Equal(t, filepath.Join(dir, "data", "clients.yaml"), cfg.Seed)
	require.Equal(t, "/var/tmp/swimlane.log", cfg.LogFile)
	require.False(t, cfg.MouseEnabled())
	require.Equal(t, p, cfg.Path)
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, FileName)

	require.NoError(t, os.WriteFile(p, []byte("theme: solarized\n"), 0o644))
	_, err := Load(p)
	require.ErrorContains(t, err, "unknown theme")

	require.NoError(t, os.WriteFile(p, []byte("colour: red\n"), 0o644))
	_, err = Load(p)
	require.ErrorContains(t, err, "colour")
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "classic", cfg.Theme)
	require.True(t, cfg.MouseEnabled())
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	created, err := WriteDefault(p)
	require.NoError(t, err)
	require.True(t, created)

	created, err = WriteDefault(p)
	require.NoError(t, err)
	require.False(t, created)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, Default().Theme, cfg.Theme)
	require.True(t, cfg.MouseEnabled())
}
