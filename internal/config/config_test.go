package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davidhbaek/bard/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExplicitPath(t *testing.T) {
	path := writeConfig(t, "host: http://192.168.1.100:11434\nmodel: mistral\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://192.168.1.100:11434", cfg.Host)
	require.Equal(t, "mistral", cfg.Model)
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, "model: llama2:13b\n")
	t.Setenv("BARD_CONFIG_PATH", path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "llama2:13b", cfg.Model)
	require.Empty(t, cfg.Host)
}

func TestLoadMissingDefaultFileIsNotAnError(t *testing.T) {
	t.Setenv("BARD_CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.Host)
	require.Empty(t, cfg.Model)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "host: [unterminated\n")

	_, err := config.Load(path)
	require.Error(t, err)
}
