package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitCmd_CreatesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	out, err := execute(t, "", "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Created user configuration")

	path := filepath.Join(configHome, "gitignore-gen", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache_validity_days: 7")
}

func TestConfigInitCmd_RefusesToOverwrite(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "gitignore-gen")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: custom\n"), 0o644))

	out, err := execute(t, "", "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "output: custom\n", string(data), "Existing config must be preserved")
}

func TestConfigInitCmd_ForceOverwrites(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "gitignore-gen")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: custom\n"), 0o644))

	_, err := execute(t, "", "config", "init", "--force")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_base:")
}

func TestConfigShowCmd_MergesEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITIGNORE_GEN_OUTPUT", ".gitignore.custom")

	out, err := execute(t, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "output: .gitignore.custom")
}

func TestConfigShowCmd_JSONOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITIGNORE_GEN_CACHE_VALIDITY_DAYS", "14")

	out, err := execute(t, "", "config", "show", "--json")

	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, float64(14), cfg["cache_validity_days"])
}

func TestConfigPathCmd(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	out, err := execute(t, "", "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(configHome, "gitignore-gen", "config.yaml"))
}
