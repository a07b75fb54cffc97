package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"TOML", "config.toml", "[server]\nmax_limit = 20\n\n[dict]\nengine = \"trie\"\n"},
		{"YAML", "config.yaml", "server:\n  max_limit: 20\ndict:\n  engine: trie\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.file, tt.body))
			require.NoError(t, err)

			assert.Equal(t, 20, cfg.Server.MaxLimit)
			assert.Equal(t, EngineTrie, cfg.Dict.Engine)
			// untouched values keep defaults
			assert.Equal(t, 10, cfg.Server.DefaultLimit)
			assert.Equal(t, "data/", cfg.Dict.Path)
			assert.True(t, cfg.CLI.ShowWeights)
		})
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	body := "[server]\nmax_limit = \"lots\"\nmax_prefix = 12\n\n[cli]\nshow_weights = false\n"
	cfg, err := LoadConfig(writeFile(t, "config.toml", body))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.Equal(t, 12, cfg.Server.MaxPrefix)
	assert.False(t, cfg.CLI.ShowWeights)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "config.toml", "[dict]\nengine = \"btree\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.toml", "[server]\nmax_limit = 5\ndefault_limit = 6\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.toml", "this is [ not toml"))
	assert.Error(t, err)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yml"} {
		path := filepath.Join(t.TempDir(), "nested", name)

		cfg, err := InitConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		require.FileExists(t, path)

		again, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), again)
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeFile(t, "custom.toml", "[cli]\ndefault_limit = 3\n")
	defaultPath := filepath.Join(t.TempDir(), "config.toml")

	cfg, used := LoadConfigWithPriority(custom, defaultPath)
	assert.Equal(t, custom, used)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)

	cfg, used = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"), defaultPath)
	assert.Equal(t, defaultPath, used)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, used = LoadConfigWithPriority("", "")
	assert.Equal(t, "", used)
	assert.Equal(t, DefaultConfig(), cfg)
}
