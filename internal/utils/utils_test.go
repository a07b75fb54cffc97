package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{22.5, "22.5"},
		{14608512.25, "14,608,512.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWeight(tt.in))
	}
}

func TestParseWithRecovery(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[server]\nmax_limit = 9\nname = \"x\"\n"), 0o644))
	yamlPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("server:\n  max_limit: 9\n  name: x\n"), 0o644))

	for _, path := range []string{tomlPath, yamlPath} {
		data, err := ParseWithRecovery(path)
		require.NoError(t, err, path)

		section, ok := ExtractSection(data, "server")
		require.True(t, ok, path)
		n, ok := ExtractInt(section, "max_limit")
		assert.True(t, ok, path)
		assert.Equal(t, 9, n, path)
		s, ok := ExtractString(section, "name")
		assert.True(t, ok, path)
		assert.Equal(t, "x", s, path)
		_, ok = ExtractBool(section, "name")
		assert.False(t, ok, path)
	}
}

func TestConfigDirFor(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")

	assert.Equal(t, filepath.Join("/home/u", ".config", AppName), configDirFor("linux", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", "."+AppName), configDirFor("plan9", "/home/u"))

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", AppName), configDirFor("linux", "/home/u"))
}

func TestGetDataPath(t *testing.T) {
	dir := t.TempDir()
	pr := &PathResolver{executableDir: dir, homeDir: dir, configDir: filepath.Join(dir, "cfg")}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("1\ta\n"), 0o644))

	assert.Equal(t, filepath.Join(dir, "words.txt"), pr.GetDataPath("words.txt"))
	assert.Equal(t, "missing.txt", pr.GetDataPath("missing.txt"))
}
