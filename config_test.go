package jwtcompression

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		unset bool
		want  bool
	}{
		{name: "lowercase true", value: "true", want: true},
		{name: "uppercase true", value: "TRUE", want: true},
		{name: "mixed case true", value: "True", want: true},
		{name: "false", value: "false", want: false},
		{name: "garbage", value: "enabled", want: false},
		{name: "empty", value: "", want: false},
		{name: "unset", unset: true, want: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if testCase.unset {
				t.Setenv(EnvCompressionEnabled, "")
				os.Unsetenv(EnvCompressionEnabled)
			} else {
				t.Setenv(EnvCompressionEnabled, testCase.value)
			}

			cfg := ConfigFromEnv()
			assert.Equal(t, testCase.want, cfg.CompressionEnabled)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("compression_enabled = true\n"), 0o600))

	t.Setenv(EnvCompressionEnabled, "")
	os.Unsetenv(EnvCompressionEnabled)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.CompressionEnabled)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("compression_enabled = true\n"), 0o600))

	t.Setenv(EnvCompressionEnabled, "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.CompressionEnabled)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("bad toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("compression_enabled = maybe\n"), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
