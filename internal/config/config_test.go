package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// noEnvFile points Load at an empty dotenv file so that a .env in the working
// directory cannot leak into tests.
func noEnvFile(t *testing.T) string {
	return writeFile(t, "empty.env", "")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "%g", cfg.Format)
	assert.Equal(t, []string{"quit", "exit"}, cfg.Quit)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Echo)

	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{EnvFile: noEnvFile(t)})
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "arith.toml", `
prompt = "calc> "
format = "%.3f"
quit = ["q"]
color = false
echo = true
log_level = "debug"
`)
		cfg, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		require.NoError(t, err)
		assert.Equal(t, Config{
			Prompt:   "calc> ",
			Format:   "%.3f",
			Quit:     []string{"q"},
			Color:    false,
			Echo:     true,
			LogLevel: "debug",
		}, cfg)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "arith.yaml", "prompt: \">> \"\nquit: [bye, q]\necho: true\n")
		cfg, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		require.NoError(t, err)
		assert.Equal(t, ">> ", cfg.Prompt)
		assert.Equal(t, []string{"bye", "q"}, cfg.Quit)
		assert.True(t, cfg.Echo)
		assert.Equal(t, "%g", cfg.Format, "unset keys keep defaults")
	})

	t.Run("empty yaml", func(t *testing.T) {
		path := writeFile(t, "arith.yml", "")
		cfg, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeFile(t, "arith.json", "{}")
		_, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml"), EnvFile: noEnvFile(t)})
		assert.Error(t, err)
	})

	t.Run("bad toml", func(t *testing.T) {
		path := writeFile(t, "arith.toml", "prompt = ")
		_, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeFile(t, "arith.toml", `format = "plain"`)
		_, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no verb")
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "arith.toml", `prompt = "file> "`)
		t.Setenv("ARITH_PROMPT", "env> ")
		t.Setenv("ARITH_QUIT", "stop, halt")
		t.Setenv("ARITH_COLOR", "false")
		t.Setenv("ARITH_ECHO", "1")
		t.Setenv("ARITH_LOG_LEVEL", "error")
		cfg, err := Load(LoadOptions{Path: path, EnvFile: noEnvFile(t)})
		require.NoError(t, err)
		assert.Equal(t, "env> ", cfg.Prompt)
		assert.Equal(t, []string{"stop", "halt"}, cfg.Quit)
		assert.False(t, cfg.Color)
		assert.True(t, cfg.Echo)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("dotenv", func(t *testing.T) {
		env := writeFile(t, "test.env", "ARITH_FORMAT=%.2f\n")
		t.Setenv("ARITH_FORMAT", "")
		os.Unsetenv("ARITH_FORMAT")
		cfg, err := Load(LoadOptions{EnvFile: env})
		require.NoError(t, err)
		assert.Equal(t, "%.2f", cfg.Format)
	})

	t.Run("explicit dotenv must exist", func(t *testing.T) {
		_, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("ARITH_COLOR", "sometimes")
		_, err := Load(LoadOptions{EnvFile: noEnvFile(t)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ARITH_COLOR")
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("ARITH_LOG_LEVEL", "loud")
		_, err := Load(LoadOptions{EnvFile: noEnvFile(t)})
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Quit = []string{"quit", " "}
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Quit = nil
	assert.NoError(t, cfg.Validate())
}
