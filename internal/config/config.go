// Package config loads settings for the arith command. Values are layered:
// defaults, then a TOML or YAML file, then a .env file, then ARITH_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "ARITH_"

// DefaultEnvFile is the .env file loaded when no other is named. It is not an
// error for it to be missing.
const DefaultEnvFile = ".env"

// Config holds the shell settings.
type Config struct {
	// Prompt is printed before reading each line.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// Quit lists words which end the session when a line starts with them.
	Quit []string `toml:"quit" yaml:"quit"`
	// Color enables styled output on terminals.
	Color bool `toml:"color" yaml:"color"`
	// Echo prints the parsed tree before each result.
	Echo bool `toml:"echo" yaml:"echo"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Prompt:   "> ",
		Format:   "%g",
		Quit:     []string{"quit", "exit"},
		Color:    true,
		LogLevel: "warn",
	}
}

// LoadOptions name the files Load reads.
type LoadOptions struct {
	// Path is a .toml, .yaml or .yml settings file. Empty means none.
	Path string
	// EnvFile is a dotenv file. Empty means DefaultEnvFile, which may be
	// missing; a file named explicitly must exist.
	EnvFile string
}

// Load builds settings from defaults, the settings file, the dotenv file and
// the environment, in that order, and validates the result.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()
	if opts.Path != "" {
		if err := cfg.decodeFile(opts.Path); err != nil {
			return Config{}, err
		}
	}
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unknown format %q, want .toml, .yaml or .yml", path, ext)
	}
	return nil
}

// loadDotEnv loads a dotenv file into the process environment. Variables that
// are already set keep their values.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		slog.Debug("loaded env file", "path", path)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		slog.Debug("no env file", "path", path)
	default:
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides settings with ARITH_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvPrefix + "QUIT"); ok {
		c.Quit = strings.Fields(strings.ReplaceAll(v, ",", " "))
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCOLOR: %w", EnvPrefix, err)
		}
		c.Color = b
	}
	if v, ok := lookup(EnvPrefix + "ECHO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sECHO: %w", EnvPrefix, err)
		}
		c.Echo = b
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	for _, q := range c.Quit {
		if strings.TrimSpace(q) == "" {
			return errors.New("quit words must not be blank")
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
