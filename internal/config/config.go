package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/choice/internal/choice"
)

// ThemeConfig holds UI theme settings
type ThemeConfig struct {
	Name     string `toml:"name"` // preset family: none, default, dracula, nord, gruvbox, catppuccin
	Mode     string `toml:"mode"` // auto, light or dark
	Primary  string `toml:"primary"`
	Accent   string `toml:"accent"`
	Success  string `toml:"success"`
	Error    string `toml:"error"`
	Muted    string `toml:"muted"`
	Normal   string `toml:"normal"`
	Info     string `toml:"info"`
	Warning  string `toml:"warning"`
	Nerdfont bool   `toml:"nerdfont"`
}

// Config holds the choice configuration
type Config struct {
	Mode       string      `toml:"mode"`        // mode used when the option file sets none
	Indent     string      `toml:"indent"`      // indent unit per nesting level
	MaxVisible int         `toml:"max_visible"` // rows shown before the list scrolls
	Copy       bool        `toml:"copy"`        // copy results to the clipboard
	Watch      bool        `toml:"watch"`       // dismiss when the option file changes
	Theme      ThemeConfig `toml:"theme"`
}

// DefaultMaxVisible is the default number of rows shown at once
const DefaultMaxVisible = 10

// Default returns the default configuration
func Default() Config {
	return Config{
		Mode:       choice.Single.String(),
		Indent:     choice.DefaultIndent,
		MaxVisible: DefaultMaxVisible,
		Watch:      true,
	}
}

// DefaultMode returns the parsed mode, falling back to Single.
func (c *Config) DefaultMode() choice.Mode {
	m, err := choice.ParseMode(c.Mode)
	if err != nil {
		return choice.Single
	}
	return m
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "choice", "config.toml"), nil
}

// Load reads config from ~/.config/choice/config.toml and applies
// CHOICE_* environment overrides.
// Returns Default() if the file doesn't exist (no error)
// Returns error only if the file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		path = ""
	}
	return LoadFile(path, os.Getenv)
}

// LoadFile reads config from path; an empty path skips the file.
// getenv supplies environment overrides and may be nil.
func LoadFile(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Default(), fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if getenv != nil {
		if err := cfg.applyEnv(getenv); err != nil {
			return Default(), err
		}
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overrides settings from CHOICE_* environment variables.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("CHOICE_MODE"); v != "" {
		c.Mode = v
	}
	if v := getenv("CHOICE_THEME"); v != "" {
		c.Theme.Name = v
	}
	if v := getenv("CHOICE_INDENT"); v != "" {
		c.Indent = v
	}
	if v := getenv("CHOICE_MAX_VISIBLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CHOICE_MAX_VISIBLE %q: %w", v, err)
		}
		c.MaxVisible = n
	}
	return nil
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

const defaultConfig = `# choice configuration

# Mode used when the option file does not set one: single, menu or multiple
# mode = "single"

# Indent unit repeated once per nesting level
# indent = "\t\t\t"

# Rows shown before the list scrolls
# max_visible = 10

# Copy results to the clipboard after every prompt
# copy = false

# Dismiss the prompt when the option file changes on disk
# watch = true

# Theme
# [theme]
# name = "default"     # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"        # auto, light, dark
# accent = "#ff79c6"   # override single colors
# nerdfont = false
#
# Environment overrides: CHOICE_MODE, CHOICE_THEME, CHOICE_INDENT,
# CHOICE_MAX_VISIBLE
`

// DefaultFile returns the commented default config file content.
func DefaultFile() string {
	return defaultConfig
}

// Init creates a default config file at path.
// If force is true, overwrites an existing file
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
