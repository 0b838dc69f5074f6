package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/wasabi0522/zprs/internal/glyph"
	"github.com/wasabi0522/zprs/internal/pathfmt"
	"github.com/wasabi0522/zprs/internal/status"
	"github.com/wasabi0522/zprs/internal/ui"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: ZPRS_PATH__PREFIX_LENGTH=2.
const EnvPrefix = "ZPRS_"

// EnvConfig names the variable that overrides the config file location.
const EnvConfig = EnvPrefix + "CONFIG"

// Config represents the zprs configuration.
type Config struct {
	Dialect string  `koanf:"dialect"`
	Path    Path    `koanf:"path"`
	Precmd  Precmd  `koanf:"precmd"`
	Symbols Symbols `koanf:"symbols"`
	Colors  Colors  `koanf:"colors"`
	Prompt  Prompt  `koanf:"prompt"`
}

// Path controls working directory abbreviation.
type Path struct {
	PrefixLength int    `koanf:"prefix_length"`
	HomeMarker   string `koanf:"home_marker"`
}

// Precmd controls the line printed before each prompt.
type Precmd struct {
	Newline bool `koanf:"newline"`
}

// Symbols overrides the status token symbols.
type Symbols struct {
	Detached   string `koanf:"detached"`
	Ahead      string `koanf:"ahead"`
	Behind     string `koanf:"behind"`
	Clean      string `koanf:"clean"`
	Staged     string `koanf:"staged"`
	Conflicted string `koanf:"conflicted"`
	Unstaged   string `koanf:"unstaged"`
	Untracked  string `koanf:"untracked"`
	Dirty      string `koanf:"dirty"`
}

// Colors holds one color value per segment, in any form ui.ParseColor accepts.
type Colors struct {
	Path       string `koanf:"path"`
	Head       string `koanf:"head"`
	Ahead      string `koanf:"ahead"`
	Behind     string `koanf:"behind"`
	Clean      string `koanf:"clean"`
	Staged     string `koanf:"staged"`
	Conflicted string `koanf:"conflicted"`
	Unstaged   string `koanf:"unstaged"`
	Untracked  string `koanf:"untracked"`
	Operation  string `koanf:"operation"`
	Dirty      string `koanf:"dirty"`
	Venv       string `koanf:"venv"`
}

// Prompt controls the prompt glyph.
type Prompt struct {
	InsertSymbol  string `koanf:"insert_symbol"`
	CommandSymbol string `koanf:"command_symbol"`
	CommandKeymap string `koanf:"command_keymap"`
	SuccessColor  string `koanf:"success_color"`
	FailureColor  string `koanf:"failure_color"`
}

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Key string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultPath returns the config file location: $ZPRS_CONFIG, then
// $XDG_CONFIG_HOME/zprs/config.yaml, then ~/.config/zprs/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zprs", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "zprs", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	cfg, err := decode(k)
	if err != nil {
		panic(fmt.Sprintf("built-in config is invalid: %v", err))
	}
	return cfg
}

// Load reads configuration from the given YAML file path and environment variables.
// Missing file is not an error; defaults are used.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return decode(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return decode(k)
}

// envKey maps ZPRS_PRECMD__NEWLINE to precmd.newline.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() map[string]any {
	sym := status.DefaultSymbols()
	pal := ui.DefaultPalette()
	g := glyph.DefaultOptions()
	p := pathfmt.DefaultOptions()

	return map[string]any{
		"dialect":               string(ui.DialectZsh),
		"path.prefix_length":    p.PrefixLength,
		"path.home_marker":      p.HomeMarker,
		"precmd.newline":        true,
		"symbols.detached":      sym.Detached,
		"symbols.ahead":         sym.Ahead,
		"symbols.behind":        sym.Behind,
		"symbols.clean":         sym.Clean,
		"symbols.staged":        sym.Staged,
		"symbols.conflicted":    sym.Conflicted,
		"symbols.unstaged":      sym.Unstaged,
		"symbols.untracked":     sym.Untracked,
		"symbols.dirty":         sym.Dirty,
		"colors.path":           pal.Path.String(),
		"colors.head":           pal.Head.String(),
		"colors.ahead":          pal.Ahead.String(),
		"colors.behind":         pal.Behind.String(),
		"colors.clean":          pal.Clean.String(),
		"colors.staged":         pal.Staged.String(),
		"colors.conflicted":     pal.Conflicted.String(),
		"colors.unstaged":       pal.Unstaged.String(),
		"colors.untracked":      pal.Untracked.String(),
		"colors.operation":      pal.Operation.String(),
		"colors.dirty":          pal.Dirty.String(),
		"colors.venv":           pal.Venv.String(),
		"prompt.insert_symbol":  g.InsertSymbol,
		"prompt.command_symbol": g.CommandSymbol,
		"prompt.command_keymap": g.CommandKeymap,
		"prompt.success_color":  pal.GlyphSuccess.String(),
		"prompt.failure_color":  pal.GlyphFailure.String(),
	}
}

func (c *Config) validate() error {
	if !slices.Contains(ui.Dialects, ui.Dialect(c.Dialect)) {
		return &ValidationError{Key: "dialect", Err: fmt.Errorf("unsupported dialect %q", c.Dialect)}
	}
	if c.Path.PrefixLength < 1 {
		return &ValidationError{Key: "path.prefix_length", Err: fmt.Errorf("must be at least 1, got %d", c.Path.PrefixLength)}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// DialectValue returns the configured output dialect.
func (c *Config) DialectValue() ui.Dialect {
	return ui.Dialect(c.Dialect)
}

// PathOptions returns the path abbreviation settings.
func (c *Config) PathOptions() pathfmt.Options {
	return pathfmt.Options{
		PrefixLength: c.Path.PrefixLength,
		HomeMarker:   c.Path.HomeMarker,
	}
}

// StatusSymbols returns the status token symbols.
func (c *Config) StatusSymbols() status.Symbols {
	s := c.Symbols
	return status.Symbols{
		Detached:   s.Detached,
		Ahead:      s.Ahead,
		Behind:     s.Behind,
		Clean:      s.Clean,
		Staged:     s.Staged,
		Conflicted: s.Conflicted,
		Unstaged:   s.Unstaged,
		Untracked:  s.Untracked,
		Dirty:      s.Dirty,
	}
}

// GlyphOptions returns the prompt glyph settings.
func (c *Config) GlyphOptions() glyph.Options {
	return glyph.Options{
		InsertSymbol:  c.Prompt.InsertSymbol,
		CommandSymbol: c.Prompt.CommandSymbol,
		CommandKeymap: c.Prompt.CommandKeymap,
	}
}

// Palette parses every configured color. Command mode shares the success color.
func (c *Config) Palette() (ui.Palette, error) {
	var p ui.Palette
	fields := []struct {
		key string
		val string
		dst *ui.Color
	}{
		{"colors.path", c.Colors.Path, &p.Path},
		{"colors.head", c.Colors.Head, &p.Head},
		{"colors.ahead", c.Colors.Ahead, &p.Ahead},
		{"colors.behind", c.Colors.Behind, &p.Behind},
		{"colors.clean", c.Colors.Clean, &p.Clean},
		{"colors.staged", c.Colors.Staged, &p.Staged},
		{"colors.conflicted", c.Colors.Conflicted, &p.Conflicted},
		{"colors.unstaged", c.Colors.Unstaged, &p.Unstaged},
		{"colors.untracked", c.Colors.Untracked, &p.Untracked},
		{"colors.operation", c.Colors.Operation, &p.Operation},
		{"colors.dirty", c.Colors.Dirty, &p.Dirty},
		{"colors.venv", c.Colors.Venv, &p.Venv},
		{"prompt.success_color", c.Prompt.SuccessColor, &p.GlyphSuccess},
		{"prompt.failure_color", c.Prompt.FailureColor, &p.GlyphFailure},
	}
	for _, f := range fields {
		col, err := ui.ParseColor(f.val)
		if err != nil {
			return ui.Palette{}, &ValidationError{Key: f.key, Err: err}
		}
		*f.dst = col
	}
	p.GlyphCommand = p.GlyphSuccess
	return p, nil
}
