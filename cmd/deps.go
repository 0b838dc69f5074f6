package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wasabi0522/zprs/internal/config"
	"github.com/wasabi0522/zprs/internal/git"
	"github.com/wasabi0522/zprs/internal/status"
	"github.com/wasabi0522/zprs/internal/ui"
)

// App holds the dependency resolution functions and builds the CLI command tree.
type App struct {
	resolveDeps       func() (*deps, error)
	resolveConfig     func() (*config.Config, error)
	resolveConfigPath func() (string, error)
	verbose           bool
	dialect           string
}

// NewApp creates an App with default dependency resolvers.
func NewApp() *App {
	return &App{
		resolveDeps:       defaultResolveDeps,
		resolveConfig:     defaultResolveConfig,
		resolveConfigPath: config.DefaultPath,
	}
}

// deps is the environment of a repository lookup.
type deps struct {
	cwd  string
	home string
	open git.Opener
}

func defaultResolveDeps() (*deps, error) {
	return resolveDepsFrom(os.Getwd, os.UserHomeDir)
}

func resolveDepsFrom(getwd, homeDir func() (string, error)) (*deps, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("reading working directory: %w", err)
	}
	// Without a home directory the path is shown unabbreviated.
	home, err := homeDir()
	if err != nil {
		home = ""
	}
	return &deps{cwd: cwd, home: home, open: git.Open}, nil
}

func defaultResolveConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// config returns the user configuration, or the defaults when it cannot be
// loaded. The prompt must render even with a broken config file.
func (a *App) config() *config.Config {
	cfg, err := a.resolveConfig()
	if err != nil {
		a.logger().Debug("config unavailable, using defaults", "err", err)
		return config.Default()
	}
	return cfg
}

// logger returns a debug-level stderr logger when --verbose is set.
func (a *App) logger() *slog.Logger {
	if a.verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}

// painter resolves the output dialect, letting --dialect override the config.
func (a *App) painter(cfg *config.Config) (ui.Painter, error) {
	dialect := cfg.DialectValue()
	if a.dialect != "" {
		dialect = ui.Dialect(a.dialect)
	}
	return ui.NewPainter(dialect)
}

// style resolves the painter and palette for cfg.
func (a *App) style(cfg *config.Config) (ui.Painter, ui.Palette, error) {
	p, err := a.painter(cfg)
	if err != nil {
		return nil, ui.Palette{}, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, ui.Palette{}, err
	}
	return p, pal, nil
}

// withSynthesizer resolves dependencies and calls fn with a Synthesizer built from them.
func (a *App) withSynthesizer(fn func(cfg *config.Config, d *deps, s *status.Synthesizer, p ui.Painter, pal ui.Palette) error) error {
	cfg := a.config()
	d, err := a.resolveDeps()
	if err != nil {
		return err
	}
	p, pal, err := a.style(cfg)
	if err != nil {
		return err
	}
	return fn(cfg, d, a.synthesizer(cfg, d, p, pal), p, pal)
}

func (a *App) synthesizer(cfg *config.Config, d *deps, p ui.Painter, pal ui.Palette) *status.Synthesizer {
	return status.NewSynthesizer(
		status.WithOpener(d.open),
		status.WithPainter(p),
		status.WithPalette(pal),
		status.WithSymbols(cfg.StatusSymbols()),
		status.WithLogger(a.logger()),
	)
}
