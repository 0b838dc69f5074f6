// Package status summarizes the state of the git repository enclosing a path
// as a short colored prompt segment.
package status

import (
	"github.com/wasabi0522/zprs/internal/git"
	"github.com/wasabi0522/zprs/internal/ui"
)

// Logger receives the reason each piece of the summary was left out.
type Logger interface {
	Debug(msg string, args ...any)
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger for skipped lookups.
func WithLogger(l Logger) Option {
	return func(s *Synthesizer) { s.logger = l }
}

// WithOpener overrides repository discovery.
func WithOpener(open git.Opener) Option {
	return func(s *Synthesizer) { s.open = open }
}

// WithPainter sets the color encoding.
func WithPainter(p ui.Painter) Option {
	return func(s *Synthesizer) { s.painter = p }
}

// WithPalette sets the token colors.
func WithPalette(p ui.Palette) Option {
	return func(s *Synthesizer) { s.palette = p }
}

// WithSymbols sets the token symbols.
func WithSymbols(sym Symbols) Option {
	return func(s *Synthesizer) { s.symbols = sym }
}

// Synthesizer builds repository segments. Every lookup is best effort: a failed
// step drops its token and the rest of the segment is still produced.
type Synthesizer struct {
	open    git.Opener
	painter ui.Painter
	palette ui.Palette
	symbols Symbols
	logger  Logger
}

// NewSynthesizer creates a Synthesizer backed by go-git with plain output.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		open:    git.Open,
		painter: ui.PlainPainter(),
		palette: ui.DefaultPalette(),
		symbols: DefaultSymbols(),
		logger:  nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Synthesize renders the repository segment for path. ok is false only when path
// is not inside a repository.
func (s *Synthesizer) Synthesize(path string, detail bool) (segment string, ok bool) {
	r, ok := s.Collect(path, detail)
	if !ok {
		return "", false
	}
	return Render(r.Tokens(detail, s.symbols), s.painter, s.palette), true
}

// Collect gathers the report for path. Divergence and operation are only looked
// up in detail mode.
func (s *Synthesizer) Collect(path string, detail bool) (*Report, bool) {
	repo, err := s.open(path)
	if err != nil {
		s.logger.Debug("no repository", "path", path, "err", err)
		return nil, false
	}

	r := &Report{}
	head, err := repo.Head()
	if err != nil {
		s.logger.Debug("head unavailable", "err", err)
	} else {
		var ok bool
		if r.Head, ok = headRefOf(head); !ok {
			s.logger.Debug("detached head without commit")
		}
		if detail {
			r.Divergence = s.divergence(repo, head)
		}
	}

	r.Tally, r.Files = s.tally(repo)

	if detail {
		r.Operation = s.operation(repo)
	}
	return r, true
}

func (s *Synthesizer) divergence(repo git.Repository, head git.Head) *Divergence {
	if head.Detached() || head.Unborn() {
		return nil
	}
	upstream, err := repo.Upstream(head.Branch)
	if err != nil {
		s.logger.Debug("upstream unavailable", "branch", head.Branch, "err", err)
		return nil
	}
	ahead, behind, err := repo.AheadBehind(head.Hash, upstream)
	if err != nil {
		s.logger.Debug("ahead/behind unavailable", "branch", head.Branch, "err", err)
		return nil
	}
	return &Divergence{Ahead: ahead, Behind: behind}
}

func (s *Synthesizer) tally(repo git.Repository) (*Tally, []git.FileStatus) {
	entries, err := repo.Status()
	if err != nil {
		s.logger.Debug("status unavailable", "err", err)
		return nil, nil
	}
	t := TallyOf(entries)
	return &t, entries
}

func (s *Synthesizer) operation(repo git.Repository) Operation {
	gitDir, err := repo.GitDir()
	if err != nil {
		s.logger.Debug("metadata directory unavailable", "err", err)
		return OpNone
	}
	m := Markers{GitDir: gitDir}
	if workDir, err := repo.WorkDir(); err == nil {
		m.WorkDir = workDir
	}
	return ProbeOperation(m)
}
