package status

import (
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/wasabi0522/zprs/internal/git"
	"github.com/wasabi0522/zprs/internal/ui"
)

// shortIDLength matches git's default core.abbrev.
const shortIDLength = 7

// HeadRef names the checked-out reference: a branch, or an abbreviated commit id
// when detached.
type HeadRef struct {
	Name     string `json:"name"`
	Detached bool   `json:"detached"`
}

// Label returns the branch name, or the short id prefixed with marker.
func (h HeadRef) Label(marker string) string {
	if h.Detached {
		return marker + h.Name
	}
	return h.Name
}

func headRefOf(h git.Head) (*HeadRef, bool) {
	if !h.Detached() {
		return &HeadRef{Name: h.Branch}, true
	}
	if h.Hash.IsZero() {
		return nil, false
	}
	return &HeadRef{Name: shortID(h.Hash), Detached: true}, true
}

func shortID(h plumbing.Hash) string {
	return h.String()[:shortIDLength]
}

// Divergence counts commits on each side of a branch and its upstream.
type Divergence struct {
	Ahead  int `json:"ahead"`
	Behind int `json:"behind"`
}

// Report is everything known about a repository for one prompt.
// Nil fields could not be determined.
type Report struct {
	Head       *HeadRef    `json:"head,omitempty"`
	Divergence *Divergence `json:"divergence,omitempty"`
	Tally      *Tally      `json:"tally,omitempty"`
	Operation  Operation   `json:"operation"`
	// Files are the changed paths behind Tally.
	Files []git.FileStatus `json:"-"`
}

// Symbols are the characters prefixed to each token.
type Symbols struct {
	Detached   string
	Ahead      string
	Behind     string
	Clean      string
	Staged     string
	Conflicted string
	Unstaged   string
	Untracked  string
	Dirty      string
}

// DefaultSymbols returns the built-in token symbols.
func DefaultSymbols() Symbols {
	return Symbols{
		Detached:   ":",
		Ahead:      "↑",
		Behind:     "↓",
		Clean:      "✔",
		Staged:     "♦",
		Conflicted: "✖",
		Unstaged:   "✚",
		Untracked:  "…",
		Dirty:      "*",
	}
}

// Token is one styled piece of the repository segment.
type Token struct {
	Kind ui.Kind
	Text string
}

// Tokens lays out the report in display order: head, divergence, status,
// operation. Terse output reduces status to a single dirty marker and omits
// divergence and operation.
func (r *Report) Tokens(detail bool, sym Symbols) []Token {
	var out []Token
	if r.Head != nil {
		out = append(out, Token{Kind: ui.KindHead, Text: r.Head.Label(sym.Detached)})
	}

	if !detail {
		if r.Tally != nil && !r.Tally.Clean() {
			out = append(out, Token{Kind: ui.KindDirty, Text: sym.Dirty})
		}
		return out
	}

	if d := r.Divergence; d != nil {
		out = appendCount(out, ui.KindAhead, sym.Ahead, d.Ahead)
		out = appendCount(out, ui.KindBehind, sym.Behind, d.Behind)
	}

	if t := r.Tally; t != nil {
		if t.Clean() {
			out = append(out, Token{Kind: ui.KindClean, Text: sym.Clean})
		} else {
			out = appendCount(out, ui.KindStaged, sym.Staged, t.Staged)
			out = appendCount(out, ui.KindConflicted, sym.Conflicted, t.Conflicted)
			out = appendCount(out, ui.KindUnstaged, sym.Unstaged, t.Unstaged)
			out = appendCount(out, ui.KindUntracked, sym.Untracked, t.Untracked)
		}
	}

	if r.Operation != OpNone {
		out = append(out, Token{Kind: ui.KindOperation, Text: " " + r.Operation.String()})
	}
	return out
}

func appendCount(out []Token, k ui.Kind, symbol string, n int) []Token {
	if n <= 0 {
		return out
	}
	return append(out, Token{Kind: k, Text: symbol + strconv.Itoa(n)})
}

// Render paints each token with its palette style and concatenates them.
func Render(tokens []Token, p ui.Painter, pal ui.Palette) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(p.Paint(t.Text, pal.Style(t.Kind)))
	}
	return b.String()
}
