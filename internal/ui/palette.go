package ui

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ColorError reports a color value that could not be parsed.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color %q: want a name, a 0-255 index or #rrggbb", e.Value)
}

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorNamed
	colorIndex
	colorRGB
)

// namedColors maps the eight basic terminal color names to their palette index.
var namedColors = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"purple":  5,
	"cyan":    6,
	"white":   7,
}

// Color is a terminal foreground color: the terminal default, a basic named
// color, a 256-color palette index, or a 24-bit RGB value.
type Color struct {
	kind  colorKind
	name  string
	index uint8
	rgb   [3]uint8
}

// Default is the terminal's own foreground color.
var Default = Color{}

// Named returns a basic named color. Unknown names yield Default.
func Named(name string) Color {
	idx, ok := namedColors[name]
	if !ok {
		return Default
	}
	if name == "purple" {
		name = "magenta"
	}
	return Color{kind: colorNamed, name: name, index: idx}
}

// Index returns a 256-color palette entry.
func Index(i uint8) Color {
	return Color{kind: colorIndex, index: i}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, rgb: [3]uint8{r, g, b}}
}

// ParseColor parses "default", a basic color name, a palette index or #rrggbb.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "" || v == "default" || v == "none":
		return Default, nil
	case strings.HasPrefix(v, "#"):
		b, err := hex.DecodeString(v[1:])
		if err != nil || len(b) != 3 {
			return Default, &ColorError{Value: s}
		}
		return RGB(b[0], b[1], b[2]), nil
	}
	if _, ok := namedColors[v]; ok {
		return Named(v), nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return Default, &ColorError{Value: s}
	}
	return Index(uint8(n)), nil
}

// IsDefault reports whether c leaves the terminal color untouched.
func (c Color) IsDefault() bool {
	return c.kind == colorDefault
}

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorIndex:
		return strconv.Itoa(int(c.index))
	case colorRGB:
		return "#" + hex.EncodeToString(c.rgb[:])
	default:
		return "default"
	}
}

// Style is the color and weight applied to one token.
type Style struct {
	Color Color
	Bold  bool
}

// Kind identifies a piece of prompt output that gets its own style.
type Kind int

const (
	KindPath Kind = iota
	KindHead
	KindAhead
	KindBehind
	KindClean
	KindStaged
	KindConflicted
	KindUnstaged
	KindUntracked
	KindOperation
	KindDirty
	KindVenv
	KindGlyphCommand
	KindGlyphSuccess
	KindGlyphFailure
)

// Palette assigns a Style to every Kind.
type Palette struct {
	Path         Color
	Head         Color
	Ahead        Color
	Behind       Color
	Clean        Color
	Staged       Color
	Conflicted   Color
	Unstaged     Color
	Untracked    Color
	Operation    Color
	Dirty        Color
	Venv         Color
	GlyphCommand Color
	GlyphSuccess Color
	GlyphFailure Color
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Path:         Named("blue"),
		Head:         Named("cyan"),
		Ahead:        Named("cyan"),
		Behind:       Named("cyan"),
		Clean:        Named("green"),
		Staged:       Named("green"),
		Conflicted:   Named("red"),
		Unstaged:     Default,
		Untracked:    Default,
		Operation:    Named("magenta"),
		Dirty:        Named("red"),
		Venv:         Index(11),
		GlyphCommand: RGB(33, 207, 95),
		GlyphSuccess: RGB(33, 207, 95),
		GlyphFailure: RGB(255, 0, 75),
	}
}

// Style returns the style for k.
func (p Palette) Style(k Kind) Style {
	switch k {
	case KindPath:
		return Style{Color: p.Path}
	case KindHead:
		return Style{Color: p.Head}
	case KindAhead:
		return Style{Color: p.Ahead}
	case KindBehind:
		return Style{Color: p.Behind}
	case KindClean:
		return Style{Color: p.Clean}
	case KindStaged:
		return Style{Color: p.Staged}
	case KindConflicted:
		return Style{Color: p.Conflicted}
	case KindUnstaged:
		return Style{Color: p.Unstaged}
	case KindUntracked:
		return Style{Color: p.Untracked}
	case KindOperation:
		return Style{Color: p.Operation}
	case KindDirty:
		return Style{Color: p.Dirty, Bold: true}
	case KindVenv:
		return Style{Color: p.Venv}
	case KindGlyphCommand:
		return Style{Color: p.GlyphCommand}
	case KindGlyphSuccess:
		return Style{Color: p.GlyphSuccess}
	case KindGlyphFailure:
		return Style{Color: p.GlyphFailure}
	default:
		return Style{}
	}
}
