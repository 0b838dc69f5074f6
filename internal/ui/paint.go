package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Dialect selects how colors are encoded in the output.
type Dialect string

const (
	// DialectZsh emits zsh prompt escapes (%F{..}%f, %B..%b).
	DialectZsh Dialect = "zsh"
	// DialectANSI emits raw SGR escape sequences.
	DialectANSI Dialect = "ansi"
	// DialectPlain emits uncolored text.
	DialectPlain Dialect = "plain"
)

// Dialects lists the supported dialects.
var Dialects = []Dialect{DialectZsh, DialectANSI, DialectPlain}

// Painter applies a Style to a piece of text.
type Painter interface {
	Paint(s string, st Style) string
}

// NewPainter returns the Painter for d. NO_COLOR forces plain output.
func NewPainter(d Dialect) (Painter, error) {
	if colorDisabled() {
		return plainPainter{}, nil
	}
	switch d {
	case DialectZsh:
		return zshPainter{}, nil
	case DialectANSI:
		return ansiPainter{}, nil
	case DialectPlain:
		return plainPainter{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", d)
	}
}

// PlainPainter returns a Painter that leaves text uncolored.
func PlainPainter() Painter { return plainPainter{} }

type plainPainter struct{}

func (plainPainter) Paint(s string, _ Style) string { return s }

type zshPainter struct{}

func (zshPainter) Paint(s string, st Style) string {
	if s == "" {
		return ""
	}
	// a literal % would otherwise start a prompt escape
	out := strings.ReplaceAll(s, "%", "%%")
	if st.Bold {
		out = "%B" + out + "%b"
	}
	if !st.Color.IsDefault() {
		out = "%F{" + zshColor(st.Color) + "}" + out + "%f"
	}
	return out
}

func zshColor(c Color) string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorIndex:
		return strconv.Itoa(int(c.index))
	default:
		return c.String()
	}
}

type ansiPainter struct{}

func (ansiPainter) Paint(s string, st Style) string {
	if s == "" || (st.Color.IsDefault() && !st.Bold) {
		return s
	}
	c := ansiColor(st.Color)
	if st.Bold {
		c.Add(color.Bold)
	}
	// output is usually captured by the shell, so skip the tty check
	c.EnableColor()
	return c.Sprint(s)
}

func ansiColor(c Color) *color.Color {
	switch c.kind {
	case colorNamed:
		return color.New(color.FgBlack + color.Attribute(c.index))
	case colorIndex:
		switch {
		case c.index < 8:
			return color.New(color.FgBlack + color.Attribute(c.index))
		case c.index < 16:
			return color.New(color.FgHiBlack + color.Attribute(c.index-8))
		}
		r, g, b := xtermRGB(c.index)
		return color.RGB(int(r), int(g), int(b))
	case colorRGB:
		return color.RGB(int(c.rgb[0]), int(c.rgb[1]), int(c.rgb[2]))
	default:
		return color.New()
	}
}

// xtermRGB converts a 256-color palette index >= 16 to its RGB value.
func xtermRGB(i uint8) (r, g, b uint8) {
	if i >= 232 {
		v := 8 + (i-232)*10
		return v, v, v
	}
	i -= 16
	level := func(n uint8) uint8 {
		if n == 0 {
			return 0
		}
		return 55 + n*40
	}
	return level(i / 36), level((i / 6) % 6), level(i % 6)
}
