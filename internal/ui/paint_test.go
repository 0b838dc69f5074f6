package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", Default},
		{"default", Default},
		{"Cyan", Named("cyan")},
		{"purple", Named("purple")},
		{"11", Index(11)},
		{"255", Index(255)},
		{"#21cf5f", RGB(33, 207, 95)},
		{"#FF004B", RGB(255, 0, 75)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"chartreuse", "256", "-1", "#12345", "#zzzzzz"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseColor(bad)
			var ce *ColorError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, bad, ce.Value)
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "cyan", Named("cyan").String())
	assert.Equal(t, "11", Index(11).String())
	assert.Equal(t, "#21cf5f", RGB(33, 207, 95).String())
	assert.Equal(t, Default, Named("nope"))
}

func TestPaletteStyle(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, Style{Color: Named("cyan")}, p.Style(KindHead))
	assert.Equal(t, Style{Color: Named("red"), Bold: true}, p.Style(KindDirty))
	assert.Equal(t, Style{Color: RGB(255, 0, 75)}, p.Style(KindGlyphFailure))
	assert.True(t, p.Style(KindUnstaged).Color.IsDefault())
	assert.Equal(t, Style{}, p.Style(Kind(-1)))
}

func TestNewPainter(t *testing.T) {
	SetNoColor(false)

	for _, d := range Dialects {
		p, err := NewPainter(d)
		require.NoError(t, err)
		assert.NotNil(t, p)
	}

	_, err := NewPainter("fish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")

	t.Run("NO_COLOR forces plain", func(t *testing.T) {
		SetNoColor(true)
		t.Cleanup(func() { SetNoColor(false) })

		p, err := NewPainter(DialectZsh)
		require.NoError(t, err)
		assert.Equal(t, "main", p.Paint("main", Style{Color: Named("cyan")}))
	})
}

func TestZshPainter(t *testing.T) {
	p := zshPainter{}

	assert.Equal(t, "%F{cyan}main%f", p.Paint("main", Style{Color: Named("cyan")}))
	assert.Equal(t, "%F{11}|venv|%f", p.Paint("|venv|", Style{Color: Index(11)}))
	assert.Equal(t, "%F{#21cf5f}❯%f", p.Paint("❯", Style{Color: RGB(33, 207, 95)}))
	assert.Equal(t, "%F{red}%B*%b%f", p.Paint("*", Style{Color: Named("red"), Bold: true}))
	assert.Equal(t, "✚2", p.Paint("✚2", Style{}))
	assert.Equal(t, "100%%", p.Paint("100%", Style{}))
	assert.Empty(t, p.Paint("", Style{Color: Named("cyan")}))
}

func TestANSIPainter(t *testing.T) {
	p := ansiPainter{}

	assert.Equal(t, "\x1b[36mmain\x1b[0m", p.Paint("main", Style{Color: Named("cyan")}))
	assert.Equal(t, "\x1b[93m|venv|\x1b[0m", p.Paint("|venv|", Style{Color: Index(11)}))
	assert.Contains(t, p.Paint("❯", Style{Color: RGB(33, 207, 95)}), "38;2;33;207;95")
	assert.Contains(t, p.Paint("x", Style{Color: Index(196)}), "38;2;255;0;0")

	bold := p.Paint("*", Style{Color: Named("red"), Bold: true})
	assert.Contains(t, bold, "31")
	assert.Contains(t, bold, "1m*")

	assert.Equal(t, "plain", p.Paint("plain", Style{}))
}

func TestPlainPainter(t *testing.T) {
	assert.Equal(t, "main", plainPainter{}.Paint("main", Style{Color: Named("cyan"), Bold: true}))
}

func TestXtermRGB(t *testing.T) {
	tests := []struct {
		in      uint8
		r, g, b uint8
	}{
		{16, 0, 0, 0},
		{196, 255, 0, 0},
		{231, 255, 255, 255},
		{232, 8, 8, 8},
		{255, 238, 238, 238},
	}
	for _, tt := range tests {
		r, g, b := xtermRGB(tt.in)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "index %d", tt.in)
	}
}
