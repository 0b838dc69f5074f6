package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wasabi0522/zprs/internal/ui"
)

func TestSelect(t *testing.T) {
	opts := DefaultOptions()

	t.Run("command mode ignores exit code", func(t *testing.T) {
		for _, code := range []string{"0", "1", "130", ""} {
			g := Select("vicmd", code, opts)
			assert.Equal(t, Glyph{Symbol: "❮", Kind: ui.KindGlyphCommand}, g)
		}
	})

	t.Run("insert mode success", func(t *testing.T) {
		assert.Equal(t, Glyph{Symbol: "❯", Kind: ui.KindGlyphSuccess}, Select("US", "0", opts))
		assert.Equal(t, Glyph{Symbol: "❯", Kind: ui.KindGlyphSuccess}, Select("main", "0", opts))
	})

	t.Run("insert mode failure", func(t *testing.T) {
		assert.Equal(t, Glyph{Symbol: "❯", Kind: ui.KindGlyphFailure}, Select("US", "1", opts))
		assert.Equal(t, Glyph{Symbol: "❯", Kind: ui.KindGlyphFailure}, Select("US", "00", opts))
	})

	t.Run("custom keymap and symbols", func(t *testing.T) {
		custom := Options{InsertSymbol: ">", CommandSymbol: "<", CommandKeymap: "normal"}
		assert.Equal(t, "<", Select("normal", "1", custom).Symbol)
		assert.Equal(t, ">", Select("vicmd", "0", custom).Symbol)
	})
}

func TestSelectColors(t *testing.T) {
	p := ui.DefaultPalette()
	opts := DefaultOptions()

	assert.Equal(t, ui.RGB(33, 207, 95), p.Style(Select("vicmd", "1", opts).Kind).Color)
	assert.Equal(t, ui.RGB(33, 207, 95), p.Style(Select("US", "0", opts).Kind).Color)
	assert.Equal(t, ui.RGB(255, 0, 75), p.Style(Select("US", "1", opts).Kind).Color)
}
