// Package glyph picks the prompt character for the current line editor mode.
package glyph

import "github.com/wasabi0522/zprs/internal/ui"

// SuccessCode is the exit status string of a successful command.
const SuccessCode = "0"

// Options holds the glyphs and the keymap that marks command mode.
type Options struct {
	InsertSymbol  string
	CommandSymbol string
	CommandKeymap string
}

// DefaultOptions returns the zsh vi-mode defaults.
func DefaultOptions() Options {
	return Options{
		InsertSymbol:  "❯",
		CommandSymbol: "❮",
		CommandKeymap: "vicmd",
	}
}

// Glyph is the prompt character and the palette entry it is drawn with.
type Glyph struct {
	Symbol string
	Kind   ui.Kind
}

// Select classifies the editor mode. Command mode ignores the exit code; insert
// mode is colored by whether the last command succeeded.
func Select(keymap, lastExitCode string, opts Options) Glyph {
	if keymap == opts.CommandKeymap {
		return Glyph{Symbol: opts.CommandSymbol, Kind: ui.KindGlyphCommand}
	}
	if lastExitCode == SuccessCode {
		return Glyph{Symbol: opts.InsertSymbol, Kind: ui.KindGlyphSuccess}
	}
	return Glyph{Symbol: opts.InsertSymbol, Kind: ui.KindGlyphFailure}
}
