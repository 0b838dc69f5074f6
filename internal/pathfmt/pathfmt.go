// Package pathfmt shortens working directory paths for display in a prompt.
package pathfmt

import (
	"path"
	"strings"
)

// Options controls Truncate.
type Options struct {
	// PrefixLength is how many characters of each intermediate segment are kept,
	// not counting leading dots.
	PrefixLength int
	// HomeMarker replaces the home directory prefix.
	HomeMarker string
}

// DefaultOptions keeps one character per segment and abbreviates home to "~".
func DefaultOptions() Options {
	return Options{PrefixLength: 1, HomeMarker: "~"}
}

// Truncate abbreviates the home directory in p, then shortens every segment but
// the last to opts.PrefixLength characters after any leading dots.
//
//	/home/me/src/github.com/zprs -> ~/s/g/zprs
//	/home/me/.config/nvim        -> ~/.c/nvim
//
// An empty home skips abbreviation. Truncate is idempotent.
func Truncate(p, home string, opts Options) string {
	if p == "" {
		return ""
	}
	if opts.PrefixLength < 1 {
		opts.PrefixLength = 1
	}
	if opts.HomeMarker == "" {
		opts.HomeMarker = "~"
	}

	p = abbreviateHome(path.Clean(p), home, opts.HomeMarker)
	segs := strings.Split(p, "/")
	for i := range len(segs) - 1 {
		if i == 0 && segs[i] == opts.HomeMarker {
			continue
		}
		segs[i] = shorten(segs[i], opts.PrefixLength)
	}
	return strings.Join(segs, "/")
}

func abbreviateHome(p, home, marker string) string {
	if home == "" {
		return p
	}
	home = path.Clean(home)
	if home == "/" {
		return p
	}
	if p == home {
		return marker
	}
	if rest, ok := strings.CutPrefix(p, home+"/"); ok {
		return marker + "/" + rest
	}
	return p
}

func shorten(seg string, n int) string {
	rest := strings.TrimLeft(seg, ".")
	dots := seg[:len(seg)-len(rest)]
	runes := []rune(rest)
	if len(runes) <= n {
		return seg
	}
	return dots + string(runes[:n])
}
