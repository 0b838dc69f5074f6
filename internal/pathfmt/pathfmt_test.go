package pathfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	const home = "/home/me"

	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{"home itself", "/home/me", home, "~"},
		{"under home", "/home/me/src/github.com/zprs", home, "~/s/g/zprs"},
		{"dot segment", "/home/me/.config/nvim", home, "~/.c/nvim"},
		{"dot dot prefix", "/srv/..hidden/x", home, "/s/..h/x"},
		{"outside home", "/usr/local/share", home, "/u/l/share"},
		{"root", "/", home, "/"},
		{"single segment", "/tmp", home, "/tmp"},
		{"home prefix but different dir", "/home/meow/work", home, "/h/meow/work"},
		{"no home", "/home/me/src", "", "/h/m/src"},
		{"trailing slash", "/home/me/src/", home, "~/src"},
		{"unicode segment", "/home/me/ドキュメント/notes", home, "~/ド/notes"},
		{"empty", "", home, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.path, tt.home, DefaultOptions()))
		})
	}
}

func TestTruncateOptions(t *testing.T) {
	t.Run("longer prefix", func(t *testing.T) {
		got := Truncate("/home/me/projects/golang/zprs", "/home/me", Options{PrefixLength: 3})
		assert.Equal(t, "~/pro/gol/zprs", got)
	})

	t.Run("custom home marker", func(t *testing.T) {
		got := Truncate("/home/me/projects/zprs", "/home/me", Options{PrefixLength: 1, HomeMarker: "H"})
		assert.Equal(t, "H/p/zprs", got)
	})
}

func TestTruncateIdempotent(t *testing.T) {
	paths := []string{
		"/home/me/src/github.com/wasabi0522/zprs",
		"/home/me/.local/share/nvim",
		"/var/lib/docker",
		"/home/me",
		"/",
	}
	for _, p := range paths {
		for _, opts := range []Options{DefaultOptions(), {PrefixLength: 2, HomeMarker: "~"}} {
			once := Truncate(p, "/home/me", opts)
			assert.Equal(t, once, Truncate(once, "/home/me", opts), "path %s", p)
		}
	}
}

func TestTruncateKeepsLastSegment(t *testing.T) {
	for _, p := range []string{"/a/bb/ccc/a-very-long-final-segment", "/home/me/.hidden-final"} {
		got := Truncate(p, "/home/me", DefaultOptions())
		last := p[strings.LastIndex(p, "/")+1:]
		assert.True(t, strings.HasSuffix(got, "/"+last), "got %s", got)
	}
}
