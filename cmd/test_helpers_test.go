package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/wasabi0522/zprs/internal/config"
	"github.com/wasabi0522/zprs/internal/git"
)

const (
	testHome = "/home/me"
	testCwd  = "/home/me/projects/repo"
)

var errNoRepo = errors.New("not a git repository")

// appWithDeps creates an App that resolves to the given deps and the default config.
func appWithDeps(d *deps) *App {
	return appWithConfig(config.Default(), d)
}

// appWithConfig creates an App that resolves to the given config and deps.
func appWithConfig(cfg *config.Config, d *deps) *App {
	return &App{
		resolveDeps:       func() (*deps, error) { return d, nil },
		resolveConfig:     func() (*config.Config, error) { return cfg, nil },
		resolveConfigPath: func() (string, error) { return "", errors.New("no config path") },
	}
}

// appWithDepsError creates an App whose resolvers return an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps:       func() (*deps, error) { return nil, err },
		resolveConfig:     func() (*config.Config, error) { return nil, err },
		resolveConfigPath: func() (string, error) { return "", err },
	}
}

// newDeps returns deps rooted at testCwd.
func newDeps(repo git.Repository) *deps {
	open := func(string) (git.Repository, error) { return nil, errNoRepo }
	if repo != nil {
		open = func(string) (git.Repository, error) { return repo, nil }
	}
	return &deps{cwd: testCwd, home: testHome, open: open}
}

// cleanRepo returns a repository mock on a clean main branch without upstream.
func cleanRepo() *git.RepositoryMock {
	return &git.RepositoryMock{
		HeadFunc: func() (git.Head, error) {
			return git.Head{Branch: "main", Hash: plumbing.NewHash("1111111111111111111111111111111111111111")}, nil
		},
		UpstreamFunc: func(string) (plumbing.Hash, error) {
			return plumbing.ZeroHash, git.ErrNoUpstream
		},
		AheadBehindFunc: func(plumbing.Hash, plumbing.Hash) (int, int, error) {
			return 0, 0, nil
		},
		StatusFunc: func() ([]git.FileStatus, error) {
			return nil, nil
		},
		GitDirFunc: func() (billy.Filesystem, error) {
			return nil, errNoRepo
		},
		WorkDirFunc: func() (billy.Filesystem, error) {
			return nil, errNoRepo
		},
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
