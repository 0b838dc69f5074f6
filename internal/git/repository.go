package git

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrNoUpstream is returned by Upstream when the branch tracks nothing.
var ErrNoUpstream = errors.New("no upstream configured")

var _ Repository = (*repository)(nil)

type repository struct {
	repo *gitlib.Repository
}

// Open discovers the repository enclosing path by walking up its parents.
func Open(path string) (Repository, error) {
	repo, err := gitlib.PlainOpenWithOptions(path, &gitlib.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &repository{repo: repo}, nil
}

// NewRepository wraps an already opened go-git repository.
func NewRepository(repo *gitlib.Repository) Repository {
	return &repository{repo: repo}
}

func (r *repository) Head() (Head, error) {
	ref, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return Head{}, fmt.Errorf("reading HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return Head{Hash: ref.Hash()}, nil
	}

	target := ref.Target()
	resolved, err := r.repo.Reference(target, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// unborn branch: HEAD names a branch without commits
		return Head{Branch: target.Short()}, nil
	}
	if err != nil {
		return Head{}, fmt.Errorf("resolving %s: %w", target, err)
	}
	return Head{Branch: target.Short(), Hash: resolved.Hash()}, nil
}

func (r *repository) Upstream(branch string) (plumbing.Hash, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("reading config: %w", err)
	}
	bc, ok := cfg.Branches[branch]
	if !ok || bc.Merge == "" || bc.Remote == "" {
		return plumbing.ZeroHash, ErrNoUpstream
	}

	ref, err := r.repo.Reference(upstreamRefName(cfg, bc), true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving upstream of %s: %w", branch, err)
	}
	return ref.Hash(), nil
}

// upstreamRefName maps branch.<name>.merge through the remote's fetch refspecs.
func upstreamRefName(cfg *config.Config, bc *config.Branch) plumbing.ReferenceName {
	if bc.Remote == "." {
		return bc.Merge
	}
	if rc, ok := cfg.Remotes[bc.Remote]; ok {
		for _, spec := range rc.Fetch {
			if spec.Match(bc.Merge) {
				return spec.Dst(bc.Merge)
			}
		}
	}
	return plumbing.NewRemoteReferenceName(bc.Remote, strings.TrimPrefix(bc.Merge.String(), "refs/heads/"))
}

func (r *repository) AheadBehind(local, upstream plumbing.Hash) (int, int, error) {
	if local == upstream {
		return 0, 0, nil
	}
	fromLocal, err := r.ancestors(local)
	if err != nil {
		return 0, 0, err
	}
	fromUpstream, err := r.ancestors(upstream)
	if err != nil {
		return 0, 0, err
	}
	return countMissing(fromLocal, fromUpstream), countMissing(fromUpstream, fromLocal), nil
}

// ancestors returns every commit reachable from h, h included.
func (r *repository) ancestors(h plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.Log(&gitlib.LogOptions{From: h})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", h, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", h, err)
	}
	return seen, nil
}

func countMissing(set, other map[plumbing.Hash]struct{}) int {
	n := 0
	for h := range set {
		if _, ok := other[h]; !ok {
			n++
		}
	}
	return n
}

func (r *repository) Status() ([]FileStatus, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, err
	}
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	unmerged, trackedDirs := indexPaths(idx)

	// go-git reports an unmerged path as modified on both sides, so conflicts
	// come from the index stages instead.
	byPath := make(map[string]StatusFlag, len(st)+len(unmerged))
	for p, fs := range st {
		if _, ok := unmerged[p]; ok {
			continue
		}
		flags := flagsOf(fs)
		if flags == 0 {
			continue
		}
		if flags == WorktreeNew {
			p = untrackedRoot(p, trackedDirs)
		}
		byPath[p] |= flags
	}
	for p := range unmerged {
		byPath[p] = Conflicted
	}

	entries := make([]FileStatus, 0, len(byPath))
	for p, flags := range byPath {
		entries = append(entries, FileStatus{Path: p, Flags: flags})
	}
	slices.SortFunc(entries, func(a, b FileStatus) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// indexPaths returns the paths with unmerged stages and every directory that
// holds a tracked file.
func indexPaths(idx *index.Index) (unmerged, trackedDirs map[string]struct{}) {
	unmerged = map[string]struct{}{}
	trackedDirs = map[string]struct{}{}
	for _, e := range idx.Entries {
		if e.Stage != index.Merged {
			unmerged[e.Name] = struct{}{}
		}
		for dir := path.Dir(e.Name); dir != "."; dir = path.Dir(dir) {
			if _, ok := trackedDirs[dir]; ok {
				break
			}
			trackedDirs[dir] = struct{}{}
		}
	}
	return unmerged, trackedDirs
}

// untrackedRoot collapses an untracked file to the outermost directory above it
// that holds no tracked file, written with a trailing slash as git does.
func untrackedRoot(p string, trackedDirs map[string]struct{}) string {
	parts := strings.Split(p, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		if _, ok := trackedDirs[dir]; !ok {
			return dir + "/"
		}
	}
	return p
}

func (r *repository) GitDir() (billy.Filesystem, error) {
	s, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("repository storage is not filesystem backed")
	}
	return s.Filesystem(), nil
}

func (r *repository) WorkDir() (billy.Filesystem, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, err
	}
	return wt.Filesystem, nil
}
