package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Repo is a temporary on-disk git repository driven through go-git.
type Repo struct {
	t       *testing.T
	Dir     string
	Git     *gitlib.Repository
	commits int
}

// NewRepo initializes an empty repository whose HEAD points at main.
// The directory is cleaned up when the test finishes.
func NewRepo(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gitlib.PlainInitWithOptions(dir, &gitlib.PlainInitOptions{
		InitOptions: gitlib.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	if err != nil {
		t.Fatalf("git init %s: %v", dir, err)
	}
	return &Repo{t: t, Dir: dir, Git: repo}
}

// GitRepo creates a temporary git repository with an initial commit.
func GitRepo(t *testing.T) *Repo {
	t.Helper()
	r := NewRepo(t)
	r.CommitFile("README.md", "# test\n", "initial commit")
	return r
}

// WriteFile writes content to a path relative to the working tree.
func (r *Repo) WriteFile(name, content string) *Repo {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatal(err)
	}
	return r
}

// Add stages a path.
func (r *Repo) Add(name string) *Repo {
	r.t.Helper()
	if _, err := r.worktree().Add(name); err != nil {
		r.t.Fatalf("git add %s: %v", name, err)
	}
	return r
}

// Commit records the index and returns the new commit hash.
func (r *Repo) Commit(msg string) plumbing.Hash {
	r.t.Helper()
	sig := r.signature()
	h, err := r.worktree().Commit(msg, &gitlib.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		r.t.Fatalf("git commit %q: %v", msg, err)
	}
	return h
}

// CommitFile writes, stages and commits a single file.
func (r *Repo) CommitFile(name, content, msg string) plumbing.Hash {
	r.t.Helper()
	return r.WriteFile(name, content).Add(name).Commit(msg)
}

// Checkout detaches HEAD at the given commit.
func (r *Repo) Checkout(h plumbing.Hash) *Repo {
	r.t.Helper()
	if err := r.worktree().Checkout(&gitlib.CheckoutOptions{Hash: h}); err != nil {
		r.t.Fatalf("git checkout %s: %v", h, err)
	}
	return r
}

// CommitOn records a commit on top of parent without touching HEAD, the index
// or the working tree. It reuses the parent's tree.
func (r *Repo) CommitOn(parent plumbing.Hash, msg string) plumbing.Hash {
	r.t.Helper()
	pc, err := r.Git.CommitObject(parent)
	if err != nil {
		r.t.Fatalf("reading commit %s: %v", parent, err)
	}

	sig := r.signature()
	c := &object.Commit{
		Author:       *sig,
		Committer:    *sig,
		Message:      msg,
		TreeHash:     pc.TreeHash,
		ParentHashes: []plumbing.Hash{parent},
	}
	obj := r.Git.Storer.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		r.t.Fatalf("encoding commit: %v", err)
	}
	h, err := r.Git.Storer.SetEncodedObject(obj)
	if err != nil {
		r.t.Fatalf("writing commit: %v", err)
	}
	return h
}

// SetUpstream points refs/remotes/<remote>/<branch> at h and configures branch to
// track it. The remote is created when missing.
func (r *Repo) SetUpstream(branch, remote string, h plumbing.Hash) *Repo {
	r.t.Helper()

	if _, err := r.Git.Remote(remote); err != nil {
		_, err := r.Git.CreateRemote(&config.RemoteConfig{
			Name: remote,
			URLs: []string{"https://example.com/" + remote + "/repo.git"},
		})
		if err != nil {
			r.t.Fatalf("git remote add %s: %v", remote, err)
		}
	}

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, branch), h)
	if err := r.Git.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("update-ref %s: %v", ref.Name(), err)
	}

	err := r.Git.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		r.t.Fatalf("git branch --set-upstream-to %s/%s: %v", remote, branch, err)
	}
	return r
}

// Mark creates a marker under the .git directory. A trailing slash creates a
// directory, anything else an empty file.
func (r *Repo) Mark(rel string) *Repo {
	r.t.Helper()
	path := filepath.Join(r.Dir, ".git", filepath.FromSlash(rel))
	if strings.HasSuffix(rel, "/") {
		if err := os.MkdirAll(path, 0755); err != nil {
			r.t.Fatal(err)
		}
		return r
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		r.t.Fatal(err)
	}
	return r
}

// Conflict commits name, changes it differently on main and on a side branch,
// then merges the side branch so name is left unmerged. It drives the git CLI
// and skips the test when git is not installed.
func (r *Repo) Conflict(name string) *Repo {
	r.t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		r.t.Skip("git CLI not available")
	}

	r.CommitFile(name, "base\n", "add "+name)
	r.run("checkout", "-q", "-b", "theirs")
	r.WriteFile(name, "theirs\n")
	r.run("commit", "-q", "-am", "theirs")
	r.run("checkout", "-q", "main")
	r.WriteFile(name, "ours\n")
	r.run("commit", "-q", "-am", "ours")

	if out, err := r.git("merge", "-q", "theirs").CombinedOutput(); err == nil {
		r.t.Fatalf("git merge theirs: expected a conflict on %s, got: %s", name, out)
	}
	return r
}

func (r *Repo) git(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	return cmd
}

func (r *Repo) run(args ...string) {
	r.t.Helper()
	if out, err := r.git(args...).CombinedOutput(); err != nil {
		r.t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

// signature returns a fixed author whose timestamp advances with every commit.
func (r *Repo) signature() *object.Signature {
	r.commits++
	return &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  epoch.Add(time.Duration(r.commits) * time.Minute),
	}
}

func (r *Repo) worktree() *gitlib.Worktree {
	r.t.Helper()
	wt, err := r.Git.Worktree()
	if err != nil {
		r.t.Fatalf("opening worktree: %v", err)
	}
	return wt
}
