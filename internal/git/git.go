package git

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

//go:generate moq -out repository_mock.go . Repository

// HeadReader abstracts resolution of the checked-out reference.
type HeadReader interface {
	Head() (Head, error)
}

// UpstreamReader abstracts upstream lookup and commit graph traversal.
type UpstreamReader interface {
	Upstream(branch string) (plumbing.Hash, error)
	AheadBehind(local, upstream plumbing.Hash) (ahead, behind int, err error)
}

// StatusReader abstracts the working tree status scan.
type StatusReader interface {
	Status() ([]FileStatus, error)
}

// MetadataReader exposes the filesystems holding in-progress operation markers.
type MetadataReader interface {
	// GitDir returns the repository metadata directory (usually .git).
	GitDir() (billy.Filesystem, error)
	// WorkDir returns the working tree root. Bare repositories return an error.
	WorkDir() (billy.Filesystem, error)
}

// Repository abstracts the read-only queries needed to describe a repository.
type Repository interface {
	HeadReader
	UpstreamReader
	StatusReader
	MetadataReader
}

// Opener discovers the repository enclosing path.
type Opener func(path string) (Repository, error)

// Head describes the checked-out reference.
type Head struct {
	// Branch is the short branch name. Empty when detached.
	Branch string
	// Hash is the commit HEAD points to. Zero for an unborn branch.
	Hash plumbing.Hash
}

// Detached reports whether HEAD points directly at a commit.
func (h Head) Detached() bool {
	return h.Branch == ""
}

// Unborn reports whether HEAD names a branch that has no commits yet.
func (h Head) Unborn() bool {
	return h.Branch != "" && h.Hash.IsZero()
}

// FileStatus is one entry of a status scan.
type FileStatus struct {
	Path  string
	Flags StatusFlag
}
