package git

import (
	"strings"

	gitlib "github.com/go-git/go-git/v5"
)

// StatusFlag is a bitmask describing how a path differs between HEAD, the index
// and the working tree.
type StatusFlag uint16

const (
	IndexNew StatusFlag = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	WorktreeTypeChange
	WorktreeRenamed
	Conflicted
)

// Flag groups used to tally a status scan.
const (
	StagedFlags    = IndexNew | IndexModified | IndexDeleted | IndexRenamed | IndexTypeChange
	UnstagedFlags  = WorktreeModified | WorktreeDeleted | WorktreeTypeChange | WorktreeRenamed
	ConflictFlags  = Conflicted
	UntrackedFlags = WorktreeNew
)

// Intersects reports whether f shares any bit with group.
func (f StatusFlag) Intersects(group StatusFlag) bool {
	return f&group != 0
}

var flagNames = []struct {
	flag StatusFlag
	name string
}{
	{IndexNew, "index-new"},
	{IndexModified, "index-modified"},
	{IndexDeleted, "index-deleted"},
	{IndexRenamed, "index-renamed"},
	{IndexTypeChange, "index-typechange"},
	{WorktreeNew, "wt-new"},
	{WorktreeModified, "wt-modified"},
	{WorktreeDeleted, "wt-deleted"},
	{WorktreeTypeChange, "wt-typechange"},
	{WorktreeRenamed, "wt-renamed"},
	{Conflicted, "conflicted"},
}

func (f StatusFlag) String() string {
	if f == 0 {
		return "current"
	}
	var parts []string
	for _, n := range flagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// flagsOf converts a go-git file status into a StatusFlag.
func flagsOf(fs *gitlib.FileStatus) StatusFlag {
	if fs == nil {
		return 0
	}
	if fs.Staging == gitlib.UpdatedButUnmerged || fs.Worktree == gitlib.UpdatedButUnmerged {
		return Conflicted
	}
	// go-git reports untracked paths with both codes set to Untracked.
	if fs.Staging == gitlib.Untracked || fs.Worktree == gitlib.Untracked {
		return WorktreeNew
	}

	var f StatusFlag
	switch fs.Staging {
	case gitlib.Added, gitlib.Copied:
		f |= IndexNew
	case gitlib.Modified:
		f |= IndexModified
	case gitlib.Deleted:
		f |= IndexDeleted
	case gitlib.Renamed:
		f |= IndexRenamed
	}
	switch fs.Worktree {
	case gitlib.Modified:
		f |= WorktreeModified
	case gitlib.Deleted:
		f |= WorktreeDeleted
	case gitlib.Renamed:
		f |= WorktreeRenamed
	}
	return f
}
