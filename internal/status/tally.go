package status

import "github.com/wasabi0522/zprs/internal/git"

// Tally counts status entries per category. An entry that is both staged and
// modified again in the working tree counts in both.
type Tally struct {
	Staged     int `json:"staged"`
	Unstaged   int `json:"unstaged"`
	Conflicted int `json:"conflicted"`
	Untracked  int `json:"untracked"`
}

// TallyOf classifies every entry of a status scan.
func TallyOf(entries []git.FileStatus) Tally {
	var t Tally
	for _, e := range entries {
		if e.Flags.Intersects(git.StagedFlags) {
			t.Staged++
		}
		if e.Flags.Intersects(git.UnstagedFlags) {
			t.Unstaged++
		}
		if e.Flags.Intersects(git.ConflictFlags) {
			t.Conflicted++
		}
		if e.Flags.Intersects(git.UntrackedFlags) {
			t.Untracked++
		}
	}
	return t
}

// Clean reports whether nothing is staged, modified, conflicted or untracked.
func (t Tally) Clean() bool {
	return t == Tally{}
}
