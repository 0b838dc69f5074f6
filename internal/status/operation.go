package status

import (
	"github.com/go-git/go-billy/v5"
)

// Operation is a multi-step git command left in progress in the repository.
type Operation int

const (
	OpNone Operation = iota
	OpRebase
	OpApplyMailbox
	OpRebaseOrApply
	OpInteractiveRebase
	OpMergeRebase
	OpMerge
	OpBisect
	OpCherryPick
	OpCherryPickSequence
	OpCherryOrRevert
)

var operationLabels = [...]string{
	OpNone:               "none",
	OpRebase:             "rebase",
	OpApplyMailbox:       "am",
	OpRebaseOrApply:      "am/rebase",
	OpInteractiveRebase:  "rebase-i",
	OpMergeRebase:        "rebase-m",
	OpMerge:              "merge",
	OpBisect:             "bisect",
	OpCherryPick:         "cherry",
	OpCherryPickSequence: "cherry-seq",
	OpCherryOrRevert:     "cherry-or-revert",
}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationLabels) {
		return "unknown"
	}
	return operationLabels[o]
}

// MarshalText encodes the operation by its label.
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Markers are the filesystems probed for in-progress operations. WorkDir may be
// nil for bare repositories.
type Markers struct {
	GitDir  billy.Filesystem
	WorkDir billy.Filesystem
}

type marker struct {
	inWorkDir bool
	path      string
}

func gitMarker(p string) marker  { return marker{path: p} }
func workMarker(p string) marker { return marker{inWorkDir: true, path: p} }

type operationRule struct {
	all []marker
	op  Operation
}

// rebaseApplyRules covers the state directories shared by git am and the
// patch-based rebase backend.
func rebaseApplyRules(dir marker) []operationRule {
	child := func(name string) marker {
		return marker{inWorkDir: dir.inWorkDir, path: dir.path + "/" + name}
	}
	return []operationRule{
		{all: []marker{child("rebasing")}, op: OpRebase},
		{all: []marker{child("applying")}, op: OpApplyMailbox},
		{all: []marker{dir}, op: OpRebaseOrApply},
	}
}

// operationRules is evaluated in order; the first rule whose markers all exist
// wins.
var operationRules = func() []operationRule {
	var rules []operationRule
	rules = append(rules, rebaseApplyRules(gitMarker("rebase-apply"))...)
	rules = append(rules, rebaseApplyRules(gitMarker("rebase"))...)
	rules = append(rules, rebaseApplyRules(workMarker(".dotest"))...)
	rules = append(rules,
		operationRule{all: []marker{gitMarker("rebase-merge/interactive")}, op: OpInteractiveRebase},
		operationRule{all: []marker{gitMarker(".dotest-merge/interactive")}, op: OpInteractiveRebase},
		operationRule{all: []marker{gitMarker("rebase-merge")}, op: OpMergeRebase},
		operationRule{all: []marker{gitMarker(".dotest-merge")}, op: OpMergeRebase},
		operationRule{all: []marker{gitMarker("MERGE_HEAD")}, op: OpMerge},
		operationRule{all: []marker{gitMarker("BISECT_LOG")}, op: OpBisect},
		operationRule{all: []marker{gitMarker("CHERRY_PICK_HEAD"), gitMarker("sequencer")}, op: OpCherryPickSequence},
		operationRule{all: []marker{gitMarker("CHERRY_PICK_HEAD")}, op: OpCherryPick},
		operationRule{all: []marker{gitMarker("sequencer")}, op: OpCherryOrRevert},
	)
	return rules
}()

// ProbeOperation reports the in-progress operation indicated by marker files.
func ProbeOperation(m Markers) Operation {
	for _, rule := range operationRules {
		if m.hasAll(rule.all) {
			return rule.op
		}
	}
	return OpNone
}

func (m Markers) hasAll(markers []marker) bool {
	for _, mk := range markers {
		if !m.has(mk) {
			return false
		}
	}
	return true
}

func (m Markers) has(mk marker) bool {
	fs := m.GitDir
	if mk.inWorkDir {
		fs = m.WorkDir
	}
	if fs == nil {
		return false
	}
	_, err := fs.Stat(mk.path)
	return err == nil
}
