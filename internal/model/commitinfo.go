package model

import "github.com/jjreview/jr/internal/diffutil"

// CommitInfo is a Change enriched with every fact needed to judge whether it
// is in sync with its remote pull request. It is rebuilt on every invocation.
type CommitInfo struct {
	Change Change

	// CommitDiff is the diff introduced solely by this change's commit.
	CommitDiff string

	// PRBranch is the deterministic remote branch name for this change.
	PRBranch string
	// PRTip is the remote tip of PRBranch, empty if the branch does not exist.
	PRTip string
	// PRDiff is the pull request's cumulative diff. Only meaningful when
	// HasPRDiff is true.
	PRDiff    string
	HasPRDiff bool

	// BaseBranch is the remote branch this change's PR should merge into:
	// the parent change's PR branch, or trunk's remote branch for the root.
	BaseBranch string
	// BaseTip is the remote tip of BaseBranch, empty if it does not exist.
	BaseTip string

	// PRContainsBase reports whether BaseTip is an ancestor of PRTip. Always
	// false when either tip is missing.
	PRContainsBase bool
}

// BaseStatus evaluates the sync rule for this change alone, ignoring the
// state of its ancestors.
func (ci *CommitInfo) BaseStatus() SyncStatus {
	if ci.PRTip == "" {
		return StatusUnknown
	}
	if ci.BaseTip == "" {
		return StatusUnknown
	}
	if !ci.HasPRDiff {
		return StatusUnknown
	}
	if diffutil.Normalize(ci.CommitDiff) != diffutil.Normalize(ci.PRDiff) {
		return StatusChanged
	}
	if !ci.PRContainsBase {
		return StatusRestack
	}
	return StatusSynced
}

// ContentMatchesPR reports whether the local diff equals the PR's cumulative
// diff after canonicalization. False when no PR diff is available.
func (ci *CommitInfo) ContentMatchesPR() bool {
	if !ci.HasPRDiff {
		return false
	}
	return diffutil.Normalize(ci.CommitDiff) == diffutil.Normalize(ci.PRDiff)
}
