package model

// SyncStatus describes how a change relates to its remote pull request. It is
// recomputed on every invocation and never stored.
type SyncStatus int

const (
	// StatusUnknown means there is no usable remote state for the change:
	// the PR branch is missing, or branch/diff data could not be obtained.
	StatusUnknown SyncStatus = iota
	// StatusChanged means the local diff differs from the PR's cumulative
	// diff after canonicalization.
	StatusChanged
	// StatusRestack means the diffs match but the PR branch does not contain
	// the current base tip.
	StatusRestack
	// StatusSynced means the diffs match and the PR contains the current
	// base tip.
	StatusSynced
)

func (s SyncStatus) String() string {
	switch s {
	case StatusChanged:
		return "✗"
	case StatusRestack:
		return "↻"
	case StatusSynced:
		return "✓"
	default:
		return "?"
	}
}
