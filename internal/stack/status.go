package stack

import "github.com/jjreview/jr/internal/model"

// ComputeStatuses computes one sync status per enriched change. Input and
// output are ordered newest-first, matching the stack.
//
// The walk runs from the trunk end toward the tip carrying a monotonic
// "needs restack below" flag: once any ancestor is Unknown, Changed, or
// Restack, no descendant may report Synced, so individually-synced
// descendants are overridden to Restack. Each change is evaluated exactly
// once, indexed by stack position.
func ComputeStatuses(infos []*model.CommitInfo) []model.SyncStatus {
	statuses := make([]model.SyncStatus, len(infos))
	needsRestackBelow := false
	for i := len(infos) - 1; i >= 0; i-- {
		status := infos[i].BaseStatus()
		switch status {
		case model.StatusUnknown, model.StatusChanged, model.StatusRestack:
			needsRestackBelow = true
		case model.StatusSynced:
			if needsRestackBelow {
				status = model.StatusRestack
			}
		}
		statuses[i] = status
	}
	return statuses
}
