package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjreview/jr/internal/model"
)

// infoWith builds a CommitInfo whose BaseStatus evaluates to the given status.
func infoWith(status model.SyncStatus) *model.CommitInfo {
	info := &model.CommitInfo{
		CommitDiff:     "diff",
		PRTip:          "prtip",
		PRDiff:         "diff",
		HasPRDiff:      true,
		BaseTip:        "basetip",
		PRContainsBase: true,
	}
	switch status {
	case model.StatusUnknown:
		info.PRTip = ""
	case model.StatusChanged:
		info.PRDiff = "other diff"
	case model.StatusRestack:
		info.PRContainsBase = false
	}
	return info
}

func TestComputeStatuses(t *testing.T) {
	tests := []struct {
		name string
		base []model.SyncStatus // tip first, matching stack order
		want []model.SyncStatus
	}{
		{
			name: "Empty",
			base: nil,
			want: []model.SyncStatus{},
		},
		{
			name: "AllSynced",
			base: []model.SyncStatus{model.StatusSynced, model.StatusSynced, model.StatusSynced},
			want: []model.SyncStatus{model.StatusSynced, model.StatusSynced, model.StatusSynced},
		},
		{
			name: "ChangedAncestorForcesRestackAbove",
			base: []model.SyncStatus{model.StatusSynced, model.StatusSynced, model.StatusChanged},
			want: []model.SyncStatus{model.StatusRestack, model.StatusRestack, model.StatusChanged},
		},
		{
			name: "UnknownAncestorForcesRestackAbove",
			base: []model.SyncStatus{model.StatusSynced, model.StatusUnknown, model.StatusSynced},
			want: []model.SyncStatus{model.StatusRestack, model.StatusUnknown, model.StatusSynced},
		},
		{
			name: "RestackPropagates",
			base: []model.SyncStatus{model.StatusSynced, model.StatusRestack, model.StatusSynced},
			want: []model.SyncStatus{model.StatusRestack, model.StatusRestack, model.StatusSynced},
		},
		{
			name: "NonSyncedStatusesKeepTheirOwnVerdict",
			base: []model.SyncStatus{model.StatusChanged, model.StatusUnknown, model.StatusChanged},
			want: []model.SyncStatus{model.StatusChanged, model.StatusUnknown, model.StatusChanged},
		},
		{
			name: "ChangedTipDoesNotAffectAncestors",
			base: []model.SyncStatus{model.StatusChanged, model.StatusSynced, model.StatusSynced},
			want: []model.SyncStatus{model.StatusChanged, model.StatusSynced, model.StatusSynced},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infos := make([]*model.CommitInfo, len(tt.base))
			for i, s := range tt.base {
				infos[i] = infoWith(s)
			}
			assert.Equal(t, tt.want, ComputeStatuses(infos))
		})
	}
}
