package stack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjreview/jr/internal/model"
)

func TestEnrichStack(t *testing.T) {
	ctx := context.Background()

	t.Run("TrunkWithoutRemoteBranch", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		f.git.On("GetRemoteBranches", trunk.CommitID).Return([]string{}, nil)

		_, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "push trunk to the remote first")
	})

	t.Run("AbsenceRecordedNotFailed", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		f.stubTrunkBranch(trunk, "maintip")
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a"}, "maintip")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		require.Len(t, infos, 1)

		info := infos[0]
		assert.Empty(t, info.PRTip)
		assert.False(t, info.HasPRDiff)
		assert.Equal(t, "main", info.BaseBranch)
		assert.Equal(t, "maintip", info.BaseTip)
		assert.False(t, info.PRContainsBase)
		assert.Equal(t, model.StatusUnknown, info.BaseStatus())
	})

	t.Run("MergedChangeRejected", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		f.stubTrunkBranch(trunk, "maintip")
		f.git.On("GetCommitDiff", changes[0].CommitID).Return("diff a", nil)
		f.git.On("IsAncestor", changes[0].CommitID, trunk.CommitID).Return(true, nil)

		_, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already merged")
	})

	t.Run("BaseBranchFollowsParent", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(2)
		parentBranch := model.BranchName(changes[1].ChangeID, testPrefix)
		f.stubTrunkBranch(trunk, "maintip")
		f.stubEnrich(changes[1], trunk, remoteState{commitDiff: "diff base", prTip: "tip1", prDiff: "diff base", containsBase: true}, "maintip")
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff top", prTip: "tip2", prDiff: "diff top", containsBase: true}, "tip1")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, parentBranch, infos[0].BaseBranch)
		assert.Equal(t, "tip1", infos[0].BaseTip)
		assert.Equal(t, "main", infos[1].BaseBranch)
	})

	t.Run("StrictFailsOnDiffFetchError", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		fetchErr := errors.New("502 from api")
		f.stubTrunkBranch(trunk, "maintip")
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a", prTip: "tip1", prDiffErr: fetchErr, containsBase: true}, "maintip")

		_, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, true)
		require.ErrorIs(t, err, fetchErr)
	})

	t.Run("LenientDegradesDiffFetchError", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		f.stubTrunkBranch(trunk, "maintip")
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a", prTip: "tip1", prDiffErr: errors.New("502 from api"), containsBase: true}, "maintip")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		assert.False(t, infos[0].HasPRDiff)
		assert.Equal(t, model.StatusUnknown, infos[0].BaseStatus())
	})

	t.Run("ConfiguredTrunkBranchPreferred", func(t *testing.T) {
		f := newFixture()
		f.cfg.GitHub.TrunkBranch = "master"
		trunk, changes := newTestChain(1)
		f.git.On("GetRemoteBranches", trunk.CommitID).Return([]string{"main", "master"}, nil)
		f.git.On("GetBranchTip", "master").Return("mastertip", nil)
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a"}, "")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		assert.Equal(t, "master", infos[0].BaseBranch)
		assert.Equal(t, "mastertip", infos[0].BaseTip)
	})

	t.Run("UnconfiguredTrunkBranchFallsBackToFirst", func(t *testing.T) {
		f := newFixture()
		f.cfg.GitHub.TrunkBranch = "master"
		trunk, changes := newTestChain(1)
		f.git.On("GetRemoteBranches", trunk.CommitID).Return([]string{"main"}, nil)
		f.git.On("GetBranchTip", "main").Return("maintip", nil)
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a"}, "")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		assert.Equal(t, "main", infos[0].BaseBranch)
	})

	t.Run("PRContainsBaseComputed", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		f.stubTrunkBranch(trunk, "maintip")
		f.stubEnrich(changes[0], trunk, remoteState{commitDiff: "diff a", prTip: "tip1", prDiff: "diff a", containsBase: true}, "maintip")

		infos, err := f.c.EnrichStack(ctx, &Stack{Changes: changes, Trunk: trunk}, false)
		require.NoError(t, err)
		assert.True(t, infos[0].PRContainsBase)
		assert.Equal(t, model.StatusSynced, infos[0].BaseStatus())
	})
}
