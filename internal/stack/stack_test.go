package stack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjreview/jr/internal/model"
	"github.com/jjreview/jr/internal/testutil"
)

func TestBuildStack(t *testing.T) {
	ctx := context.Background()

	t.Run("LinearChain", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(3)
		f.stubChain("@", trunk, changes)

		st, err := f.c.BuildStack(ctx, "@")
		require.NoError(t, err)
		assert.Equal(t, trunk, st.Trunk)
		require.Len(t, st.Changes, 3)
		assert.Equal(t, changes, st.Changes)
	})

	t.Run("EmptyOnTrunk", func(t *testing.T) {
		f := newFixture()
		trunk, _ := newTestChain(0)
		f.stubChain("@", trunk, nil)

		st, err := f.c.BuildStack(ctx, "@")
		require.NoError(t, err)
		assert.Empty(t, st.Changes)
	})

	t.Run("MergeRejected", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		changes[0].ParentChangeIDs = append(changes[0].ParentChangeIDs, testutil.ChangeID())
		f.stubChain("@", trunk, changes)

		_, err := f.c.BuildStack(ctx, "@")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "merges are not supported")
	})

	t.Run("BrokenChainLink", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(2)
		changes[0].ParentChangeIDs = []string{testutil.ChangeID()}
		f.stubChain("@", trunk, changes)

		_, err := f.c.BuildStack(ctx, "@")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "branch topology invalid")
	})

	t.Run("RootedBelowTrunkTip", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		oldTrunk := testutil.ChangeID()
		changes[0].ParentChangeIDs = []string{oldTrunk}
		f.stubChain("@", trunk, changes)
		f.jj.On("IsAncestor", oldTrunk, trunk.ChangeID).Return(true, nil)

		st, err := f.c.BuildStack(ctx, "@")
		require.NoError(t, err)
		assert.Len(t, st.Changes, 1)
	})

	t.Run("NotStackedOnTrunk", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		stray := testutil.ChangeID()
		changes[0].ParentChangeIDs = []string{stray}
		f.stubChain("@", trunk, changes)
		f.jj.On("IsAncestor", stray, trunk.ChangeID).Return(false, nil)

		_, err := f.c.BuildStack(ctx, "@")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not stacked on trunk")
	})
}

func TestStackForStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("NoHeads", func(t *testing.T) {
		f := newFixture()
		trunk, _ := newTestChain(0)
		f.jj.On("GetStackHeads", "@").Return([]model.Change{}, nil)
		f.jj.On("GetTrunk").Return(trunk, nil)

		st, err := f.c.StackForStatus(ctx)
		require.NoError(t, err)
		assert.Empty(t, st.Changes)
		assert.Equal(t, trunk, st.Trunk)
	})

	t.Run("SingleHead", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(2)
		f.jj.On("GetStackHeads", "@").Return([]model.Change{changes[0]}, nil)
		f.stubChain(changes[0].CommitID, trunk, changes)

		st, err := f.c.StackForStatus(ctx)
		require.NoError(t, err)
		assert.Len(t, st.Changes, 2)
	})

	t.Run("MultipleHeadsFallBackToWorkingCopy", func(t *testing.T) {
		f := newFixture()
		trunk, changes := newTestChain(1)
		other := newTestChange(trunk.ChangeID, "other head")
		f.jj.On("GetStackHeads", "@").Return([]model.Change{changes[0], other}, nil)
		f.stubChain("@", trunk, changes)

		st, err := f.c.StackForStatus(ctx)
		require.NoError(t, err)
		assert.Len(t, st.Changes, 1)
	})
}
