package stack

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jjreview/jr/internal/model"
)

// Stack is a linear chain of changes ordered tip to base: Changes[i+1] is the
// single declared parent of Changes[i], and the last change's parent is trunk
// or an ancestor of trunk.
type Stack struct {
	Changes []model.Change
	Trunk   model.Change
}

// BuildStack returns the chain of changes from rev back to (but excluding)
// trunk, fully populated and validated. Diamond topologies and broken
// parent links are rejected.
func (c *Client) BuildStack(ctx context.Context, rev string) (*Stack, error) {
	trunk, err := c.jj.GetTrunk(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := c.jj.GetStackAncestors(ctx, rev)
	if err != nil {
		return nil, err
	}

	// The ancestor listing carries IDs only; fetch the full changes
	// concurrently since each lookup is independent and read-only.
	changes := make([]model.Change, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			change, err := c.jj.GetChange(gctx, id.ChangeID)
			if err != nil {
				return err
			}
			changes[i] = change
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &Stack{Changes: changes, Trunk: trunk}
	if err := c.validate(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// StackForStatus builds the stack to report on for the working-copy revision.
// With exactly one stack head the chain is built from that head; with more
// than one the head is ambiguous, so the chain from the working copy is shown
// instead of guessing.
func (c *Client) StackForStatus(ctx context.Context) (*Stack, error) {
	heads, err := c.jj.GetStackHeads(ctx, "@")
	if err != nil {
		return nil, err
	}

	switch len(heads) {
	case 0:
		trunk, err := c.jj.GetTrunk(ctx)
		if err != nil {
			return nil, err
		}
		return &Stack{Trunk: trunk}, nil
	case 1:
		return c.BuildStack(ctx, heads[0].CommitID)
	default:
		log.Warn().Int("heads", len(heads)).Msg("multiple stack heads detected, showing stack from working copy to trunk")
		return c.BuildStack(ctx, "@")
	}
}

// validate checks the chain invariant: every change has exactly one parent,
// each non-last change's parent is the next entry, and the last change's
// parent is trunk or an ancestor of trunk.
func (c *Client) validate(ctx context.Context, st *Stack) error {
	for i, change := range st.Changes {
		if len(change.ParentChangeIDs) != 1 {
			return fmt.Errorf("branch topology invalid: change %s has %d parents; stacks with merges are not supported",
				change.ShortID(), len(change.ParentChangeIDs))
		}

		parent := change.ParentChangeIDs[0]
		if i < len(st.Changes)-1 {
			if parent != st.Changes[i+1].ChangeID {
				return fmt.Errorf("branch topology invalid: change %s is not a child of %s",
					change.ShortID(), st.Changes[i+1].ShortID())
			}
			continue
		}

		if parent == st.Trunk.ChangeID {
			continue
		}
		// The stack may be rooted below the trunk tip when trunk has moved
		// ahead locally.
		ok, err := c.jj.IsAncestor(ctx, parent, st.Trunk.ChangeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("branch topology invalid: change %s is not stacked on trunk", change.ShortID())
		}
	}
	return nil
}

// parentInStack reports whether the change at index i has its parent inside
// the stack itself (as opposed to trunk).
func (st *Stack) parentInStack(i int) bool {
	if i >= len(st.Changes)-1 {
		return false
	}
	return slices.Contains(st.Changes[i].ParentChangeIDs, st.Changes[i+1].ChangeID)
}
