package stack

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jjreview/jr/internal/gh"
	"github.com/jjreview/jr/internal/git"
	"github.com/jjreview/jr/internal/model"
)

// EnrichStack gathers, for every change in the stack, the remote facts needed
// to judge its sync status. Enrichments are independent and read-only, so
// they fan out concurrently and join before any decision is made.
//
// A missing branch or missing PR is always recorded as absence, never an
// error. For failures beyond absence the policy differs by caller: in strict
// mode (the pre-write gate) a failed PR diff fetch fails the whole call; in
// lenient mode (status display) it degrades to absence so the change reports
// Unknown.
func (c *Client) EnrichStack(ctx context.Context, st *Stack, strict bool) ([]*model.CommitInfo, error) {
	trunkBranch, err := c.trunkBranch(ctx, st.Trunk)
	if err != nil {
		return nil, err
	}

	infos := make([]*model.CommitInfo, len(st.Changes))
	g, gctx := errgroup.WithContext(ctx)
	for i := range st.Changes {
		g.Go(func() error {
			info, err := c.enrich(gctx, st, i, trunkBranch, strict)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// trunkBranch resolves the remote branch name currently pointing at trunk's
// commit. Every stack needs one: the root change's PR merges into it. When
// several branches point at trunk, the configured trunk branch wins.
func (c *Client) trunkBranch(ctx context.Context, trunk model.Change) (string, error) {
	branches, err := c.git.GetRemoteBranches(ctx, trunk.CommitID)
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return "", errors.New("trunk has no remote branch: push trunk to the remote first")
	}
	if slices.Contains(branches, c.cfg.GitHub.TrunkBranch) {
		return c.cfg.GitHub.TrunkBranch, nil
	}
	return branches[0], nil
}

// enrich builds the CommitInfo for the change at stack index i.
func (c *Client) enrich(ctx context.Context, st *Stack, i int, trunkBranch string, strict bool) (*model.CommitInfo, error) {
	change := st.Changes[i]

	commitDiff, err := c.git.GetCommitDiff(ctx, change.CommitID)
	if err != nil {
		return nil, err
	}

	merged, err := c.git.IsAncestor(ctx, change.CommitID, st.Trunk.CommitID)
	if err != nil {
		return nil, err
	}
	if merged {
		return nil, fmt.Errorf("commit %s is an ancestor of trunk: this change is already merged", change.CommitID)
	}

	info := &model.CommitInfo{
		Change:     change,
		CommitDiff: commitDiff,
		PRBranch:   model.BranchName(change.ChangeID, c.prefix()),
	}

	tip, err := c.git.GetBranchTip(ctx, info.PRBranch)
	switch {
	case err == nil:
		info.PRTip = tip
	case !errors.Is(err, git.ErrBranchNotFound):
		return nil, err
	}

	diff, err := c.gh.PRDiff(ctx, info.PRBranch)
	switch {
	case err == nil:
		info.PRDiff = diff
		info.HasPRDiff = true
	case errors.Is(err, gh.ErrNoPR):
		// No PR yet; recorded as absence.
	case strict:
		return nil, err
	default:
		log.Debug().Err(err).Str("branch", info.PRBranch).Msg("PR diff unavailable, treating as unknown")
	}

	if st.parentInStack(i) {
		info.BaseBranch = model.BranchName(st.Changes[i+1].ChangeID, c.prefix())
	} else {
		info.BaseBranch = trunkBranch
	}

	baseTip, err := c.git.GetBranchTip(ctx, info.BaseBranch)
	switch {
	case err == nil:
		info.BaseTip = baseTip
	case !errors.Is(err, git.ErrBranchNotFound):
		return nil, err
	}

	if info.PRTip != "" && info.BaseTip != "" {
		contains, err := c.git.IsAncestor(ctx, info.BaseTip, info.PRTip)
		if err != nil {
			return nil, err
		}
		info.PRContainsBase = contains
	}

	return info, nil
}
