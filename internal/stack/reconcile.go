package stack

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jjreview/jr/internal/model"
)

// RestackMessage is the commit message carried by the two-parent commits
// that splice a moved base into a PR branch.
const RestackMessage = "Restack"

// Create opens a pull request for the change at rev: a single-parent commit
// carrying the change's snapshot is built on the base branch tip, pushed to
// the change's PR branch, and a PR is opened into the base branch. Returns
// the new PR's URL.
func (c *Client) Create(ctx context.Context, rev string) (string, error) {
	target, _, err := c.loadTarget(ctx, rev)
	if err != nil {
		return "", err
	}

	if target.Change.Message.Title == "" {
		return "", errors.New("change has an empty description: describe it with 'jj describe' before creating a PR")
	}

	tree, err := c.git.GetTree(ctx, target.Change.CommitID)
	if err != nil {
		return "", err
	}

	if target.PRTip != "" {
		existingTree, err := c.git.GetTree(ctx, target.PRTip)
		if err != nil {
			return "", err
		}
		if tree == existingTree {
			return "", fmt.Errorf("PR branch %s already exists and is up to date", target.PRBranch)
		}
		return "", fmt.Errorf("PR branch %s already exists with different content: use 'jr update' instead", target.PRBranch)
	}

	if target.BaseTip == "" {
		return "", fmt.Errorf("base branch %s does not exist", target.BaseBranch)
	}

	newCommit, err := c.git.CommitTree(ctx, tree, []string{target.BaseTip}, target.Change.FullMessage())
	if err != nil {
		return "", err
	}
	log.Debug().Str("commit", newCommit).Str("branch", target.PRBranch).Msg("created commit for new PR")

	if err := c.git.PushCommitToBranch(ctx, newCommit, target.PRBranch); err != nil {
		return "", err
	}

	return c.gh.PRCreate(ctx, target.PRBranch, target.BaseBranch, target.Change.Message.Title, target.Change.Message.Body)
}

// Update pushes the change's edited content to its existing PR. The new
// commit's parent is the old PR tip; when the base has also moved, the base
// tip is added as a second parent, splicing the new base in. The snapshot
// tree is authoritative because jj already resolved any conflicts locally.
// Returns the PR's URL.
func (c *Client) Update(ctx context.Context, rev, message string) (string, error) {
	target, _, err := c.loadTarget(ctx, rev)
	if err != nil {
		return "", err
	}

	if err := c.requireOpenPR(ctx, target); err != nil {
		return "", err
	}

	contentChanged := !target.ContentMatchesPR()
	baseMoved := !target.PRContainsBase
	if !contentChanged {
		if baseMoved {
			return "", errors.New("content is unchanged, only the base moved: use 'jr restack' instead")
		}
		return "", errors.New("no changes detected: PR is already up to date")
	}

	if target.BaseTip == "" {
		return "", fmt.Errorf("base branch %s does not exist", target.BaseBranch)
	}

	parents := []string{target.PRTip}
	if baseMoved {
		parents = append(parents, target.BaseTip)
	}
	return c.pushAndRetarget(ctx, target, parents, message)
}

// Restack rebuilds the change's PR branch on the current base tip without
// altering its content: a two-parent commit of the old PR tip and the moved
// base tip, carrying the change's snapshot tree. Returns the PR's URL.
func (c *Client) Restack(ctx context.Context, rev string) (string, error) {
	target, _, err := c.loadTarget(ctx, rev)
	if err != nil {
		return "", err
	}

	if err := c.requireOpenPR(ctx, target); err != nil {
		return "", err
	}

	if !target.ContentMatchesPR() {
		return "", errors.New("change has local edits: use 'jr update' instead")
	}
	if target.PRContainsBase {
		return "", errors.New("base hasn't changed: no need to restack")
	}
	if target.BaseTip == "" {
		return "", fmt.Errorf("base branch %s does not exist", target.BaseBranch)
	}

	return c.pushAndRetarget(ctx, target, []string{target.PRTip, target.BaseTip}, RestackMessage)
}

// loadTarget builds and enriches the stack at rev and applies the shared
// write gate: the target must not be merged to trunk (checked during
// enrichment) and every ancestor must be Synced. The returned target is the
// stack tip, i.e. the change at rev.
func (c *Client) loadTarget(ctx context.Context, rev string) (*model.CommitInfo, []*model.CommitInfo, error) {
	st, err := c.BuildStack(ctx, rev)
	if err != nil {
		return nil, nil, err
	}
	if len(st.Changes) == 0 {
		return nil, nil, errors.New("revision is on trunk: nothing to reconcile")
	}

	infos, err := c.EnrichStack(ctx, st, true)
	if err != nil {
		return nil, nil, err
	}

	if err := ancestorsSynced(infos, ComputeStatuses(infos)); err != nil {
		return nil, nil, err
	}
	return infos[0], infos, nil
}

// ancestorsSynced checks every ancestor of the target (everything after
// index 0), walking from the trunk end up so the bottom-most problem is the
// one reported, with its specific remedy.
func ancestorsSynced(infos []*model.CommitInfo, statuses []model.SyncStatus) error {
	for i := len(infos) - 1; i >= 1; i-- {
		switch statuses[i] {
		case model.StatusUnknown:
			return fmt.Errorf("no PR branch for parent change %s: create its PR first, bottom-up", infos[i].Change.ShortID())
		case model.StatusChanged:
			return fmt.Errorf("parent PR %s is out of date: update parent PRs first, bottom-up", infos[i].PRBranch)
		case model.StatusRestack:
			return fmt.Errorf("parent PR %s needs restacking: restack it first", infos[i].PRBranch)
		}
	}
	return nil
}

// requireOpenPR checks that the target has an existing, open PR.
func (c *Client) requireOpenPR(ctx context.Context, target *model.CommitInfo) error {
	if target.PRTip == "" {
		return fmt.Errorf("PR branch %s does not exist: use 'jr create' first", target.PRBranch)
	}
	open, err := c.gh.PRIsOpen(ctx, target.PRBranch)
	if err != nil {
		return err
	}
	if !open {
		return fmt.Errorf("no open PR for branch %s: it may have been closed or merged", target.PRBranch)
	}
	return nil
}

// pushAndRetarget builds the new commit, pushes it to the PR branch, and
// points the PR at the current base branch. At most one remote commit and
// one PR-metadata write happen per call; any failure aborts immediately.
func (c *Client) pushAndRetarget(ctx context.Context, target *model.CommitInfo, parents []string, message string) (string, error) {
	tree, err := c.git.GetTree(ctx, target.Change.CommitID)
	if err != nil {
		return "", err
	}

	newCommit, err := c.git.CommitTree(ctx, tree, parents, message)
	if err != nil {
		return "", err
	}
	log.Debug().Str("commit", newCommit).Str("branch", target.PRBranch).Int("parents", len(parents)).Msg("created reconciliation commit")

	if err := c.git.PushCommitToBranch(ctx, newCommit, target.PRBranch); err != nil {
		return "", err
	}

	return c.gh.PREditBase(ctx, target.PRBranch, target.BaseBranch)
}
