package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrBranchNotFound is returned when a remote branch does not exist. Callers
// that treat absence as a recorded fact rather than a failure check for it
// with errors.Is.
var ErrBranchNotFound = errors.New("branch not found")

// Client provides git object-store operations for a repository. The stack
// engine never computes trees or diffs itself; it delegates to git and only
// compares the outputs.
type Client struct {
	gitRoot string
}

// NewClient creates a git client for the current directory.
func NewClient() (*Client, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(out))}, nil
}

// GitRoot returns the root directory of the git repository.
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// GetTree returns the tree hash for a commit.
func (c *Client) GetTree(ctx context.Context, commitID string) (string, error) {
	out, err := c.run(ctx, "rev-parse", commitID+"^{tree}")
	if err != nil {
		return "", fmt.Errorf("failed to get tree for %s: %w", commitID, err)
	}
	return strings.TrimSpace(out), nil
}

// GetBranchTip resolves the remote tip of a branch. Returns a wrapped
// ErrBranchNotFound when origin has no such branch.
func (c *Client) GetBranchTip(ctx context.Context, branch string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--verify", "--quiet", "origin/"+branch)
	cmd.Dir = c.gitRoot
	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("remote branch %s: %w", branch, ErrBranchNotFound)
		}
		return "", fmt.Errorf("failed to execute git: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CommitTree creates a commit object from a tree with the given parents and
// message, without touching the index or working tree. Two parents produce
// the merge commit used to splice a moved base into a PR branch.
func (c *Client) CommitTree(ctx context.Context, tree string, parents []string, message string) (string, error) {
	args := []string{"commit-tree", tree}
	for _, parent := range parents {
		args = append(args, "-p", parent)
	}
	args = append(args, "-m", message)

	out, err := c.run(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("failed to commit tree %s: %w", tree, err)
	}
	return strings.TrimSpace(out), nil
}

// PushCommitToBranch pushes a commit directly to a remote branch without
// creating a local branch.
func (c *Client) PushCommitToBranch(ctx context.Context, commitID, branch string) error {
	refspec := fmt.Sprintf("%s:refs/heads/%s", commitID, branch)
	if _, err := c.run(ctx, "push", "origin", refspec); err != nil {
		return fmt.Errorf("failed to push %s to branch %s: %w", commitID, branch, err)
	}
	return nil
}

// IsAncestor reports whether ancestor is reachable from descendant by
// following parent links.
func (c *Client) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "merge-base", "--is-ancestor", ancestor, descendant)
	cmd.Dir = c.gitRoot
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to check ancestry of %s..%s: %w", ancestor, descendant, err)
}

// GetCommitDiff returns the full textual diff introduced solely by a commit.
// The output is not trimmed: trailing newlines must survive so the diff
// compares equal to the GitHub API rendering of the same change.
func (c *Client) GetCommitDiff(ctx context.Context, commitID string) (string, error) {
	out, err := c.run(ctx, "diff-tree", "-p", "--no-commit-id", commitID)
	if err != nil {
		return "", fmt.Errorf("failed to get diff for %s: %w", commitID, err)
	}
	return out, nil
}

// GetRemoteBranches returns the remote branches currently pointing at a
// commit, with the "origin/" prefix stripped.
func (c *Client) GetRemoteBranches(ctx context.Context, commitID string) ([]string, error) {
	out, err := c.run(ctx, "branch", "-r", "--points-at", commitID, "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches at %s: %w", commitID, err)
	}
	return stripOrigin(out), nil
}

// FindBranchesWithPrefix returns remote branches whose name starts with
// prefix, with the "origin/" prefix stripped.
func (c *Client) FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	pattern := fmt.Sprintf("refs/remotes/origin/%s*", prefix)
	out, err := c.run(ctx, "for-each-ref", "--format=%(refname:short)", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches with prefix %s: %w", prefix, err)
	}
	return stripOrigin(out), nil
}

func stripOrigin(out string) []string {
	var branches []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if name, ok := strings.CutPrefix(line, "origin/"); ok {
			branches = append(branches, name)
		}
	}
	return branches
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.gitRoot
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to execute git: %w", err)
	}
	return string(out), nil
}
