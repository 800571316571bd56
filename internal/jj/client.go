package jj

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jjreview/jr/internal/model"
)

// changeTemplate renders one change per call with the description last so
// that pipes or newlines inside the description cannot corrupt the fields
// before it.
const changeTemplate = `commit_id ++ "|" ++ change_id ++ "|" ++ parents.map(|p| p.change_id()).join(",") ++ "|" ++ description`

// idPairTemplate renders one "change_id|commit_id" line per change.
const idPairTemplate = `change_id ++ "|" ++ commit_id ++ "\n"`

// Client runs jj commands against the enclosing workspace.
type Client struct {
	root string
}

// NewClient creates a jj client rooted at the current workspace.
func NewClient() (*Client, error) {
	out, err := exec.Command("jj", "workspace", "root").Output()
	if err != nil {
		return nil, fmt.Errorf("not in a jj workspace: %w", err)
	}
	return &Client{root: strings.TrimSpace(string(out))}, nil
}

// GetChange returns the full change for a revision.
func (c *Client) GetChange(ctx context.Context, rev string) (model.Change, error) {
	out, err := c.log(ctx, rev, changeTemplate)
	if err != nil {
		return model.Change{}, err
	}

	parts := strings.SplitN(strings.TrimSpace(out), "|", 4)
	if len(parts) != 4 {
		return model.Change{}, fmt.Errorf("unexpected jj log output for %s: expected 4 fields, got %d", rev, len(parts))
	}

	var parents []string
	if parts[2] != "" {
		parents = strings.Split(parts[2], ",")
	}

	return model.Change{
		CommitID:        parts[0],
		ChangeID:        parts[1],
		ParentChangeIDs: parents,
		Message:         model.ParseMessage(parts[3]),
	}, nil
}

// GetTrunk returns the change at trunk(), jj's auto-detected mainline.
func (c *Client) GetTrunk(ctx context.Context) (model.Change, error) {
	return c.GetChange(ctx, "trunk()")
}

// GetStackAncestors returns all changes from rev back to (but excluding)
// trunk, ordered tip to base. Only IDs are populated; use GetChange for the
// full change.
func (c *Client) GetStackAncestors(ctx context.Context, rev string) ([]model.Change, error) {
	revset := fmt.Sprintf("ancestors(%s) ~ ancestors(trunk())", rev)
	return c.logIDPairs(ctx, revset)
}

// GetStackHeads returns the head changes reachable from rev that are not
// already ancestors of trunk. Zero heads means rev sits on trunk; more than
// one means the user is inside multiple stacks.
func (c *Client) GetStackHeads(ctx context.Context, rev string) ([]model.Change, error) {
	revset := fmt.Sprintf("heads(descendants(%s) ~ ancestors(trunk()))", rev)
	return c.logIDPairs(ctx, revset)
}

// IsAncestor reports whether ancestor is reachable from descendant. Both
// arguments may be change IDs, commit IDs, or revsets.
func (c *Client) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	revset := fmt.Sprintf("ancestors(%s) & %s", descendant, ancestor)
	out, err := c.log(ctx, revset, "commit_id")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (c *Client) logIDPairs(ctx context.Context, revset string) ([]model.Change, error) {
	out, err := c.log(ctx, revset, idPairTemplate)
	if err != nil {
		return nil, err
	}

	var changes []model.Change
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unexpected jj log line: %q", line)
		}
		changes = append(changes, model.Change{ChangeID: parts[0], CommitID: parts[1]})
	}
	return changes, nil
}

func (c *Client) log(ctx context.Context, revset, template string) (string, error) {
	cmd := exec.CommandContext(ctx, "jj", "log", "-r", revset, "--no-graph", "-T", template)
	cmd.Dir = c.root
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("jj log -r %q failed: %s", revset, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to execute jj: %w", err)
	}
	return string(out), nil
}
