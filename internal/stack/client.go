package stack

import (
	"context"

	"github.com/jjreview/jr/internal/config"
	"github.com/jjreview/jr/internal/model"
)

// VCSClient defines the Jujutsu operations needed by the stack client.
type VCSClient interface {
	GetChange(ctx context.Context, rev string) (model.Change, error)
	GetTrunk(ctx context.Context) (model.Change, error)
	GetStackAncestors(ctx context.Context, rev string) ([]model.Change, error)
	GetStackHeads(ctx context.Context, rev string) ([]model.Change, error)
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
}

// GitClient defines the git object-store operations needed by the stack client.
type GitClient interface {
	GetTree(ctx context.Context, commitID string) (string, error)
	GetBranchTip(ctx context.Context, branch string) (string, error)
	CommitTree(ctx context.Context, tree string, parents []string, message string) (string, error)
	PushCommitToBranch(ctx context.Context, commitID, branch string) error
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
	GetCommitDiff(ctx context.Context, commitID string) (string, error)
	GetRemoteBranches(ctx context.Context, commitID string) ([]string, error)
	FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// GithubClient defines the pull-request host operations needed by the stack
// client.
type GithubClient interface {
	FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error)
	PRIsOpen(ctx context.Context, branch string) (bool, error)
	PRURL(ctx context.Context, branch string) (string, error)
	PRCreate(ctx context.Context, head, base, title, body string) (string, error)
	PREditBase(ctx context.Context, branch, base string) (string, error)
	PRDiff(ctx context.Context, branch string) (string, error)
}

// Client drives stack synchronization: it builds the chain of changes,
// enriches each with remote facts, computes sync statuses, and performs the
// create/update/restack reconciliation operations.
type Client struct {
	jj  VCSClient
	git GitClient
	gh  GithubClient
	cfg *config.Config
}

// NewClient creates a stack client. All collaborators are injected so tests
// can swap in doubles.
func NewClient(jj VCSClient, git GitClient, gh GithubClient, cfg *config.Config) *Client {
	return &Client{jj: jj, git: git, gh: gh, cfg: cfg}
}

func (c *Client) prefix() string {
	return c.cfg.GitHub.BranchPrefix
}
