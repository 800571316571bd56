package gh

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// ErrNoPR is returned when a branch has no pull request. Callers that treat
// absence as a recorded fact rather than a failure check for it with
// errors.Is.
var ErrNoPR = errors.New("no pull request for branch")

// Client provides GitHub pull-request operations through the REST API.
type Client struct {
	api     *github.Client
	limiter *rate.Limiter
	owner   string
	repo    string
}

// NewClient creates a GitHub client authenticated with token. The owner and
// repository are detected from the origin remote URL.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("no GitHub token configured: run 'jr init' or set JR_GITHUB_TOKEN")
	}

	owner, repo, err := detectRepo()
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		api: github.NewClient(oauth2.NewClient(ctx, ts)),
		// Stay well under GitHub's secondary rate limits even when a long
		// stack fans out diff fetches concurrently.
		limiter: rate.NewLimiter(rate.Limit(8), 8),
		owner:   owner,
		repo:    repo,
	}, nil
}

// FindBranchesWithPrefix returns the remote branches on GitHub whose name
// starts with prefix.
func (c *Client) FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var branches []string
	opts := &github.ReferenceListOptions{
		Ref:         "heads/" + prefix,
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		refs, resp, err := c.api.Git.ListMatchingRefs(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list branches with prefix %s: %w", prefix, err)
		}
		for _, ref := range refs {
			branches = append(branches, strings.TrimPrefix(ref.GetRef(), "refs/heads/"))
		}
		if resp.NextPage == 0 {
			return branches, nil
		}
		opts.Page = resp.NextPage
	}
}

// PRIsOpen reports whether an open pull request exists for the branch.
func (c *Client) PRIsOpen(ctx context.Context, branch string) (bool, error) {
	pr, err := c.prForBranch(ctx, branch)
	if errors.Is(err, ErrNoPR) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return pr.GetState() == "open", nil
}

// PRURL returns the pull request URL for a branch, or "" if no PR exists.
func (c *Client) PRURL(ctx context.Context, branch string) (string, error) {
	pr, err := c.prForBranch(ctx, branch)
	if errors.Is(err, ErrNoPR) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pr.GetHTMLURL(), nil
}

// PRCreate opens a new draft pull request from head into base and returns
// its URL.
func (c *Client) PRCreate(ctx context.Context, head, base, title, body string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	pr, _, err := c.api.PullRequests.Create(ctx, c.owner, c.repo, &github.NewPullRequest{
		Title: github.String(title),
		Body:  github.String(body),
		Head:  github.String(head),
		Base:  github.String(base),
		Draft: github.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create PR for %s: %w", head, err)
	}
	return pr.GetHTMLURL(), nil
}

// PREditBase re-targets the branch's pull request onto a new base branch and
// returns the PR URL.
func (c *Client) PREditBase(ctx context.Context, branch, base string) (string, error) {
	pr, err := c.prForBranch(ctx, branch)
	if err != nil {
		return "", err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	updated, _, err := c.api.PullRequests.Edit(ctx, c.owner, c.repo, pr.GetNumber(), &github.PullRequest{
		Base: &github.PullRequestBranch{Ref: github.String(base)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to edit PR #%d: %w", pr.GetNumber(), err)
	}
	return updated.GetHTMLURL(), nil
}

// PRDiff returns the pull request's cumulative diff (base to head) for a
// branch. Returns a wrapped ErrNoPR when the branch has no PR.
func (c *Client) PRDiff(ctx context.Context, branch string) (string, error) {
	pr, err := c.prForBranch(ctx, branch)
	if err != nil {
		return "", err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	diff, _, err := c.api.PullRequests.GetRaw(ctx, c.owner, c.repo, pr.GetNumber(), github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("failed to fetch diff for PR #%d: %w", pr.GetNumber(), err)
	}
	return diff, nil
}

// prForBranch finds the most recent pull request whose head is branch.
func (c *Client) prForBranch(ctx context.Context, branch string) (*github.PullRequest, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	prs, _, err := c.api.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		State:       "all",
		Head:        c.owner + ":" + branch,
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs for %s: %w", branch, err)
	}
	if len(prs) == 0 {
		return nil, fmt.Errorf("branch %s: %w", branch, ErrNoPR)
	}
	return prs[0], nil
}

// detectRepo parses owner and repository from the origin remote URL.
func detectRepo() (string, string, error) {
	out, err := exec.Command("git", "config", "--get", "remote.origin.url").Output()
	if err != nil {
		return "", "", fmt.Errorf("no git remote 'origin' configured: %w", err)
	}
	return parseRepoURL(strings.TrimSpace(string(out)))
}

// parseRepoURL handles both SSH (git@github.com:owner/repo.git) and HTTPS
// (https://github.com/owner/repo.git) remote URLs.
func parseRepoURL(repoURL string) (string, string, error) {
	repoURL = strings.TrimSuffix(repoURL, ".git")

	if rest, ok := strings.CutPrefix(repoURL, "git@github.com:"); ok {
		parts := strings.Split(rest, "/")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL: %s", repoURL)
		}
		return parts[0], parts[1], nil
	}

	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote URL %s: %w", repoURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("remote URL is not a GitHub repository: %s", repoURL)
	}
	return parts[0], parts[1], nil
}
