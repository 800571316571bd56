package stack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jjreview/jr/internal/model"
)

type MockVCSClient struct {
	mock.Mock
}

// GetChange implements VCSClient.
func (m *MockVCSClient) GetChange(ctx context.Context, rev string) (model.Change, error) {
	args := m.Called(rev)
	return args.Get(0).(model.Change), args.Error(1)
}

// GetTrunk implements VCSClient.
func (m *MockVCSClient) GetTrunk(ctx context.Context) (model.Change, error) {
	args := m.Called()
	return args.Get(0).(model.Change), args.Error(1)
}

// GetStackAncestors implements VCSClient.
func (m *MockVCSClient) GetStackAncestors(ctx context.Context, rev string) ([]model.Change, error) {
	args := m.Called(rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Change), args.Error(1)
}

// GetStackHeads implements VCSClient.
func (m *MockVCSClient) GetStackHeads(ctx context.Context, rev string) ([]model.Change, error) {
	args := m.Called(rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Change), args.Error(1)
}

// IsAncestor implements VCSClient.
func (m *MockVCSClient) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	args := m.Called(ancestor, descendant)
	return args.Bool(0), args.Error(1)
}

type MockGitClient struct {
	mock.Mock
}

// GetTree implements GitClient.
func (m *MockGitClient) GetTree(ctx context.Context, commitID string) (string, error) {
	args := m.Called(commitID)
	return args.String(0), args.Error(1)
}

// GetBranchTip implements GitClient.
func (m *MockGitClient) GetBranchTip(ctx context.Context, branch string) (string, error) {
	args := m.Called(branch)
	return args.String(0), args.Error(1)
}

// CommitTree implements GitClient.
func (m *MockGitClient) CommitTree(ctx context.Context, tree string, parents []string, message string) (string, error) {
	args := m.Called(tree, parents, message)
	return args.String(0), args.Error(1)
}

// PushCommitToBranch implements GitClient.
func (m *MockGitClient) PushCommitToBranch(ctx context.Context, commitID, branch string) error {
	args := m.Called(commitID, branch)
	return args.Error(0)
}

// IsAncestor implements GitClient.
func (m *MockGitClient) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	args := m.Called(ancestor, descendant)
	return args.Bool(0), args.Error(1)
}

// GetCommitDiff implements GitClient.
func (m *MockGitClient) GetCommitDiff(ctx context.Context, commitID string) (string, error) {
	args := m.Called(commitID)
	return args.String(0), args.Error(1)
}

// GetRemoteBranches implements GitClient.
func (m *MockGitClient) GetRemoteBranches(ctx context.Context, commitID string) ([]string, error) {
	args := m.Called(commitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// FindBranchesWithPrefix implements GitClient.
func (m *MockGitClient) FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockGithubClient struct {
	mock.Mock
}

// FindBranchesWithPrefix implements GithubClient.
func (m *MockGithubClient) FindBranchesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// PRIsOpen implements GithubClient.
func (m *MockGithubClient) PRIsOpen(ctx context.Context, branch string) (bool, error) {
	args := m.Called(branch)
	return args.Bool(0), args.Error(1)
}

// PRURL implements GithubClient.
func (m *MockGithubClient) PRURL(ctx context.Context, branch string) (string, error) {
	args := m.Called(branch)
	return args.String(0), args.Error(1)
}

// PRCreate implements GithubClient.
func (m *MockGithubClient) PRCreate(ctx context.Context, head, base, title, body string) (string, error) {
	args := m.Called(head, base, title, body)
	return args.String(0), args.Error(1)
}

// PREditBase implements GithubClient.
func (m *MockGithubClient) PREditBase(ctx context.Context, branch, base string) (string, error) {
	args := m.Called(branch, base)
	return args.String(0), args.Error(1)
}

// PRDiff implements GithubClient.
func (m *MockGithubClient) PRDiff(ctx context.Context, branch string) (string, error) {
	args := m.Called(branch)
	return args.String(0), args.Error(1)
}
