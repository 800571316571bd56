package stack

import (
	"github.com/jjreview/jr/internal/config"
	"github.com/jjreview/jr/internal/gh"
	"github.com/jjreview/jr/internal/git"
	"github.com/jjreview/jr/internal/model"
	"github.com/jjreview/jr/internal/testutil"
)

const testPrefix = "dev/"

// fixture bundles a stack client with its three mocked collaborators.
type fixture struct {
	jj  *MockVCSClient
	git *MockGitClient
	gh  *MockGithubClient
	cfg *config.Config
	c   *Client
}

func newFixture() *fixture {
	f := &fixture{
		jj:  &MockVCSClient{},
		git: &MockGitClient{},
		gh:  &MockGithubClient{},
		cfg: &config.Config{},
	}
	f.cfg.GitHub.BranchPrefix = testPrefix
	f.cfg.GitHub.TrunkBranch = "main"
	f.c = NewClient(f.jj, f.git, f.gh, f.cfg)
	return f
}

// newTestChange builds a change with random IDs, a single parent, and the
// given description title.
func newTestChange(parentChangeID, title string) model.Change {
	return model.Change{
		ChangeID:        testutil.ChangeID(),
		CommitID:        testutil.CommitID(),
		Message:         model.CommitMessage{Title: title},
		ParentChangeIDs: []string{parentChangeID},
	}
}

// newTestChain builds a trunk change plus n stacked changes ordered tip to
// base, each parented on the next.
func newTestChain(n int) (trunk model.Change, changes []model.Change) {
	trunk = model.Change{
		ChangeID: testutil.ChangeID(),
		CommitID: testutil.CommitID(),
		Message:  model.CommitMessage{Title: "trunk"},
	}
	changes = make([]model.Change, n)
	for i := n - 1; i >= 0; i-- {
		parent := trunk.ChangeID
		if i < n-1 {
			parent = changes[i+1].ChangeID
		}
		changes[i] = newTestChange(parent, "change")
	}
	return trunk, changes
}

// stubChain registers the jj calls BuildStack makes for a chain at rev.
func (f *fixture) stubChain(rev string, trunk model.Change, changes []model.Change) {
	f.jj.On("GetTrunk").Return(trunk, nil)
	f.jj.On("GetStackAncestors", rev).Return(changes, nil)
	for _, change := range changes {
		f.jj.On("GetChange", change.ChangeID).Return(change, nil)
	}
}

// remoteState describes the remote facts stubEnrich wires up for one change.
type remoteState struct {
	commitDiff   string
	prTip        string // empty means the PR branch does not exist
	prDiff       string
	prDiffErr    error // overrides prDiff when set
	containsBase bool
}

// stubEnrich registers the git and gh calls enrichment makes for one change.
// baseTip is the remote tip of the change's base branch.
func (f *fixture) stubEnrich(change model.Change, trunk model.Change, r remoteState, baseTip string) {
	branch := model.BranchName(change.ChangeID, testPrefix)

	f.git.On("GetCommitDiff", change.CommitID).Return(r.commitDiff, nil)
	f.git.On("IsAncestor", change.CommitID, trunk.CommitID).Return(false, nil)

	if r.prTip == "" {
		f.git.On("GetBranchTip", branch).Return("", git.ErrBranchNotFound)
	} else {
		f.git.On("GetBranchTip", branch).Return(r.prTip, nil)
	}

	switch {
	case r.prDiffErr != nil:
		f.gh.On("PRDiff", branch).Return("", r.prDiffErr)
	case r.prTip == "":
		f.gh.On("PRDiff", branch).Return("", gh.ErrNoPR)
	default:
		f.gh.On("PRDiff", branch).Return(r.prDiff, nil)
	}

	if r.prTip != "" && baseTip != "" {
		f.git.On("IsAncestor", baseTip, r.prTip).Return(r.containsBase, nil)
	}
}

// stubTrunkBranch registers trunk's remote branch resolution and its tip.
func (f *fixture) stubTrunkBranch(trunk model.Change, tip string) {
	f.git.On("GetRemoteBranches", trunk.CommitID).Return([]string{"main"}, nil)
	if tip == "" {
		f.git.On("GetBranchTip", "main").Return("", git.ErrBranchNotFound)
	} else {
		f.git.On("GetBranchTip", "main").Return(tip, nil)
	}
}
