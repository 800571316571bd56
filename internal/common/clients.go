package common

import (
	"context"
	"fmt"

	"github.com/jjreview/jr/internal/config"
	"github.com/jjreview/jr/internal/gh"
	"github.com/jjreview/jr/internal/git"
	"github.com/jjreview/jr/internal/jj"
	"github.com/jjreview/jr/internal/stack"
	"github.com/jjreview/jr/internal/ui"
)

// Clients bundles everything a command needs: the three collaborator clients,
// the stack engine wired on top of them, and the loaded configuration.
type Clients struct {
	JJ     *jj.Client
	Git    *git.Client
	GH     *gh.Client
	Stack  *stack.Client
	Config *config.Config
}

// InitClients initializes all clients for a command invocation. The returned
// error is suitable for use in PreRunE hooks.
func InitClients(ctx context.Context) (*Clients, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, fmt.Errorf("git client initialization failed: %w", err)
	}

	jjClient, err := jj.NewClient()
	if err != nil {
		ui.Error("Not in a jj workspace")
		return nil, fmt.Errorf("jj client initialization failed: %w", err)
	}

	cfg, err := config.Load(gitClient.GitRoot())
	if err != nil {
		return nil, err
	}

	ghClient, err := gh.NewClient(ctx, cfg.GitHub.Token)
	if err != nil {
		return nil, fmt.Errorf("github client initialization failed: %w", err)
	}

	return &Clients{
		JJ:     jjClient,
		Git:    gitClient,
		GH:     ghClient,
		Stack:  stack.NewClient(jjClient, gitClient, ghClient, cfg),
		Config: cfg,
	}, nil
}
