package initcmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjreview/jr/internal/config"
	"github.com/jjreview/jr/internal/git"
	"github.com/jjreview/jr/internal/ui"
)

type Command struct {
	Git *git.Client
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "init",
		Short: "Configure jr for this repository",
		Long: `Interactively configure jr for the current repository.

Prompts for the GitHub branch prefix and token and lets you pick the trunk
branch from the repository's remote branches. Settings are written to
.git/jr.toml; the token can also be supplied via JR_GITHUB_TOKEN.`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, err = git.NewClient()
			if err != nil {
				ui.Error("Not in a git repository")
			}
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(command)
}

func (c *Command) Run(ctx context.Context) error {
	gitRoot := c.Git.GitRoot()
	cfg := config.LoadOrDefault(gitRoot)

	cfg.GitHub.BranchPrefix = ui.Prompt("GitHub branch prefix", cfg.GitHub.BranchPrefix)

	if token := os.Getenv("JR_GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	} else {
		cfg.GitHub.Token = ui.Prompt("GitHub token", cfg.GitHub.Token)
	}

	branches, err := c.Git.FindBranchesWithPrefix(ctx, "")
	if err != nil {
		return err
	}
	if len(branches) > 0 {
		ui.Info("Select the trunk branch")
		if selected, err := ui.SelectBranch(branches); err != nil {
			return err
		} else if selected != "" {
			cfg.GitHub.TrunkBranch = selected
		}
	}

	if err := cfg.Save(gitRoot); err != nil {
		return err
	}
	ui.Successf("Configuration saved to %s", config.Path(gitRoot))
	return nil
}
