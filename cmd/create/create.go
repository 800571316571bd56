package create

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jjreview/jr/internal/common"
	"github.com/jjreview/jr/internal/ui"
)

type Command struct {
	Revision string
	Clients  *common.Clients
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a PR for a change",
		Long: `Create a pull request for a change in the stack.

A commit carrying the change's snapshot is built on the base branch tip and
pushed to the change's PR branch, then a draft PR is opened into the base
branch. The change's jj description becomes the PR title and body.

Example:
  jr create
  jr create -r xyz`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Clients, err = common.InitClients(cobraCmd.Context())
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	command.Flags().StringVarP(&c.Revision, "revision", "r", "@", "Revision to create a PR for")

	parent.AddCommand(command)
}

func (c *Command) Run(ctx context.Context) error {
	url, err := c.Clients.Stack.Create(ctx, c.Revision)
	if err != nil {
		return err
	}
	ui.Successf("Created PR: %s", url)
	return nil
}
