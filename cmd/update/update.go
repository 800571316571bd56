package update

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jjreview/jr/internal/common"
	"github.com/jjreview/jr/internal/ui"
)

type Command struct {
	Revision string
	Message  string
	Clients  *common.Clients
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "update",
		Short: "Push local edits to an existing PR",
		Long: `Push a change's edited content to its existing pull request.

The new commit sits on the old PR tip; when the base branch has also moved,
the base tip is spliced in as a second parent and the PR is re-targeted onto
the current base.

Example:
  jr update -m "address review feedback"`,
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

	command.Flags().StringVarP(&c.Revision, "revision", "r", "@", "Revision to update")
	command.Flags().StringVarP(&c.Message, "message", "m", "", "Commit message describing the update")
	command.MarkFlagRequired("message")

	parent.AddCommand(command)
}

func (c *Command) Run(ctx context.Context) error {
	url, err := c.Clients.Stack.Update(ctx, c.Revision, c.Message)
	if err != nil {
		return err
	}
	ui.Successf("Updated PR: %s", url)
	return nil
}
