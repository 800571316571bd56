package restack

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
		Use:   "restack",
		Short: "Rebuild a PR on its moved base",
		Long: `Rebuild a change's PR branch on the current base tip without altering
its content. Only works when the change has no local edits relative to the
PR; use 'jr update' otherwise.

Example:
  jr restack
  jr restack -r xyz`,
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

	command.Flags().StringVarP(&c.Revision, "revision", "r", "@", "Revision to restack")

	parent.AddCommand(command)
}

func (c *Command) Run(ctx context.Context) error {
	url, err := c.Clients.Stack.Restack(ctx, c.Revision)
	if err != nil {
		return err
	}
	ui.Successf("Restacked PR: %s", url)
	return nil
}
