package status

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jjreview/jr/internal/common"
	"github.com/jjreview/jr/internal/stack"
	"github.com/jjreview/jr/internal/ui"
)

type Command struct {
	Clients *common.Clients
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "status",
		Short: "Show sync status of the current stack",
		Long: `Show one line per change in the current stack, newest first.

Each line carries a status glyph:
  ✓  in sync with its PR
  ✗  local content differs from the PR
  ↻  needs restacking on a moved base
  ?  no usable remote state`,
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

	parent.AddCommand(command)
}

func (c *Command) Run(ctx context.Context) error {
	st, err := c.Clients.Stack.StackForStatus(ctx)
	if err != nil {
		return err
	}
	if len(st.Changes) == 0 {
		ui.Info("Working copy is on trunk; no stack to show")
		return nil
	}

	infos, err := c.Clients.Stack.EnrichStack(ctx, st, false)
	if err != nil {
		return err
	}
	statuses := stack.ComputeStatuses(infos)

	current, err := c.Clients.JJ.GetChange(ctx, "@")
	if err != nil {
		return err
	}

	for i, info := range infos {
		isCurrent := info.Change.ChangeID == current.ChangeID
		ui.Print(ui.RenderStatusLine(statuses[i], info.Change.ShortID(), info.Change.Message.Title, isCurrent))

		if url, err := c.Clients.GH.PRURL(ctx, info.PRBranch); err == nil && url != "" {
			ui.Print(ui.RenderPRURL(url))
		}
	}
	return nil
}
