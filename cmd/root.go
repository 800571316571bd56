package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jjreview/jr/cmd/create"
	"github.com/jjreview/jr/cmd/initcmd"
	"github.com/jjreview/jr/cmd/restack"
	"github.com/jjreview/jr/cmd/status"
	"github.com/jjreview/jr/cmd/update"
	"github.com/jjreview/jr/internal/ui"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jr",
	Short: "Stacked PR tool for Jujutsu repositories",
	Long: `jr manages GitHub branches and pull requests for a stacked workflow
on top of Jujutsu (jj).

Each change in the stack gets a deterministically named remote branch and a
pull request based on its parent's branch, and jr keeps the whole chain in
sync as changes are edited or trunk moves.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	commands := []Command{
		&initcmd.Command{},
		&status.Command{},
		&create.Command{},
		&update.Command{},
		&restack.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
