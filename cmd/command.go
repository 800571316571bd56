package cmd

import "github.com/spf13/cobra"

// Command is implemented by every jr subcommand package.
type Command interface {
	// Register wires the subcommand, flags included, into parent.
	Register(parent *cobra.Command)
}
