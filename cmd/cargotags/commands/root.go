// Package commands implements the CLI commands for cargotags.
package commands

import (
	"context"
	"io"

	"github.com/cargotags/cargotags/internal/app"
	"github.com/cargotags/cargotags/internal/build"
	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cargotags.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cargotags (vi|emacs)",
		Short:         "Create and maintain tags for a cargo project and its dependencies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     []string{string(domain.KindVi), string(domain.KindEmacs)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Run(cmd.Context(), args[0])
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the writer for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
