// Package commands implements the CLI commands for anyctl.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/mwatts/anyctl/internal/app"
	"github.com/mwatts/anyctl/internal/build"
	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/mwatts/anyctl/internal/resolve"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for anyctl.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ResolveSpaces(ctx context.Context, names []string) ([]domain.Ref, error)
	ResolveTypes(ctx context.Context, names []string, space app.SpaceOptions) ([]domain.Ref, error)
	Spaces(ctx context.Context) ([]domain.Entity, error)
	Types(ctx context.Context, space app.SpaceOptions) ([]domain.Entity, error)
	CacheStats() resolve.CacheStats
	ClearCache()
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "anyctl",
		Short:         "Address your workspace by name instead of identifier",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newSpaceCmd())
	rootCmd.AddCommand(c.newTypeCmd())
	rootCmd.AddCommand(c.newCacheCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
