package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSpaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Work with spaces",
	}
	cmd.AddCommand(c.newSpaceListCmd())
	return cmd
}

func (c *CLI) newSpaceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all spaces visible to the configured key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entities, err := c.app.Spaces(cmd.Context())
			if err != nil {
				return err
			}
			return renderEntityTable(cmd.OutOrStdout(), entities)
		},
	}
}
