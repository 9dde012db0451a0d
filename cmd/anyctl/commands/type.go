package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Work with object types",
	}
	cmd.AddCommand(c.newTypeListCmd())
	return cmd
}

func (c *CLI) newTypeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the object types of a space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			space, _ := cmd.Flags().GetString("space")

			entities, err := c.app.Types(cmd.Context(), spaceOptions(space))
			if err != nil {
				return err
			}
			return renderEntityTable(cmd.OutOrStdout(), entities)
		},
	}
	cmd.Flags().StringP("space", "s", "", "Space to list within: a name or a space/<id> token")
	return cmd
}
