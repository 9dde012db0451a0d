package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwatts/anyctl/internal/app"
	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/spf13/cobra"
)

// spaceTokenPrefix marks an already-resolved space identifier, as emitted
// by "resolve space". Anything else passed to --space is treated as a name.
const spaceTokenPrefix = "space/"

// spaceOptions turns the --space flag value into resolution sources: a
// token carries the identifier straight through, a bare value is a name
// that still needs resolving.
func spaceOptions(flag string) app.SpaceOptions {
	if id, ok := strings.CutPrefix(flag, spaceTokenPrefix); ok {
		return app.SpaceOptions{ID: id}
	}
	return app.SpaceOptions{Name: flag}
}

// refJSON is the machine-readable shape of a resolved reference.
type refJSON struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	SpaceID string `json:"space_id,omitempty"`
}

func writeRefs(cmd *cobra.Command, names []string, refs []domain.Ref, tokenPrefix string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	if !asJSON {
		for _, ref := range refs {
			_, _ = fmt.Fprintf(out, "%s%s\n", tokenPrefix, ref.ID())
		}
		return nil
	}

	records := make([]refJSON, len(refs))
	for i, ref := range refs {
		records[i] = refJSON{Name: names[i], ID: ref.ID()}
		if spaceID, ok := ref.SpaceID(); ok {
			records[i].SpaceID = spaceID
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve names to identifiers",
	}
	cmd.AddCommand(c.newResolveSpaceCmd())
	cmd.AddCommand(c.newResolveTypeCmd())
	return cmd
}

func (c *CLI) newResolveSpaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space [names...]",
		Short: "Resolve space names to identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := c.app.ResolveSpaces(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeRefs(cmd, args, refs, spaceTokenPrefix)
		},
	}
	cmd.Flags().Bool("json", false, "Emit resolved references as JSON")
	return cmd
}

func (c *CLI) newResolveTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type [names...]",
		Short: "Resolve type names to identifiers within a space",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, _ := cmd.Flags().GetString("space")

			refs, err := c.app.ResolveTypes(cmd.Context(), args, spaceOptions(space))
			if err != nil {
				return err
			}
			return writeRefs(cmd, args, refs, "type/")
		},
	}
	cmd.Flags().StringP("space", "s", "", "Space to resolve within: a name or a space/<id> token")
	cmd.Flags().Bool("json", false, "Emit resolved references as JSON")
	return cmd
}
