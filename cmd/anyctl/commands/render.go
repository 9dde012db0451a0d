package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/mwatts/anyctl/internal/ui/style"
)

// renderEntityTable writes a two-column NAME / ID listing. Column header
// styling degrades to plain text when colors are disabled.
func renderEntityTable(w io.Writer, entities []domain.Entity) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\n",
		style.Header.Render("NAME"),
		style.Header.Render("ID"),
	); err != nil {
		return err
	}
	for _, e := range entities {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.Name, style.Muted.Render(e.ID)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
