package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdraw/pkg/blueprints"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built-in blueprints",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("Blueprint", "Title", "Dir", "Nodes", "Edges", "Clusters")
			for _, b := range blueprints.All() {
				d, err := b.Build()
				if err != nil {
					return fmt.Errorf("blueprint %s: %w", b.Name, err)
				}
				st := d.Stats()
				t.Row(b.Name, b.Title, string(d.Direction()),
					strconv.Itoa(st.Nodes), strconv.Itoa(st.Edges), strconv.Itoa(st.Clusters))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, t.Render())
			printNextStep(w, "Render one", "archdraw render <blueprint>")
			return nil
		},
	}
}
