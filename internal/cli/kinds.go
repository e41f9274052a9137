package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdraw/pkg/diagram/nodes"
)

func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [provider]",
		Short: "List node kinds usable in definition files",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nodes.Providers(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := ""
			if len(args) == 1 {
				provider = strings.ToLower(args[0])
			}

			t := newTable("Kind", "Shape", "Icon")
			n := 0
			for _, k := range nodes.All() {
				if provider != "" && k.Provider != provider {
					continue
				}
				t.Row(k.Key(), k.Shape, k.IconPath())
				n++
			}
			if n == 0 {
				return fmt.Errorf("no kinds for provider %q (available: %s)", provider, strings.Join(nodes.Providers(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
