package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/ledger-atlas/pkg/services/templates"
)

func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the prebuilt report templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tpl := range templates.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s %s\n", tpl.ID, tpl.DataSource, tpl.Title)
			}
			return nil
		},
	}
}
