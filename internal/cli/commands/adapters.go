package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snowshift-labs/snowshift/pkg/adapter"
)

// NewAdaptersCommand creates the adapters command.
func NewAdaptersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List available database adapters",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := GetConfig(cmd.Context())
			for _, name := range adapter.ListAdapters() {
				marker := "  "
				if cfg.Connection != nil && cfg.Connection.Type == name {
					marker = "* "
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
			}
		},
	}
}
