package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Populated via -ldflags at build time
var (
	version = "dev"
	commit  = "none"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yctl %s (%s)\n", version, commit)
		},
	}
}
