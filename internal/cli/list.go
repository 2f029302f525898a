package cli

import (
	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracked protocols",
		Long: `List all protocol addresses in the registry, in current registry order,
together with the protocol count and the registry owner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProtocols.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewProtocolsRenderer(cmd.OutOrStdout())
			return renderer.RenderProtocolList(result)
		},
	}
}
