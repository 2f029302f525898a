package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/cli/render"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewYieldCmd creates the yield command
func NewYieldCmd() *cobra.Command {
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "yield <user-address>",
		Short: "Aggregate yield for a user across all tracked protocols",
		Long: `Sum the per-protocol yield attributable to a user over every protocol in
the registry. The sum is overflow-checked 256-bit arithmetic; an empty
registry yields zero.`,
		Example: `  # Total yield via the deterministic mock source
  yctl yield 0x70997970C51812dc3A010C7d01b50e0d17dc79C8

  # Query live protocol contracts instead
  yctl yield 0x7099...79C8 --rpc-url http://localhost:8545`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			user, err := domain.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("user address %q: %w", args[0], err)
			}

			result, err := app.CalculateYield.Run(cmd.Context(), usecase.CalculateYieldParams{
				User: user,
			})
			if err != nil {
				return err
			}

			renderer := render.NewYieldRenderer(cmd.OutOrStdout())
			return renderer.RenderYield(result, breakdown)
		},
	}

	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Show per-protocol yield breakdown")

	return cmd
}
