package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [protocol-address]",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a protocol",
		Long: `Remove a protocol address from the registry. Only the registry owner may
remove protocols. Removing an untracked protocol is a successful no-op.

Without an argument, an interactive picker over the tracked protocols opens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var protocol *common.Address
			if len(args) == 1 {
				addr, err := domain.ParseAddress(args[0])
				if err != nil {
					return fmt.Errorf("protocol address %q: %w", args[0], err)
				}
				protocol = &addr
			}

			result, err := app.RemoveProtocol.Run(cmd.Context(), usecase.RemoveProtocolParams{
				Protocol: protocol,
			})
			if err != nil {
				return err
			}

			if result.Removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Now tracking %d protocol(s)\n", result.Count)
			}
			return nil
		},
	}
}
