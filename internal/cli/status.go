package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <protocol-address>",
		Short: "Check whether a protocol is tracked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			protocol, err := domain.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("protocol address %q: %w", args[0], err)
			}

			result, err := app.CheckProtocol.Run(cmd.Context(), usecase.CheckProtocolParams{
				Protocol: protocol,
			})
			if err != nil {
				return err
			}

			if result.Tracked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is tracked\n",
					color.GreenString("✓"), result.Protocol.Hex())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is not tracked\n",
					color.RedString("✗"), result.Protocol.Hex())
			}
			return nil
		},
	}
}
