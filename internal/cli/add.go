package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <protocol-address>",
		Short: "Track a protocol in the registry",
		Long: `Add a protocol address to the registry. Only the registry owner may add
protocols. Adding an already-tracked protocol is a successful no-op.`,
		Example: `  # Track a protocol
  yctl add 0x5FbDB2315678afecb367f032d93F642f64180aa3

  # Act as an explicit caller
  yctl add 0x5FbDB2315678afecb367f032d93F642f64180aa3 --as 0xf39F...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			protocol, err := domain.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("protocol address %q: %w", args[0], err)
			}

			result, err := app.AddProtocol.Run(cmd.Context(), usecase.AddProtocolParams{
				Protocol: protocol,
			})
			if err != nil {
				return err
			}

			if result.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "Now tracking %d protocol(s)\n", result.Count)
			}
			return nil
		},
	}
}
