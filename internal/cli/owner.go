package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewOwnerCmd creates the owner command group
func NewOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage registry ownership",
		Long:  "Show, transfer, or renounce ownership of the registry.",
	}

	cmd.AddCommand(newOwnerShowCmd())
	cmd.AddCommand(newOwnerTransferCmd())
	cmd.AddCommand(newOwnerRenounceCmd())

	return cmd
}

func newOwnerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current registry owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageOwnership.Run(cmd.Context(), usecase.ManageOwnershipParams{
				Operation: "show",
			})
			if err != nil {
				return err
			}

			if domain.IsZeroAddress(result.Owner) {
				fmt.Fprintln(cmd.OutOrStdout(), "Ownership has been renounced")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Owner: %s\n", result.Owner.Hex())
			return nil
		},
	}
}

func newOwnerTransferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <new-owner-address>",
		Short: "Transfer registry ownership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			newOwner, err := domain.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("new owner address %q: %w", args[0], err)
			}

			result, err := app.ManageOwnership.Run(cmd.Context(), usecase.ManageOwnershipParams{
				Operation: "transfer",
				NewOwner:  newOwner,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ownership transferred from %s to %s\n",
				result.PreviousOwner.Hex(), result.Owner.Hex())
			return nil
		},
	}
}

func newOwnerRenounceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renounce",
		Short: "Renounce registry ownership permanently",
		Long: `Renounce ownership of the registry. After renouncing, no caller passes the
ownership gate and the protocol set can never be mutated again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			_, err = app.ManageOwnership.Run(cmd.Context(), usecase.ManageOwnershipParams{
				Operation: "renounce",
			})
			return err
		},
	}
}
