package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a registry in the current directory",
		Long: `Create the project file and data directory and set the initial registry
owner. Initialization is one-time; the owner must not be the zero address.`,
		Example: `  yctl init --owner 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			initialOwner, err := domain.ParseAddress(owner)
			if err != nil {
				return fmt.Errorf("owner address %q: %w", owner, err)
			}

			result, err := app.InitProject.Run(cmd.Context(), usecase.InitProjectParams{
				InitialOwner: initialOwner,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registry initialized at %s\n", result.ProjectRoot)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Initial registry owner address")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
