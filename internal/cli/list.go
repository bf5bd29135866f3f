package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered modules and their result ids",
		Long: `List the registry in deployment order. Each entry shows the contract
ids its module declares for the active network; modules that don't currently
resolve are listed with no results rather than failing the listing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListModules.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewModulesRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
