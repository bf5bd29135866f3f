package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:     "remove <module-path>",
		Aliases: []string{"rm"},
		Short:   "Unregister a deployment module",
		Long: `Remove a module from the registry. The remaining modules keep their
order. The module file itself is left untouched and need not exist anymore.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveModule.Run(cmd.Context(), usecase.RemoveModuleParams{
				Path:     args[0],
				External: external,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed module %s\n",
				color.GreenString("✓"), result.Descriptor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&external, "external", false, "Treat the path as an external package-style module")

	return cmd
}
