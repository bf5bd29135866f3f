package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:   "add <module-path>",
		Short: "Register a deployment module",
		Long: `Register a deployment module at the end of the registry.

Project modules are given as file paths (absolute or relative) under the
project root and are stored root-relative. External modules are given as
package-style paths resolved against the module search roots.`,
		Example: `  # Register a project module
  hde add modules/lock.yaml

  # Register an external module
  hde add openzeppelin/governor --external`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AddModule.Run(cmd.Context(), usecase.AddModuleParams{
				Path:     args[0],
				External: external,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Registered module %s\n",
				color.GreenString("✓"), result.Descriptor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&external, "external", false, "Treat the path as an external package-style module")

	return cmd
}
