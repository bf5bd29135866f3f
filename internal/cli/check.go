package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:   "check <module-path>",
		Short: "Check whether a module is registered",
		Long: `Check registry membership for a module path. Only the persisted
manifest is consulted; the module file is not loaded. Exits non-zero when the
module is not registered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckModule.Run(cmd.Context(), usecase.CheckModuleParams{
				Path:     args[0],
				External: external,
			})
			if err != nil {
				return err
			}

			if !result.Registered {
				return fmt.Errorf("module %s is not registered", result.Descriptor)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Module %s is registered\n",
				color.GreenString("✓"), result.Descriptor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&external, "external", false, "Treat the path as an external package-style module")

	return cmd
}
