package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/cli/render"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NewContractsCmd creates the contracts command group
func NewContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Inspect deployed contracts",
		Long:  "Read contract ids, addresses and interfaces from a deployment's journal.",
	}

	cmd.AddCommand(newContractsListCmd())
	cmd.AddCommand(newContractsShowCmd())

	return cmd
}

func newContractsListCmd() *cobra.Command {
	var deploymentID string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a deployment's contract ids and addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListContracts.Run(cmd.Context(), usecase.ListContractsParams{
				DeploymentID: deploymentID,
			})
			if err != nil {
				return err
			}

			renderer := render.NewContractsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&deploymentID, "deployment-id", "", "Deployment id (defaults to chain-<chainid>)")

	return cmd
}

func newContractsShowCmd() *cobra.Command {
	var deploymentID string

	cmd := &cobra.Command{
		Use:   "show <future-id>",
		Short: "Resolve a deployed contract's address and interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveContract.Run(cmd.Context(), usecase.ResolveContractParams{
				DeploymentID: deploymentID,
				FutureID:     args[0],
			})
			if err != nil {
				return err
			}

			renderer := render.NewContractHandleRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&deploymentID, "deployment-id", "", "Deployment id (defaults to chain-<chainid>)")

	return cmd
}
