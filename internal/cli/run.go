package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/cli/render"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var (
		reset          bool
		deploymentID   string
		parametersFile string
		strategy       string
		defaultSender  string
		verify         bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Deploy every registered module in order",
		Long: `Replay the registry against the deployment engine, strictly in
registration order. Each module's chain-qualified variant is preferred over
its base file, so local chains can deploy mocks where public chains reference
live contracts.

The engine's journal makes runs idempotent: contracts that are already
journaled for the deployment are skipped, and a run aborted by a failure can
simply be re-run to resume at the point of failure.`,
		Example: `  # Deploy everything to the default network
  hde run

  # Wipe the journal first, with module parameters
  hde run --reset --parameters params.yaml

  # Target a named deployment on sepolia
  hde run -n sepolia --deployment-id canary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunModules.Run(cmd.Context(), usecase.RunModulesParams{
				Reset: reset,
				Args: domain.DeployArgs{
					DeploymentID:   deploymentID,
					ParametersFile: parametersFile,
					Strategy:       strategy,
					DefaultSender:  defaultSender,
					Verify:         verify,
				},
			})
			if err != nil {
				return err
			}

			renderer := render.NewRunRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Wipe the deployment journal before running")
	cmd.Flags().StringVar(&deploymentID, "deployment-id", "", "Deployment id (defaults to chain-<chainid>)")
	cmd.Flags().StringVar(&parametersFile, "parameters", "", "YAML parameters file, keyed by module name")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Deployment strategy (default: basic)")
	cmd.Flags().StringVar(&defaultSender, "default-sender", "", "Named sender whose key signs the deployments")
	cmd.Flags().BoolVar(&verify, "verify", false, "Request verification of deployed contracts")

	return cmd
}
