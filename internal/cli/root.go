package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters/progress"
	"github.com/AlephVault/hardhat-deploy-everything/internal/app"
	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hde",
		Short: "Registry-driven deployment of contract modules",
		Long: `hde keeps an ordered registry of deployment modules and replays it
against a journaling deployment engine, substituting chain-specific module
variants (mocks locally, references to live contracts on public chains)
automatically.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v, newSink(v.GetBool("non_interactive")))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and interactive output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to target (from hde.toml, e.g. mainnet, sepolia, local)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "registry",
		Title: "Registry Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "deployment",
		Title: "Deployment Commands",
	})

	for _, cmd := range []*cobra.Command{NewAddCmd(), NewRemoveCmd(), NewCheckCmd(), NewListCmd()} {
		cmd.GroupID = "registry"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{NewRunCmd(), NewContractsCmd()} {
		cmd.GroupID = "deployment"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newSink picks the progress sink for this invocation
func newSink(nonInteractive bool) usecase.ProgressSink {
	if nonInteractive {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}
	return a, nil
}
