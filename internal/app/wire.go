//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters"
	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/logging"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewModuleResolver,
		usecase.NewAddModule,
		usecase.NewRemoveModule,
		usecase.NewCheckModule,
		usecase.NewListModules,
		usecase.NewRunModules,
		usecase.NewListContracts,
		usecase.NewResolveContract,

		// App
		NewApp,
	)
	return nil, nil
}
