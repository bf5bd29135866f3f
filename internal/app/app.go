package app

import (
	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	AddModule       *usecase.AddModule
	RemoveModule    *usecase.RemoveModule
	CheckModule     *usecase.CheckModule
	ListModules     *usecase.ListModules
	RunModules      *usecase.RunModules
	ListContracts   *usecase.ListContracts
	ResolveContract *usecase.ResolveContract
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	addModule *usecase.AddModule,
	removeModule *usecase.RemoveModule,
	checkModule *usecase.CheckModule,
	listModules *usecase.ListModules,
	runModules *usecase.RunModules,
	listContracts *usecase.ListContracts,
	resolveContract *usecase.ResolveContract,
) (*App, error) {
	return &App{
		Config:          cfg,
		AddModule:       addModule,
		RemoveModule:    removeModule,
		CheckModule:     checkModule,
		ListModules:     listModules,
		RunModules:      runModules,
		ListContracts:   listContracts,
		ResolveContract: resolveContract,
	}, nil
}
