package usecase

import (
	"context"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// CheckModuleParams contains parameters for a membership check
type CheckModuleParams struct {
	Path     string
	External bool
}

// CheckModuleResult reports registry membership
type CheckModuleResult struct {
	Descriptor domain.ModuleDescriptor
	Registered bool
}

// CheckModule is the use case for testing registry membership. Only the
// persisted manifest is consulted; the module file need not be importable
// anymore.
type CheckModule struct {
	config *config.RuntimeConfig
	repo   RegistryRepository
}

// NewCheckModule creates a new CheckModule use case
func NewCheckModule(cfg *config.RuntimeConfig, repo RegistryRepository) *CheckModule {
	return &CheckModule{
		config: cfg,
		repo:   repo,
	}
}

// Run computes the identity key and checks the manifest. Never mutates.
func (uc *CheckModule) Run(ctx context.Context, params CheckModuleParams) (*CheckModuleResult, error) {
	desc := descriptorKey(uc.config, params.Path, params.External)

	registry, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &CheckModuleResult{
		Descriptor: desc,
		Registered: registry.Contains(desc),
	}, nil
}
