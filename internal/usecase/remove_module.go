package usecase

import (
	"context"
	"fmt"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// RemoveModuleParams contains parameters for unregistering a module
type RemoveModuleParams struct {
	Path     string
	External bool
}

// RemoveModuleResult contains the removed descriptor
type RemoveModuleResult struct {
	Descriptor domain.ModuleDescriptor
}

// RemoveModule is the use case for unregistering a deployment module. The
// identity key is computed exactly like AddModule computes it, but no import
// validation happens: a module may be removed after its file is gone.
type RemoveModule struct {
	config *config.RuntimeConfig
	repo   RegistryRepository
}

// NewRemoveModule creates a new RemoveModule use case
func NewRemoveModule(cfg *config.RuntimeConfig, repo RegistryRepository) *RemoveModule {
	return &RemoveModule{
		config: cfg,
		repo:   repo,
	}
}

// Run removes the matching descriptor and saves the manifest, preserving the
// order of all surviving entries.
func (uc *RemoveModule) Run(ctx context.Context, params RemoveModuleParams) (*RemoveModuleResult, error) {
	desc := descriptorKey(uc.config, params.Path, params.External)

	registry, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := registry.Remove(desc); err != nil {
		return nil, fmt.Errorf("module %s: %w", desc, err)
	}

	if err := uc.repo.Save(ctx, registry); err != nil {
		return nil, err
	}

	return &RemoveModuleResult{Descriptor: desc}, nil
}

// descriptorKey normalizes a user-supplied path into the manifest's identity
// key form: root-relative for project-owned modules, as given for external.
func descriptorKey(cfg *config.RuntimeConfig, path string, external bool) domain.ModuleDescriptor {
	if external {
		return domain.ModuleDescriptor{Path: path, External: true}
	}
	rel, _ := domain.NormalizePath(path, cfg.ProjectRoot)
	return domain.ModuleDescriptor{Path: rel}
}
