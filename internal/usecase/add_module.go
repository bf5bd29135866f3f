package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// AddModuleParams contains parameters for registering a module
type AddModuleParams struct {
	Path     string
	External bool
}

// AddModuleResult contains the registered descriptor
type AddModuleResult struct {
	Descriptor domain.ModuleDescriptor
}

// AddModule is the use case for registering a deployment module
type AddModule struct {
	config *config.RuntimeConfig
	repo   RegistryRepository
	loader ModuleLoader
}

// NewAddModule creates a new AddModule use case
func NewAddModule(cfg *config.RuntimeConfig, repo RegistryRepository, loader ModuleLoader) *AddModule {
	return &AddModule{
		config: cfg,
		repo:   repo,
		loader: loader,
	}
}

// Run validates the module path, proves it imports, and appends it to the
// manifest. Validation and import failures happen before any persistence
// change.
func (uc *AddModule) Run(ctx context.Context, params AddModuleParams) (*AddModuleResult, error) {
	desc, err := uc.validate(ctx, params)
	if err != nil {
		return nil, err
	}

	registry, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := registry.Append(desc); err != nil {
		return nil, fmt.Errorf("module %s: %w", desc, err)
	}

	if err := uc.repo.Save(ctx, registry); err != nil {
		return nil, err
	}

	return &AddModuleResult{Descriptor: desc}, nil
}

func (uc *AddModule) validate(ctx context.Context, params AddModuleParams) (domain.ModuleDescriptor, error) {
	if params.External {
		if filepath.IsAbs(params.Path) {
			return domain.ModuleDescriptor{}, fmt.Errorf("%w: %s", domain.ErrAbsoluteExternalPath, params.Path)
		}
		if _, err := uc.loader.Load(ctx, params.Path); err != nil {
			return domain.ModuleDescriptor{}, fmt.Errorf("cannot import external module %s: %w", params.Path, err)
		}
		return domain.ModuleDescriptor{Path: params.Path, External: true}, nil
	}

	rel, owned := domain.NormalizePath(params.Path, uc.config.ProjectRoot)
	if !owned {
		return domain.ModuleDescriptor{}, fmt.Errorf("%w: %s", domain.ErrNotInProject, params.Path)
	}
	if _, err := uc.loader.Load(ctx, filepath.Join(uc.config.ProjectRoot, rel)); err != nil {
		return domain.ModuleDescriptor{}, fmt.Errorf("cannot import project module %s: %w", rel, err)
	}
	return domain.ModuleDescriptor{Path: rel}, nil
}
