package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ModuleResolver turns a registered descriptor into a concrete, loaded module
// for a target chain, preferring a chain-qualified variant over the base
// path. The variant step is what lets a registry swap in mocks locally and
// references to existing deployments on public chains without the caller
// knowing which variants exist.
type ModuleResolver struct {
	config *config.RuntimeConfig
	loader ModuleLoader
	log    *slog.Logger
}

// NewModuleResolver creates a new ModuleResolver
func NewModuleResolver(cfg *config.RuntimeConfig, loader ModuleLoader, log *slog.Logger) *ModuleResolver {
	return &ModuleResolver{
		config: cfg,
		loader: loader,
		log:    log,
	}
}

// Resolve loads the chain-qualified variant of the descriptor, falling back
// to the base path. Any variant failure (missing file, parse error) triggers
// the fallback; only a double failure is an error.
func (r *ModuleResolver) Resolve(ctx context.Context, desc domain.ModuleDescriptor, chainID uint64) (*domain.LoadedModule, error) {
	variant := domain.ChainVariantPath(desc.Path, chainID)

	mod, variantErr := r.loader.Load(ctx, r.loadRef(desc, variant))
	if variantErr == nil {
		r.log.Debug("resolved chain-qualified variant", "module", desc.Path, "variant", variant, "chain", chainID)
		return mod, nil
	}

	mod, baseErr := r.loader.Load(ctx, r.loadRef(desc, desc.Path))
	if baseErr == nil {
		return mod, nil
	}

	return nil, &domain.ModuleImportError{
		Descriptor: desc,
		ChainID:    chainID,
		VariantErr: variantErr,
		BaseErr:    baseErr,
	}
}

// loadRef maps a manifest path to a loader reference: project-owned paths
// resolve absolute against the project root, external paths pass as-is.
func (r *ModuleResolver) loadRef(desc domain.ModuleDescriptor, path string) string {
	if desc.External {
		return path
	}
	return filepath.Join(r.config.ProjectRoot, path)
}
