package usecase

import (
	"context"
	"log/slog"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ListModules is the use case for listing the registry with each entry's
// currently-resolvable result ids.
type ListModules struct {
	config   *config.RuntimeConfig
	repo     RegistryRepository
	resolver *ModuleResolver
	log      *slog.Logger
}

// NewListModules creates a new ListModules use case
func NewListModules(cfg *config.RuntimeConfig, repo RegistryRepository, resolver *ModuleResolver, log *slog.Logger) *ListModules {
	return &ListModules{
		config:   cfg,
		repo:     repo,
		resolver: resolver,
		log:      log,
	}
}

// Run lists registered modules in insertion order. Resolution failures are
// deliberately swallowed per entry: a broken or not-yet-written module shows
// up with an empty result set rather than aborting the listing. Registries
// legitimately carry placeholder entries whose files don't build yet.
func (uc *ListModules) Run(ctx context.Context) (*ModuleListResult, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNoActiveNetwork
	}
	chainID := uc.config.Network.ChainID

	registry, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ModuleListEntry, 0, registry.Len())
	for _, desc := range registry.Contents {
		entry := ModuleListEntry{Descriptor: desc, ResultIDs: []string{}}

		mod, err := uc.resolver.Resolve(ctx, desc, chainID)
		if err != nil {
			uc.log.Debug("module not resolvable, listing with empty results", "module", desc.Path, "err", err)
		} else {
			entry.ResultIDs = mod.ResultIDs()
		}

		entries = append(entries, entry)
	}

	return &ModuleListResult{Entries: entries}, nil
}
