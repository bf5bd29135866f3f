package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// RunModulesParams contains parameters for replaying the registry
type RunModulesParams struct {
	// Reset wipes the journal for the addressed deployment before any
	// module executes.
	Reset bool

	// Args is passed through opaquely to the deployment engine. An empty
	// DeploymentID defaults to the active chain's canonical id.
	Args domain.DeployArgs
}

// RunModules is the use case driving a full registry replay against the
// deployment engine. Modules execute strictly sequentially in registry
// order: deployments on one chain share account and nonce state, so
// concurrent submission would race in ways the engine does not arbitrate.
type RunModules struct {
	config   *config.RuntimeConfig
	repo     RegistryRepository
	resolver *ModuleResolver
	engine   DeploymentEngine
	sink     ProgressSink
	log      *slog.Logger
}

// NewRunModules creates a new RunModules use case
func NewRunModules(
	cfg *config.RuntimeConfig,
	repo RegistryRepository,
	resolver *ModuleResolver,
	engine DeploymentEngine,
	sink ProgressSink,
	log *slog.Logger,
) *RunModules {
	return &RunModules{
		config:   cfg,
		repo:     repo,
		resolver: resolver,
		engine:   engine,
		sink:     sink,
		log:      log,
	}
}

// Run resolves every registered module up front (fail fast: an unresolvable
// module aborts the run before any deployment call), optionally resets the
// journal, then executes modules one at a time, awaiting full completion of
// each before the next. The first engine error aborts the remainder;
// already-journaled work stays journaled, so re-running resumes at the point
// of failure.
func (uc *RunModules) Run(ctx context.Context, params RunModulesParams) (*RunModulesResult, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNoActiveNetwork
	}
	chainID := uc.config.Network.ChainID

	registry, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	args := params.Args
	if args.DeploymentID == "" {
		args.DeploymentID = uc.config.Network.DeploymentID()
	}

	result := &RunModulesResult{
		DeploymentID: args.DeploymentID,
		Reset:        params.Reset,
	}

	if registry.Len() == 0 {
		uc.log.Debug("registry is empty, nothing to run")
		return result, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "resolving",
		Total:   registry.Len(),
		Message: "Resolving registered modules",
		Spinner: true,
	})

	modules := make([]*domain.LoadedModule, 0, registry.Len())
	for _, desc := range registry.Contents {
		mod, err := uc.resolver.Resolve(ctx, desc, chainID)
		if err != nil {
			return nil, err
		}
		modules = append(modules, mod)
	}

	if params.Reset {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "resetting", Message: "Resetting deployment journal", Spinner: true})
		if err := uc.engine.ResetJournal(ctx, args.DeploymentID); err != nil {
			return nil, fmt.Errorf("failed to reset journal %s: %w", args.DeploymentID, err)
		}
	}

	for i, mod := range modules {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "deploying",
			Current: i + 1,
			Total:   len(modules),
			Message: fmt.Sprintf("Deploying module %s", mod.Name),
			Spinner: true,
		})

		outcome, err := uc.engine.DeployModule(ctx, mod, args)
		if err != nil {
			return nil, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(modules),
		Total:   len(modules),
		Message: "All modules deployed",
	})

	return result, nil
}
