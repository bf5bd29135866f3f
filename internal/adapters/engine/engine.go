package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// Broadcaster submits a contract-creation transaction and waits for it to be
// mined.
type Broadcaster interface {
	DeployContract(ctx context.Context, artifact *domain.Artifact, args []any, opts BroadcastOptions) (*DeployReceipt, error)
}

// BroadcastOptions carries per-run sender selection.
type BroadcastOptions struct {
	DefaultSender string
}

// DeployReceipt is the result of a mined contract creation.
type DeployReceipt struct {
	Address string
	TxHash  string
}

// Engine is the deployment/journaling engine. It is idempotent per
// future-within-deployment: futures whose address is already journaled are
// skipped, so a re-run after a partial failure resumes where it stopped.
type Engine struct {
	config      *config.RuntimeConfig
	journal     *Journal
	artifacts   *ArtifactRepository
	broadcaster Broadcaster
	log         *slog.Logger
}

// NewEngine creates a new deployment engine
func NewEngine(
	cfg *config.RuntimeConfig,
	journal *Journal,
	artifacts *ArtifactRepository,
	broadcaster Broadcaster,
	log *slog.Logger,
) *Engine {
	return &Engine{
		config:      cfg,
		journal:     journal,
		artifacts:   artifacts,
		broadcaster: broadcaster,
		log:         log,
	}
}

// ResetJournal wipes the persisted journal for a deployment.
func (e *Engine) ResetJournal(ctx context.Context, deploymentID string) error {
	e.log.Debug("resetting journal", "deployment", deploymentID)
	return e.journal.Reset(ctx, deploymentID)
}

// DeployModule deploys every contract a module plans, in declaration order,
// journaling each as it completes.
func (e *Engine) DeployModule(ctx context.Context, module *domain.LoadedModule, args domain.DeployArgs) (*domain.DeployOutcome, error) {
	if args.Strategy != "" && args.Strategy != "basic" {
		return nil, fmt.Errorf("unknown deployment strategy %s", args.Strategy)
	}

	params, err := e.moduleParameters(args.ParametersFile, module.Name)
	if err != nil {
		return nil, err
	}

	outcome := &domain.DeployOutcome{Module: module.Name}
	for _, plan := range module.Contracts {
		rec, err := e.deployFuture(ctx, module, plan, params, args)
		if err != nil {
			return nil, err
		}
		outcome.Records = append(outcome.Records, rec)
	}
	return outcome, nil
}

func (e *Engine) deployFuture(
	ctx context.Context,
	module *domain.LoadedModule,
	plan domain.ContractPlan,
	params map[string]any,
	args domain.DeployArgs,
) (domain.DeployRecord, error) {
	if addr, ok, err := e.journal.Lookup(ctx, args.DeploymentID, plan.ID); err != nil {
		return domain.DeployRecord{}, err
	} else if ok {
		e.log.Debug("future already deployed, skipping", "future", plan.ID, "address", addr)
		return domain.DeployRecord{
			FutureID:     plan.ID,
			ContractName: plan.Artifact,
			Address:      addr,
			Skipped:      true,
		}, nil
	}

	artifact, err := e.artifacts.Get(plan.Artifact)
	if err != nil {
		return domain.DeployRecord{}, fmt.Errorf("module %s, future %s: %w", module.Name, plan.ID, err)
	}

	resolvedArgs, err := resolveArgs(plan.Args, params)
	if err != nil {
		return domain.DeployRecord{}, fmt.Errorf("module %s, future %s: %w", module.Name, plan.ID, err)
	}

	receipt, err := e.broadcaster.DeployContract(ctx, artifact, resolvedArgs, BroadcastOptions{
		DefaultSender: args.DefaultSender,
	})
	if err != nil {
		return domain.DeployRecord{}, fmt.Errorf("failed to deploy %s (future %s): %w", plan.Artifact, plan.ID, err)
	}

	if args.Verify {
		// Verification services are network-specific; the journaled
		// record carries the intent for external tooling.
		e.log.Info("verification requested", "future", plan.ID, "address", receipt.Address)
	}

	rec := domain.DeployRecord{
		FutureID:     plan.ID,
		ContractName: artifact.ContractName,
		Address:      receipt.Address,
		TxHash:       receipt.TxHash,
		Verify:       args.Verify,
	}
	if err := e.journal.Record(ctx, args.DeploymentID, rec, artifact); err != nil {
		return domain.DeployRecord{}, err
	}

	e.log.Info("deployed contract", "module", module.Name, "future", plan.ID, "address", receipt.Address)
	return rec, nil
}

// moduleParameters loads the run's parameters file, if any, and returns the
// section for the given module name. The file is YAML keyed by module name.
func (e *Engine) moduleParameters(path, moduleName string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file %s: %w", path, err)
	}

	all := make(map[string]map[string]any)
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to parse parameters file %s: %w", path, err)
	}
	return all[moduleName], nil
}

// resolveArgs substitutes $param.<name> placeholders with values from the
// parameters file. Non-string args and plain strings pass through untouched.
func resolveArgs(args []any, params map[string]any) ([]any, error) {
	resolved := make([]any, len(args))
	for i, arg := range args {
		s, ok := arg.(string)
		if !ok || !strings.HasPrefix(s, "$param.") {
			resolved[i] = arg
			continue
		}

		name := strings.TrimPrefix(s, "$param.")
		value, ok := params[name]
		if !ok {
			return nil, fmt.Errorf("parameter %s has no value", name)
		}
		resolved[i] = value
	}
	return resolved, nil
}
