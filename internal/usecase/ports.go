package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// RegistryRepository persists the module manifest. Load never fails on a
// missing or unparseable manifest; it yields an empty registry instead.
// Callers always do full load-modify-save cycles.
type RegistryRepository interface {
	Load(ctx context.Context) (*domain.Registry, error)
	Save(ctx context.Context, registry *domain.Registry) error
}

// ModuleLoader loads a module document by path. Absolute paths are read
// directly; package-style paths are resolved against the module search roots.
type ModuleLoader interface {
	Load(ctx context.Context, path string) (*domain.LoadedModule, error)
}

// DeploymentEngine is the external deployment/journaling collaborator. It is
// idempotent per future-within-deployment: re-deploying a module skips
// futures that are already journaled.
type DeploymentEngine interface {
	ResetJournal(ctx context.Context, deploymentID string) error
	DeployModule(ctx context.Context, module *domain.LoadedModule, args domain.DeployArgs) (*domain.DeployOutcome, error)
}

// JournalReader reads the engine's persisted per-deployment output. Unlike
// the manifest, a missing journal is a hard error here: inspecting a
// deployment that never ran is abnormal.
type JournalReader interface {
	ReadAddressMap(ctx context.Context, deploymentID string) (map[string]string, error)
	ReadArtifact(ctx context.Context, deploymentID, futureID string) (*domain.Artifact, error)
}

// ContractBinder constructs a usable contract handle from an address and a
// parsed interface, backed by the active network's provider.
type ContractBinder interface {
	Bind(ctx context.Context, address common.Address, contractABI *abi.ABI) (*domain.ContractHandle, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// ModuleListEntry pairs a registered descriptor with the result ids its
// currently-resolvable variant declares. Unresolvable entries carry an empty
// id set; listing never aborts because one module is unloadable.
type ModuleListEntry struct {
	Descriptor domain.ModuleDescriptor
	ResultIDs  []string
}

// ModuleListResult contains the result of listing the registry
type ModuleListResult struct {
	Entries []ModuleListEntry
}

// RunModulesResult summarizes a run of the whole registry
type RunModulesResult struct {
	DeploymentID string
	Reset        bool
	Outcomes     []*domain.DeployOutcome
}

// ContractListResult contains a deployment's address map entries
type ContractListResult struct {
	DeploymentID string
	Contracts    []domain.DeployedContract
}
