package domain

import (
	"encoding/json"
	"fmt"
)

// ModuleDescriptor identifies a registered deployment module. Project-owned
// modules store a root-relative path; external modules store a package-style
// path resolved against the module search roots.
type ModuleDescriptor struct {
	Path     string `json:"filename"`
	External bool   `json:"external"`
}

// Key returns the descriptor's identity key. A registry holds at most one
// descriptor per key.
func (d ModuleDescriptor) Key() string {
	return fmt.Sprintf("%s|%t", d.Path, d.External)
}

func (d ModuleDescriptor) String() string {
	if d.External {
		return fmt.Sprintf("%s (external)", d.Path)
	}
	return d.Path
}

// ContractPlan is one deployable unit inside a module. The ID is the future
// id the deployment engine journals the resulting address under.
type ContractPlan struct {
	ID       string `yaml:"id"`
	Artifact string `yaml:"artifact"`
	Args     []any  `yaml:"args"`
}

// LoadedModule is the concrete, parsed form of a module after resolution.
type LoadedModule struct {
	Name      string         `yaml:"name"`
	Contracts []ContractPlan `yaml:"contracts"`

	// SourcePath is the path the loader actually read, which may be a
	// chain-qualified variant of the registered path.
	SourcePath string `yaml:"-"`
}

// ResultIDs returns the future ids this module declares as results.
func (m *LoadedModule) ResultIDs() []string {
	ids := make([]string, 0, len(m.Contracts))
	for _, c := range m.Contracts {
		ids = append(ids, c.ID)
	}
	return ids
}

// DeployArgs is the opaque configuration handed through to the deployment
// engine for each module of a run.
type DeployArgs struct {
	DeploymentID   string
	ParametersFile string
	Strategy       string
	DefaultSender  string
	Verify         bool
}

// DeployRecord is one journal entry produced by the engine for a future id.
type DeployRecord struct {
	FutureID     string `json:"futureId"`
	ContractName string `json:"contractName"`
	Address      string `json:"address"`
	TxHash       string `json:"txHash,omitempty"`
	Skipped      bool   `json:"skipped,omitempty"`

	// Verify marks that verification was requested for this deployment;
	// external verification tooling picks it up from the journal log.
	Verify bool `json:"verify,omitempty"`
}

// DeployOutcome summarizes the engine's work for one module.
type DeployOutcome struct {
	Module  string
	Records []DeployRecord
}

// Artifact is the persisted build output for a contract: the ABI plus the
// creation bytecode needed to deploy it.
type Artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode,omitempty"`
}

// Network is a resolved target network.
type Network struct {
	Name    string
	RpcURL  string
	ChainID uint64
}

// DeploymentID returns the canonical per-chain deployment identifier used
// when the caller does not name one explicitly.
func (n *Network) DeploymentID() string {
	return fmt.Sprintf("chain-%d", n.ChainID)
}
