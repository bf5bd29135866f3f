package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ResolveContractParams contains parameters for resolving a contract handle
type ResolveContractParams struct {
	// DeploymentID defaults to the active chain's canonical id.
	DeploymentID string
	FutureID     string
}

// ResolveContractResult contains the resolved handle
type ResolveContractResult struct {
	DeploymentID string
	Handle       *domain.ContractHandle
}

// ResolveContract is the use case turning a journaled future id into a
// usable contract handle: address from the address map, interface from the
// artifact, instance bound through the provider.
type ResolveContract struct {
	config  *config.RuntimeConfig
	journal JournalReader
	binder  ContractBinder
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(cfg *config.RuntimeConfig, journal JournalReader, binder ContractBinder) *ResolveContract {
	return &ResolveContract{
		config:  cfg,
		journal: journal,
		binder:  binder,
	}
}

// Run looks up the future id's deployed address and artifact, validating
// that the artifact carries a non-empty ABI before binding.
func (uc *ResolveContract) Run(ctx context.Context, params ResolveContractParams) (*ResolveContractResult, error) {
	deploymentID := params.DeploymentID
	if deploymentID == "" {
		if uc.config.Network == nil {
			return nil, domain.ErrNoActiveNetwork
		}
		deploymentID = uc.config.Network.DeploymentID()
	}

	addresses, err := uc.journal.ReadAddressMap(ctx, deploymentID)
	if err != nil {
		return nil, err
	}

	addr, ok := addresses[params.FutureID]
	if !ok {
		return nil, fmt.Errorf("contract %s in deployment %s: %w", params.FutureID, deploymentID, domain.ErrNotDeployed)
	}

	artifact, err := uc.journal.ReadArtifact(ctx, deploymentID, params.FutureID)
	if err != nil {
		return nil, err
	}

	parsed, err := parseArtifactABI(artifact)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", params.FutureID, err)
	}

	handle, err := uc.binder.Bind(ctx, common.HexToAddress(addr), parsed)
	if err != nil {
		return nil, err
	}
	handle.FutureID = params.FutureID

	return &ResolveContractResult{
		DeploymentID: deploymentID,
		Handle:       handle,
	}, nil
}

// parseArtifactABI rejects artifacts whose ABI is missing or empty before
// handing the raw JSON to go-ethereum.
func parseArtifactABI(artifact *domain.Artifact) (*abi.ABI, error) {
	var entries []json.RawMessage
	if len(artifact.ABI) > 0 {
		if err := json.Unmarshal(artifact.ABI, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptedContract, err)
		}
	}
	if len(entries) == 0 {
		return nil, domain.ErrCorruptedContract
	}

	parsed, err := abi.JSON(strings.NewReader(string(artifact.ABI)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptedContract, err)
	}
	return &parsed, nil
}
