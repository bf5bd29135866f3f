package usecase

import (
	"context"
	"sort"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ListContractsParams contains parameters for listing deployed contracts
type ListContractsParams struct {
	// DeploymentID defaults to the active chain's canonical id.
	DeploymentID string
}

// ListContracts is the use case for reading a deployment's address map. A
// missing or unreadable journal is an error here, unlike the manifest's
// silent-empty policy: an inspected deployment is expected to have run.
type ListContracts struct {
	config  *config.RuntimeConfig
	journal JournalReader
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(cfg *config.RuntimeConfig, journal JournalReader) *ListContracts {
	return &ListContracts{
		config:  cfg,
		journal: journal,
	}
}

// Run returns the deployment's future ids and addresses, sorted by id for
// stable output.
func (uc *ListContracts) Run(ctx context.Context, params ListContractsParams) (*ContractListResult, error) {
	deploymentID, err := uc.deploymentID(params.DeploymentID)
	if err != nil {
		return nil, err
	}

	addresses, err := uc.journal.ReadAddressMap(ctx, deploymentID)
	if err != nil {
		return nil, err
	}

	contracts := make([]domain.DeployedContract, 0, len(addresses))
	for id, addr := range addresses {
		contracts = append(contracts, domain.DeployedContract{FutureID: id, Address: addr})
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].FutureID < contracts[j].FutureID
	})

	return &ContractListResult{
		DeploymentID: deploymentID,
		Contracts:    contracts,
	}, nil
}

func (uc *ListContracts) deploymentID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if uc.config.Network == nil {
		return "", domain.ErrNoActiveNetwork
	}
	return uc.config.Network.DeploymentID(), nil
}
