package eth

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// Binder constructs contract handles over the active network's provider.
type Binder struct {
	config *config.RuntimeConfig
	client *ethclient.Client
}

// NewBinder creates a new contract binder
func NewBinder(cfg *config.RuntimeConfig) *Binder {
	return &Binder{config: cfg}
}

// Bind returns a handle for interacting with the contract at address using
// the given interface.
func (b *Binder) Bind(ctx context.Context, address common.Address, contractABI *abi.ABI) (*domain.ContractHandle, error) {
	if b.config.Network == nil {
		return nil, domain.ErrNoActiveNetwork
	}

	if b.client == nil {
		client, err := ethclient.DialContext(ctx, b.config.Network.RpcURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", b.config.Network.RpcURL, err)
		}
		b.client = client
	}

	return &domain.ContractHandle{
		Address:  address,
		ABI:      contractABI,
		Contract: bind.NewBoundContract(address, *contractABI, b.client, b.client, b.client),
	}, nil
}
