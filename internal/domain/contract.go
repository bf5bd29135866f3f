package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// DeployedContract is one entry of a deployment's address map.
type DeployedContract struct {
	FutureID string
	Address  string
}

// ContractHandle is a capability to interact with a deployed contract: its
// journaled address, parsed interface, and a bound instance over a provider.
type ContractHandle struct {
	FutureID string
	Address  common.Address
	ABI      *abi.ABI
	Contract *bind.BoundContract
}
