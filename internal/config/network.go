package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// NetworkResolver resolves network names from hde.toml into concrete targets.
type NetworkResolver struct {
	project *ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *ProjectConfig) *NetworkResolver {
	return &NetworkResolver{project: project}
}

// Names returns the configured network names.
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.project.Networks))
	for name := range r.project.Networks {
		names = append(names, name)
	}
	return names
}

// Resolve looks up a network by name. The RPC URL may be overridden through
// HDE_RPC_<NAME> for environments where endpoints carry credentials.
func (r *NetworkResolver) Resolve(name string) (*domain.Network, error) {
	nc, ok := r.project.Networks[name]
	if !ok {
		return nil, fmt.Errorf("network %s not configured in %s", name, ProjectFile)
	}
	if nc.ChainID == 0 {
		return nil, fmt.Errorf("network %s has no chain_id", name)
	}

	rpcURL := nc.RpcURL
	envKey := "HDE_RPC_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if override := os.Getenv(envKey); override != "" {
		rpcURL = override
	}

	return &domain.Network{
		Name:    name,
		RpcURL:  rpcURL,
		ChainID: nc.ChainID,
	}, nil
}
