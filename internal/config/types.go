package config

import (
	"time"

	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// RuntimeConfig is the complete resolved runtime context. It is injected into
// every use case; nothing in the core reads ambient process state.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// ManifestPath is the persisted module manifest (project-relative,
	// fixed location).
	ManifestPath string

	// Network is the active target network, nil if none is configured.
	Network *domain.Network

	// Module loading
	ModuleSearchPaths []string
	ArtifactsDir      string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// SenderKey is the hex private key used by the broadcaster, usually
	// sourced from .env.
	SenderKey string

	// Resolved project file
	ProjectConfig *ProjectConfig
}

// ProjectConfig mirrors hde.toml.
type ProjectConfig struct {
	DefaultNetwork string                   `toml:"default_network"`
	Modules        ModulesConfig            `toml:"modules"`
	Artifacts      ArtifactsConfig          `toml:"artifacts"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// ModulesConfig configures external module resolution.
type ModulesConfig struct {
	SearchPaths []string `toml:"search_paths"`
}

// ArtifactsConfig configures where compiled contract artifacts live.
type ArtifactsConfig struct {
	Dir string `toml:"dir"`
}

// NetworkConfig is one [networks.<name>] block.
type NetworkConfig struct {
	RpcURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id"`
}
