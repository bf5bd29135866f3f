package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ArtifactRepository reads compiled contract artifacts from the project's
// artifacts directory.
type ArtifactRepository struct {
	dir string
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(cfg *config.RuntimeConfig) *ArtifactRepository {
	return &ArtifactRepository{dir: cfg.ArtifactsDir}
}

// Get reads the artifact for a contract name.
func (r *ArtifactRepository) Get(name string) (*domain.Artifact, error) {
	path := filepath.Join(r.dir, name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
	}

	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("artifact %s is corrupt: %w", name, err)
	}
	if artifact.ContractName == "" {
		artifact.ContractName = name
	}
	return &artifact, nil
}
