package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ManifestStore persists the module registry as a single JSON document at the
// project root. The manifest is allowed not to exist yet: missing or
// unparseable files read back as an empty registry.
type ManifestStore struct {
	path string
	log  *slog.Logger
}

// NewManifestStore creates a new manifest store
func NewManifestStore(cfg *config.RuntimeConfig, log *slog.Logger) *ManifestStore {
	return &ManifestStore{
		path: cfg.ManifestPath,
		log:  log,
	}
}

// Load reads the manifest. Missing and corrupt files recover silently to an
// empty registry; only I/O failures on an existing file are surfaced.
func (s *ManifestStore) Load(ctx context.Context) (*domain.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", s.path, err)
	}

	registry := domain.NewRegistry()
	if err := json.Unmarshal(data, registry); err != nil {
		s.log.Warn("manifest is unparseable, treating as empty", "path", s.path, "err", err)
		return domain.NewRegistry(), nil
	}
	if registry.Contents == nil {
		registry.Contents = []domain.ModuleDescriptor{}
	}
	return registry, nil
}

// Save serializes and overwrites the manifest. The write goes through a temp
// file and rename so a crash mid-write leaves the previous manifest intact.
func (s *ManifestStore) Save(ctx context.Context, registry *domain.Registry) error {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return os.Rename(tmpPath, s.path)
}
