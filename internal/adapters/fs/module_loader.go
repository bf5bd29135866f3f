package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// ModuleLoader reads module documents from disk. Absolute paths load
// directly; package-style paths are tried against each module search root in
// order. Paths without an extension get .yaml appended.
type ModuleLoader struct {
	searchPaths []string
	log         *slog.Logger
}

// NewModuleLoader creates a new module loader
func NewModuleLoader(cfg *config.RuntimeConfig, log *slog.Logger) *ModuleLoader {
	return &ModuleLoader{
		searchPaths: cfg.ModuleSearchPaths,
		log:         log,
	}
}

// Load resolves and parses a module document.
func (l *ModuleLoader) Load(ctx context.Context, path string) (*domain.LoadedModule, error) {
	for _, candidate := range l.candidates(path) {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read module %s: %w", candidate, err)
		}
		return parseModule(candidate, data)
	}
	return nil, fmt.Errorf("module %s not found", path)
}

func (l *ModuleLoader) candidates(path string) []string {
	if filepath.Ext(path) == "" {
		path += ".yaml"
	}
	if filepath.IsAbs(path) {
		return []string{path}
	}

	candidates := make([]string, 0, len(l.searchPaths))
	for _, root := range l.searchPaths {
		candidates = append(candidates, filepath.Join(root, path))
	}
	return candidates
}

// parseModule decodes and validates a module document. A module with no name,
// a contract without id or artifact, or duplicate future ids is a load
// failure like any other.
func parseModule(path string, data []byte) (*domain.LoadedModule, error) {
	var mod domain.LoadedModule
	if err := yaml.Unmarshal(data, &mod); err != nil {
		return nil, fmt.Errorf("failed to parse module %s: %w", path, err)
	}

	if mod.Name == "" {
		return nil, fmt.Errorf("module %s has no name", path)
	}

	seen := make(map[string]bool, len(mod.Contracts))
	for i, c := range mod.Contracts {
		if c.ID == "" {
			return nil, fmt.Errorf("module %s: contract #%d has no id", path, i)
		}
		if c.Artifact == "" {
			return nil, fmt.Errorf("module %s: contract %s has no artifact", path, c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("module %s: duplicate contract id %s", path, c.ID)
		}
		seen[c.ID] = true
	}

	mod.SourcePath = path
	return &mod, nil
}
