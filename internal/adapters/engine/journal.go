package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

const (
	addressMapFile = "deployed_addresses.json"
	artifactsDir   = "artifacts"
	journalFile    = "journal.jsonl"
)

// Journal is the engine's persisted per-deployment record: an address map
// keyed by future id, a copy of each deployed contract's artifact, and an
// append-only log of deploy records. It is what makes re-runs idempotent.
type Journal struct {
	root string
}

// NewJournal creates a journal rooted under the project data dir
func NewJournal(cfg *config.RuntimeConfig) *Journal {
	return &Journal{
		root: filepath.Join(cfg.DataDir, "deployments"),
	}
}

func (j *Journal) dir(deploymentID string) string {
	return filepath.Join(j.root, deploymentID)
}

// ReadAddressMap reads a deployment's address map. Missing files are an
// error: callers inspect deployments that are expected to have run.
func (j *Journal) ReadAddressMap(ctx context.Context, deploymentID string) (map[string]string, error) {
	path := filepath.Join(j.dir(deploymentID), addressMapFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address map for deployment %s: %w", deploymentID, err)
	}

	addresses := make(map[string]string)
	if err := json.Unmarshal(data, &addresses); err != nil {
		return nil, fmt.Errorf("address map for deployment %s is corrupt: %w", deploymentID, err)
	}
	return addresses, nil
}

// ReadArtifact reads the journaled artifact for a future id.
func (j *Journal) ReadArtifact(ctx context.Context, deploymentID, futureID string) (*domain.Artifact, error) {
	path := filepath.Join(j.dir(deploymentID), artifactsDir, futureID+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact for %s in deployment %s: %w", futureID, deploymentID, err)
	}

	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("artifact for %s is corrupt: %w", futureID, err)
	}
	return &artifact, nil
}

// Lookup returns the journaled address for a future id, if any. Used on the
// write path, so an absent journal reads as empty rather than failing.
func (j *Journal) Lookup(ctx context.Context, deploymentID, futureID string) (string, bool, error) {
	addresses, err := j.readOrEmpty(deploymentID)
	if err != nil {
		return "", false, err
	}
	addr, ok := addresses[futureID]
	return addr, ok, nil
}

// Record journals one completed deployment: address map entry, artifact
// copy, and an append-only log line.
func (j *Journal) Record(ctx context.Context, deploymentID string, rec domain.DeployRecord, artifact *domain.Artifact) error {
	dir := j.dir(deploymentID)
	if err := os.MkdirAll(filepath.Join(dir, artifactsDir), 0755); err != nil {
		return fmt.Errorf("failed to create journal dir: %w", err)
	}

	addresses, err := j.readOrEmpty(deploymentID)
	if err != nil {
		return err
	}
	addresses[rec.FutureID] = rec.Address
	if err := writeJSONAtomic(filepath.Join(dir, addressMapFile), addresses); err != nil {
		return fmt.Errorf("failed to write address map: %w", err)
	}

	if err := writeJSONAtomic(filepath.Join(dir, artifactsDir, rec.FutureID+".json"), artifact); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	return j.appendLog(deploymentID, rec)
}

// Reset wipes the journal for a deployment. A journal that never existed is
// already reset.
func (j *Journal) Reset(ctx context.Context, deploymentID string) error {
	if err := os.RemoveAll(j.dir(deploymentID)); err != nil {
		return fmt.Errorf("failed to reset journal %s: %w", deploymentID, err)
	}
	return nil
}

func (j *Journal) readOrEmpty(deploymentID string) (map[string]string, error) {
	path := filepath.Join(j.dir(deploymentID), addressMapFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	addresses := make(map[string]string)
	if err := json.Unmarshal(data, &addresses); err != nil {
		return nil, fmt.Errorf("address map for deployment %s is corrupt: %w", deploymentID, err)
	}
	return addresses, nil
}

func (j *Journal) appendLog(deploymentID string, rec domain.DeployRecord) error {
	entry := struct {
		At time.Time `json:"at"`
		domain.DeployRecord
	}{At: time.Now().UTC(), DeployRecord: rec}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(j.dir(deploymentID), journalFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
