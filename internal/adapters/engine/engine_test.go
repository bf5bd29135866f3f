package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// fakeBroadcaster mints deterministic addresses and records the args each
// deployment was submitted with.
type fakeBroadcaster struct {
	deployed []string
	argsByID map[string][]any
}

func (b *fakeBroadcaster) DeployContract(_ context.Context, artifact *domain.Artifact, args []any, _ BroadcastOptions) (*DeployReceipt, error) {
	b.deployed = append(b.deployed, artifact.ContractName)
	if b.argsByID == nil {
		b.argsByID = make(map[string][]any)
	}
	b.argsByID[artifact.ContractName] = args
	n := len(b.deployed)
	return &DeployReceipt{
		Address: fmt.Sprintf("0x%040x", n),
		TxHash:  fmt.Sprintf("0x%064x", n),
	}, nil
}

func newTestEngine(t *testing.T, broadcaster Broadcaster) (*Engine, *config.RuntimeConfig) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot:  dir,
		DataDir:      filepath.Join(dir, ".hde"),
		ArtifactsDir: filepath.Join(dir, "artifacts"),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(cfg, NewJournal(cfg), NewArtifactRepository(cfg), broadcaster, log), cfg
}

func writeArtifact(t *testing.T, cfg *config.RuntimeConfig, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.ArtifactsDir, 0755))
	artifact := domain.Artifact{
		ContractName: name,
		ABI:          json.RawMessage(`[{"type":"constructor","inputs":[]}]`),
		Bytecode:     "0x6080604052",
	}
	data, err := json.Marshal(artifact)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ArtifactsDir, name+".json"), data, 0644))
}

func TestEngineDeployModule(t *testing.T) {
	ctx := context.Background()

	module := &domain.LoadedModule{
		Name: "Pair",
		Contracts: []domain.ContractPlan{
			{ID: "token-a", Artifact: "Token"},
			{ID: "token-b", Artifact: "Token"},
		},
	}
	args := domain.DeployArgs{DeploymentID: "chain-31337"}

	t.Run("deploys contracts in declaration order and journals them", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Token")

		outcome, err := eng.DeployModule(ctx, module, args)

		require.NoError(t, err)
		require.Len(t, outcome.Records, 2)
		assert.Equal(t, "token-a", outcome.Records[0].FutureID)
		assert.Equal(t, "token-b", outcome.Records[1].FutureID)
		assert.False(t, outcome.Records[0].Skipped)
		assert.NotEmpty(t, outcome.Records[0].TxHash)

		addresses, err := eng.journal.ReadAddressMap(ctx, "chain-31337")
		require.NoError(t, err)
		assert.Len(t, addresses, 2)
		assert.Equal(t, outcome.Records[0].Address, addresses["token-a"])

		journaled, err := eng.journal.ReadArtifact(ctx, "chain-31337", "token-a")
		require.NoError(t, err)
		assert.Equal(t, "Token", journaled.ContractName)
	})

	t.Run("re-running skips journaled futures", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Token")

		first, err := eng.DeployModule(ctx, module, args)
		require.NoError(t, err)

		second, err := eng.DeployModule(ctx, module, args)
		require.NoError(t, err)

		require.Len(t, second.Records, 2)
		assert.True(t, second.Records[0].Skipped)
		assert.True(t, second.Records[1].Skipped)
		assert.Equal(t, first.Records[0].Address, second.Records[0].Address)
		assert.Len(t, broadcaster.deployed, 2)
	})

	t.Run("reset makes futures deployable again", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Token")

		_, err := eng.DeployModule(ctx, module, args)
		require.NoError(t, err)
		require.NoError(t, eng.ResetJournal(ctx, "chain-31337"))

		outcome, err := eng.DeployModule(ctx, module, args)
		require.NoError(t, err)
		assert.False(t, outcome.Records[0].Skipped)
		assert.Len(t, broadcaster.deployed, 4)
	})

	t.Run("resetting a journal that never existed succeeds", func(t *testing.T) {
		eng, _ := newTestEngine(t, &fakeBroadcaster{})
		require.NoError(t, eng.ResetJournal(ctx, "chain-99"))
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		eng, _ := newTestEngine(t, &fakeBroadcaster{})

		_, err := eng.DeployModule(ctx, module, domain.DeployArgs{DeploymentID: "chain-31337", Strategy: "create2"})

		require.ErrorContains(t, err, "unknown deployment strategy create2")
	})

	t.Run("basic strategy is accepted", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Token")

		_, err := eng.DeployModule(ctx, module, domain.DeployArgs{DeploymentID: "chain-31337", Strategy: "basic"})

		require.NoError(t, err)
	})

	t.Run("verify intent is journaled with the record", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Token")

		outcome, err := eng.DeployModule(ctx, module, domain.DeployArgs{
			DeploymentID: "chain-31337",
			Verify:       true,
		})

		require.NoError(t, err)
		assert.True(t, outcome.Records[0].Verify)

		logPath := filepath.Join(cfg.DataDir, "deployments", "chain-31337", "journal.jsonl")
		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"verify":true`)
	})

	t.Run("missing artifact fails the future", func(t *testing.T) {
		eng, _ := newTestEngine(t, &fakeBroadcaster{})

		_, err := eng.DeployModule(ctx, module, args)

		require.ErrorContains(t, err, "future token-a")
	})

	t.Run("substitutes parameters from the run's parameters file", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Lock")

		paramsPath := filepath.Join(cfg.ProjectRoot, "params.yaml")
		require.NoError(t, os.WriteFile(paramsPath, []byte("Vault:\n  unlockTime: 1893456000\n"), 0644))

		vault := &domain.LoadedModule{
			Name: "Vault",
			Contracts: []domain.ContractPlan{
				{ID: "lock", Artifact: "Lock", Args: []any{"$param.unlockTime", "plain"}},
			},
		}
		_, err := eng.DeployModule(ctx, vault, domain.DeployArgs{
			DeploymentID:   "chain-31337",
			ParametersFile: paramsPath,
		})

		require.NoError(t, err)
		assert.Equal(t, []any{1893456000, "plain"}, broadcaster.argsByID["Lock"])
	})

	t.Run("unbound parameter fails before broadcasting", func(t *testing.T) {
		broadcaster := &fakeBroadcaster{}
		eng, cfg := newTestEngine(t, broadcaster)
		writeArtifact(t, cfg, "Lock")

		paramsPath := filepath.Join(cfg.ProjectRoot, "params.yaml")
		require.NoError(t, os.WriteFile(paramsPath, []byte("Other:\n  x: 1\n"), 0644))

		vault := &domain.LoadedModule{
			Name:      "Vault",
			Contracts: []domain.ContractPlan{{ID: "lock", Artifact: "Lock", Args: []any{"$param.unlockTime"}}},
		}
		_, err := eng.DeployModule(ctx, vault, domain.DeployArgs{
			DeploymentID:   "chain-31337",
			ParametersFile: paramsPath,
		})

		require.ErrorContains(t, err, "parameter unlockTime has no value")
		assert.Empty(t, broadcaster.deployed)
	})
}

func TestJournal(t *testing.T) {
	ctx := context.Background()

	newJournal := func(t *testing.T) *Journal {
		return NewJournal(&config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".hde")})
	}

	t.Run("reading an absent deployment fails", func(t *testing.T) {
		j := newJournal(t)

		_, err := j.ReadAddressMap(ctx, "chain-1")
		require.ErrorContains(t, err, "failed to read address map")

		_, err = j.ReadArtifact(ctx, "chain-1", "counter")
		require.ErrorContains(t, err, "failed to read artifact")
	})

	t.Run("lookup on an absent deployment reads as empty", func(t *testing.T) {
		j := newJournal(t)

		_, ok, err := j.Lookup(ctx, "chain-1", "counter")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("record then read round-trips", func(t *testing.T) {
		j := newJournal(t)
		artifact := &domain.Artifact{ContractName: "Counter", ABI: json.RawMessage(`[]`)}
		rec := domain.DeployRecord{
			FutureID:     "counter",
			ContractName: "Counter",
			Address:      "0x1111111111111111111111111111111111111111",
			TxHash:       "0xabc",
		}

		require.NoError(t, j.Record(ctx, "chain-1", rec, artifact))

		addr, ok, err := j.Lookup(ctx, "chain-1", "counter")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, rec.Address, addr)

		got, err := j.ReadArtifact(ctx, "chain-1", "counter")
		require.NoError(t, err)
		assert.Equal(t, "Counter", got.ContractName)
	})

	t.Run("corrupt address map is an error", func(t *testing.T) {
		cfg := &config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".hde")}
		j := NewJournal(cfg)
		dir := filepath.Join(cfg.DataDir, "deployments", "chain-1")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deployed_addresses.json"), []byte("{broken"), 0644))

		_, err := j.ReadAddressMap(ctx, "chain-1")
		require.ErrorContains(t, err, "corrupt")

		_, _, err = j.Lookup(ctx, "chain-1", "counter")
		require.Error(t, err)
	})
}
