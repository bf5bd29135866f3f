package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// MockRegistryRepository is a mock implementation of RegistryRepository
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) Load(ctx context.Context) (*domain.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registry), args.Error(1)
}

func (m *MockRegistryRepository) Save(ctx context.Context, registry *domain.Registry) error {
	args := m.Called(ctx, registry)
	return args.Error(0)
}

// MockJournalReader is a mock implementation of JournalReader
type MockJournalReader struct {
	mock.Mock
}

func (m *MockJournalReader) ReadAddressMap(ctx context.Context, deploymentID string) (map[string]string, error) {
	args := m.Called(ctx, deploymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockJournalReader) ReadArtifact(ctx context.Context, deploymentID, futureID string) (*domain.Artifact, error) {
	args := m.Called(ctx, deploymentID, futureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// fakeLoader serves modules from a fixed path map, standing in for the
// filesystem loader. Any path not in the map fails like a missing file.
type fakeLoader struct {
	modules map[string]*domain.LoadedModule
}

func (l *fakeLoader) Load(_ context.Context, path string) (*domain.LoadedModule, error) {
	if mod, ok := l.modules[path]; ok {
		return mod, nil
	}
	return nil, fmt.Errorf("module %s not found", path)
}

// fakeEngine records reset and deploy calls in arrival order.
type fakeEngine struct {
	order     []string
	lastArgs  domain.DeployArgs
	resetErr  error
	deployErr map[string]error
}

func (e *fakeEngine) ResetJournal(_ context.Context, deploymentID string) error {
	e.order = append(e.order, "reset:"+deploymentID)
	return e.resetErr
}

func (e *fakeEngine) DeployModule(_ context.Context, module *domain.LoadedModule, args domain.DeployArgs) (*domain.DeployOutcome, error) {
	e.order = append(e.order, "deploy:"+module.Name)
	e.lastArgs = args
	if err := e.deployErr[module.Name]; err != nil {
		return nil, err
	}
	records := make([]domain.DeployRecord, 0, len(module.Contracts))
	for _, c := range module.Contracts {
		records = append(records, domain.DeployRecord{
			FutureID:     c.ID,
			ContractName: c.Artifact,
			Address:      "0x0000000000000000000000000000000000000001",
		})
	}
	return &domain.DeployOutcome{Module: module.Name, Records: records}, nil
}

// fakeBinder binds without a live provider.
type fakeBinder struct {
	lastAddress common.Address
}

func (b *fakeBinder) Bind(_ context.Context, address common.Address, contractABI *abi.ABI) (*domain.ContractHandle, error) {
	b.lastAddress = address
	return &domain.ContractHandle{Address: address, ABI: contractABI}, nil
}

// recordingSink collects progress events
type recordingSink struct {
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(string)  {}
func (s *recordingSink) Error(string) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/work/app",
		Network: &domain.Network{
			Name:    "polygon",
			RpcURL:  "http://localhost:8545",
			ChainID: 137,
		},
	}
}
