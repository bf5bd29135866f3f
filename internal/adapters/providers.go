package adapters

import (
	"github.com/google/wire"

	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters/engine"
	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters/eth"
	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters/fs"
	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewManifestStore,
	wire.Bind(new(usecase.RegistryRepository), new(*fs.ManifestStore)),

	fs.NewModuleLoader,
	wire.Bind(new(usecase.ModuleLoader), new(*fs.ModuleLoader)),
)

// EngineSet provides the deployment/journaling engine
var EngineSet = wire.NewSet(
	engine.NewJournal,
	wire.Bind(new(usecase.JournalReader), new(*engine.Journal)),

	engine.NewArtifactRepository,

	engine.NewEngine,
	wire.Bind(new(usecase.DeploymentEngine), new(*engine.Engine)),
)

// EthSet provides go-ethereum backed implementations
var EthSet = wire.NewSet(
	eth.NewBroadcaster,
	wire.Bind(new(engine.Broadcaster), new(*eth.Broadcaster)),

	eth.NewBinder,
	wire.Bind(new(usecase.ContractBinder), new(*eth.Binder)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	EngineSet,
	EthSet,
)
