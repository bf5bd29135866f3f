package eth

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/AlephVault/hardhat-deploy-everything/internal/adapters/engine"
	"github.com/AlephVault/hardhat-deploy-everything/internal/config"
	"github.com/AlephVault/hardhat-deploy-everything/internal/domain"
)

// Broadcaster deploys contracts through a JSON-RPC provider using a keyed
// transactor. One instance serves one run; the client is dialed lazily on
// first use.
type Broadcaster struct {
	config *config.RuntimeConfig
	log    *slog.Logger
	client *ethclient.Client
}

// NewBroadcaster creates a new broadcaster
func NewBroadcaster(cfg *config.RuntimeConfig, log *slog.Logger) *Broadcaster {
	return &Broadcaster{
		config: cfg,
		log:    log,
	}
}

// DeployContract signs and submits a contract-creation transaction and waits
// for it to be mined.
func (b *Broadcaster) DeployContract(ctx context.Context, artifact *domain.Artifact, args []any, opts engine.BroadcastOptions) (*engine.DeployReceipt, error) {
	network := b.config.Network
	if network == nil {
		return nil, domain.ErrNoActiveNetwork
	}

	client, err := b.dial(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := abi.JSON(strings.NewReader(string(artifact.ABI)))
	if err != nil {
		return nil, fmt.Errorf("artifact %s has an invalid ABI: %w", artifact.ContractName, err)
	}

	bytecode, err := decodeBytecode(artifact.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", artifact.ContractName, err)
	}

	auth, err := b.transactor(opts.DefaultSender, network.ChainID)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx

	typedArgs, err := convertArgs(parsed.Constructor.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", artifact.ContractName, err)
	}

	address, tx, _, err := bind.DeployContract(auth, parsed, bytecode, client, typedArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to broadcast deployment of %s: %w", artifact.ContractName, err)
	}

	b.log.Debug("deployment broadcast", "contract", artifact.ContractName, "tx", tx.Hash().Hex())

	if _, err := bind.WaitDeployed(ctx, client, tx); err != nil {
		return nil, fmt.Errorf("deployment of %s not mined: %w", artifact.ContractName, err)
	}

	return &engine.DeployReceipt{
		Address: address.Hex(),
		TxHash:  tx.Hash().Hex(),
	}, nil
}

func (b *Broadcaster) dial(ctx context.Context) (*ethclient.Client, error) {
	if b.client != nil {
		return b.client, nil
	}

	client, err := ethclient.DialContext(ctx, b.config.Network.RpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", b.config.Network.RpcURL, err)
	}
	b.client = client
	return client, nil
}

// transactor builds a signer from the configured sender key. A named sender
// selects HDE_SENDER_KEY_<NAME> from the environment instead.
func (b *Broadcaster) transactor(sender string, chainID uint64) (*bind.TransactOpts, error) {
	keyHex := b.config.SenderKey
	if sender != "" {
		envKey := "HDE_SENDER_KEY_" + strings.ToUpper(strings.ReplaceAll(sender, "-", "_"))
		keyHex = os.Getenv(envKey)
		if keyHex == "" {
			return nil, fmt.Errorf("sender %s has no key (%s not set)", sender, envKey)
		}
	}
	if keyHex == "" {
		return nil, fmt.Errorf("no sender key configured (set HDE_SENDER_KEY)")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid sender key: %w", err)
	}
	return bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
}

func decodeBytecode(code string) ([]byte, error) {
	code = strings.TrimPrefix(code, "0x")
	if code == "" {
		return nil, fmt.Errorf("artifact has no bytecode")
	}
	data, err := hex.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return data, nil
}

// convertArgs coerces module-document args (parsed from YAML as ints,
// strings, bools) into the Go types go-ethereum's ABI packer expects.
func convertArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(args) != len(inputs) {
		return nil, fmt.Errorf("constructor expects %d args, module provides %d", len(inputs), len(args))
	}

	converted := make([]any, len(args))
	for i, input := range inputs {
		v, err := convertArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("arg %d (%s): %w", i, input.Type.String(), err)
		}
		converted[i] = v
	}
	return converted, nil
}

func convertArg(t abi.Type, value any) (any, error) {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		return toBigInt(value)
	case abi.AddressTy:
		s, ok := value.(string)
		if !ok || !common.IsHexAddress(s) {
			return nil, fmt.Errorf("expected hex address, got %v", value)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %v", value)
		}
		return b, nil
	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %v", value)
		}
		return s, nil
	case abi.FixedBytesTy:
		if t.Size != 32 {
			return nil, fmt.Errorf("unsupported fixed bytes size %d", t.Size)
		}
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex string, got %v", value)
		}
		return common.HexToHash(s), nil
	case abi.BytesTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex string, got %v", value)
		}
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))
	default:
		return nil, fmt.Errorf("unsupported constructor arg type %s", t.String())
	}
}

func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		// YAML numbers may decode as floats; only whole values are valid
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("non-integer number %v", v)
		}
		return big.NewInt(int64(v)), nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimPrefix(v, "0x"), base(v))
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

func base(s string) int {
	if strings.HasPrefix(s, "0x") {
		return 16
	}
	return 10
}
