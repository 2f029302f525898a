package yieldsource

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/vaultscope/yctl/internal/usecase"
)

// Minimal ABI for the protocol yield interface
const protocolABI = `[{
	"name": "getYield",
	"type": "function",
	"stateMutability": "view",
	"inputs": [{"name": "user", "type": "address"}],
	"outputs": [{"name": "", "type": "uint256"}]
}]`

// RPCSource resolves yield with an eth_call against each protocol contract.
type RPCSource struct {
	client *ethclient.Client
	abi    abi.ABI
}

// NewRPCSource creates an RPC-backed yield source
func NewRPCSource() (*RPCSource, error) {
	parsed, err := abi.JSON(strings.NewReader(protocolABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse protocol ABI: %w", err)
	}
	return &RPCSource{abi: parsed}, nil
}

// Connect establishes the RPC connection
func (r *RPCSource) Connect(ctx context.Context, rpcURL string) error {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	r.client = client
	return nil
}

// GetYield calls getYield(user) on the protocol contract
func (r *RPCSource) GetYield(ctx context.Context, protocol, user common.Address) (*uint256.Int, error) {
	if r.client == nil {
		return nil, fmt.Errorf("not connected to RPC")
	}

	input, err := r.abi.Pack("getYield", user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode getYield call: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	output, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &protocol,
		Data: input,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("getYield call failed: %w", err)
	}

	results, err := r.abi.Unpack("getYield", output)
	if err != nil {
		return nil, fmt.Errorf("failed to decode getYield result: %w", err)
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected getYield result arity: %d", len(results))
	}

	raw, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getYield result type %T", results[0])
	}

	amount, overflow := uint256.FromBig(raw)
	if overflow {
		return nil, fmt.Errorf("yield value out of uint256 range")
	}
	return amount, nil
}

// Ensure the adapter implements the interface
var _ usecase.YieldSource = (*RPCSource)(nil)
