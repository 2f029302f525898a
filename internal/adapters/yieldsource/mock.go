package yieldsource

import (
	"context"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/vaultscope/yctl/internal/usecase"
)

// Per-protocol amounts in wei (0.005, 0.008 and 0.003 ETH)
var mockYields = [3]uint64{
	5_000_000_000_000_000,
	8_000_000_000_000_000,
	3_000_000_000_000_000,
}

// MockSource derives a deterministic yield from the protocol address alone,
// standing in for the real cross-protocol call. The user address does not
// influence the amount.
type MockSource struct{}

// NewMockSource creates a deterministic yield source
func NewMockSource() *MockSource {
	return &MockSource{}
}

// GetYield returns a fixed amount selected by the last four bytes of the
// protocol address
func (m *MockSource) GetYield(ctx context.Context, protocol, user common.Address) (*uint256.Int, error) {
	seed := binary.BigEndian.Uint32(protocol.Bytes()[16:20])
	return uint256.NewInt(mockYields[seed%3]), nil
}

// Ensure the adapter implements the interface
var _ usecase.YieldSource = (*MockSource)(nil)
