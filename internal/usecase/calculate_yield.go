package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/vaultscope/yctl/internal/domain"
)

// CalculateYield aggregates per-protocol yield for a user across the whole
// registry. Read-only with respect to registry state.
type CalculateYield struct {
	protocols ProtocolRepository
	source    YieldSource
	events    EventSink
	progress  ProgressSink
}

// NewCalculateYield creates a new yield calculation use case
func NewCalculateYield(
	protocols ProtocolRepository,
	source YieldSource,
	events EventSink,
	progress ProgressSink,
) *CalculateYield {
	return &CalculateYield{
		protocols: protocols,
		source:    source,
		events:    events,
		progress:  progress,
	}
}

// CalculateYieldParams contains parameters for yield aggregation
type CalculateYieldParams struct {
	User common.Address
}

// ProtocolYield is one row of the aggregation breakdown
type ProtocolYield struct {
	Protocol common.Address
	Yield    *uint256.Int
}

// CalculateYieldResult contains the aggregated total and its breakdown
type CalculateYieldResult struct {
	User          common.Address
	Total         *uint256.Int
	ProtocolCount uint64
	Breakdown     []ProtocolYield
}

// Run sums lookup(protocol, user) over the registry snapshot in order.
// Returns zero for an empty registry. A lookup failure aborts the whole
// pass; an overflowing accumulation fails with domain.ErrOverflow rather
// than wrapping.
func (c *CalculateYield) Run(ctx context.Context, params CalculateYieldParams) (*CalculateYieldResult, error) {
	protocols, err := c.protocols.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols: %w", err)
	}

	c.progress.Start(fmt.Sprintf("Aggregating yield across %d protocols", len(protocols)))
	defer c.progress.Stop()

	total := uint256.NewInt(0)
	breakdown := make([]ProtocolYield, 0, len(protocols))

	for _, protocol := range protocols {
		amount, err := c.source.GetYield(ctx, protocol, params.User)
		if err != nil {
			return nil, domain.YieldLookupErr{Protocol: protocol, User: params.User, Err: err}
		}

		sum, overflow := new(uint256.Int).AddOverflow(total, amount)
		if overflow {
			return nil, fmt.Errorf("total yield for user %s: %w", params.User.Hex(), domain.ErrOverflow)
		}
		total = sum

		breakdown = append(breakdown, ProtocolYield{Protocol: protocol, Yield: amount})
	}

	result := &CalculateYieldResult{
		User:          params.User,
		Total:         total,
		ProtocolCount: uint64(len(protocols)),
		Breakdown:     breakdown,
	}

	c.events.Emit(ctx, &domain.YieldCalculatedEvent{
		User:          params.User,
		TotalYield:    total,
		ProtocolCount: result.ProtocolCount,
	})

	return result, nil
}
