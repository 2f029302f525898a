package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/domain/config"
)

// AddProtocol handles owner-gated registration of a protocol address.
type AddProtocol struct {
	cfg       *config.RuntimeConfig
	protocols ProtocolRepository
	owners    OwnershipStore
	events    EventSink
	progress  ProgressSink
}

// NewAddProtocol creates a new add protocol use case
func NewAddProtocol(
	cfg *config.RuntimeConfig,
	protocols ProtocolRepository,
	owners OwnershipStore,
	events EventSink,
	progress ProgressSink,
) *AddProtocol {
	return &AddProtocol{
		cfg:       cfg,
		protocols: protocols,
		owners:    owners,
		events:    events,
		progress:  progress,
	}
}

// AddProtocolParams contains parameters for adding a protocol
type AddProtocolParams struct {
	Protocol common.Address
}

// AddProtocolResult contains the outcome of an add operation
type AddProtocolResult struct {
	Protocol common.Address
	// Added is false when the protocol was already tracked (idempotent no-op)
	Added bool
	// Count is the registry size after the operation
	Count uint64
}

// Run adds a protocol to the registry. Adding an already-tracked protocol is
// a successful no-op and emits no event.
func (a *AddProtocol) Run(ctx context.Context, params AddProtocolParams) (*AddProtocolResult, error) {
	if err := a.owners.RequireOwner(ctx, a.cfg.Caller); err != nil {
		return nil, err
	}

	added, err := a.protocols.Add(ctx, params.Protocol)
	if err != nil {
		return nil, fmt.Errorf("failed to add protocol: %w", err)
	}

	count, err := a.protocols.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read protocol count: %w", err)
	}

	if added {
		a.events.Emit(ctx, &domain.ProtocolAddedEvent{
			Protocol: params.Protocol,
			Owner:    a.cfg.Caller,
		})
		a.progress.Info(fmt.Sprintf("Added protocol %s", params.Protocol.Hex()))
	} else {
		a.progress.Info(fmt.Sprintf("Protocol %s already tracked", params.Protocol.Hex()))
	}

	return &AddProtocolResult{
		Protocol: params.Protocol,
		Added:    added,
		Count:    count,
	}, nil
}
