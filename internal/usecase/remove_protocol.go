package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/domain/config"
)

// RemoveProtocol handles owner-gated removal of a protocol address.
type RemoveProtocol struct {
	cfg       *config.RuntimeConfig
	protocols ProtocolRepository
	owners    OwnershipStore
	events    EventSink
	selector  ProtocolSelector
	progress  ProgressSink
}

// NewRemoveProtocol creates a new remove protocol use case
func NewRemoveProtocol(
	cfg *config.RuntimeConfig,
	protocols ProtocolRepository,
	owners OwnershipStore,
	events EventSink,
	selector ProtocolSelector,
	progress ProgressSink,
) *RemoveProtocol {
	return &RemoveProtocol{
		cfg:       cfg,
		protocols: protocols,
		owners:    owners,
		events:    events,
		selector:  selector,
		progress:  progress,
	}
}

// RemoveProtocolParams contains parameters for removing a protocol
type RemoveProtocolParams struct {
	// Protocol to remove; nil triggers interactive selection
	Protocol *common.Address
}

// RemoveProtocolResult contains the outcome of a remove operation
type RemoveProtocolResult struct {
	Protocol common.Address
	// Removed is false when the protocol was not tracked (no-op)
	Removed bool
	// Count is the registry size after the operation
	Count uint64
}

// Run removes a protocol from the registry. Removing an untracked protocol
// is a successful no-op and emits no event.
func (r *RemoveProtocol) Run(ctx context.Context, params RemoveProtocolParams) (*RemoveProtocolResult, error) {
	if err := r.owners.RequireOwner(ctx, r.cfg.Caller); err != nil {
		return nil, err
	}

	protocol, err := r.resolveProtocol(ctx, params)
	if err != nil {
		return nil, err
	}

	removed, err := r.protocols.Remove(ctx, protocol)
	if err != nil {
		return nil, fmt.Errorf("failed to remove protocol: %w", err)
	}

	count, err := r.protocols.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read protocol count: %w", err)
	}

	if removed {
		r.events.Emit(ctx, &domain.ProtocolRemovedEvent{
			Protocol: protocol,
			Owner:    r.cfg.Caller,
		})
		r.progress.Info(fmt.Sprintf("Removed protocol %s", protocol.Hex()))
	} else {
		r.progress.Info(fmt.Sprintf("Protocol %s is not tracked", protocol.Hex()))
	}

	return &RemoveProtocolResult{
		Protocol: protocol,
		Removed:  removed,
		Count:    count,
	}, nil
}

func (r *RemoveProtocol) resolveProtocol(ctx context.Context, params RemoveProtocolParams) (common.Address, error) {
	if params.Protocol != nil {
		return *params.Protocol, nil
	}

	if r.cfg.NonInteractive {
		return common.Address{}, fmt.Errorf("no protocol specified and interactive selection is disabled")
	}

	protocols, err := r.protocols.List(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to list protocols: %w", err)
	}
	if len(protocols) == 0 {
		return common.Address{}, fmt.Errorf("registry is empty")
	}

	return r.selector.SelectProtocol(ctx, protocols, "Select protocol to remove")
}
