package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/vaultscope/yctl/internal/domain"
)

// ProtocolRepository is the durable ordered set of tracked protocol
// addresses. Mutations report whether they changed state so callers can
// distinguish effective writes from idempotent no-ops.
type ProtocolRepository interface {
	// Add appends the protocol unless already present. Returns false for the
	// idempotent no-op path.
	Add(ctx context.Context, protocol common.Address) (bool, error)
	// Remove deletes the protocol via swap-and-pop. Returns false when the
	// protocol was not tracked.
	Remove(ctx context.Context, protocol common.Address) (bool, error)
	Contains(ctx context.Context, protocol common.Address) (bool, error)
	// List returns a snapshot copy in current registry order.
	List(ctx context.Context) ([]common.Address, error)
	Count(ctx context.Context) (uint64, error)
}

// OwnershipStore is the access-control collaborator. The registry consumes
// this capability; it never reaches back into registry state.
type OwnershipStore interface {
	Initialize(ctx context.Context, initialOwner common.Address) error
	Owner(ctx context.Context) (common.Address, error)
	// RequireOwner fails with domain.ErrUnauthorized when caller is not the
	// current owner.
	RequireOwner(ctx context.Context, caller common.Address) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error
	RenounceOwnership(ctx context.Context, caller common.Address) error
}

// YieldSource looks up the yield attributable to a (protocol, user) pair.
// The real cross-protocol call and the deterministic mock both sit behind
// this boundary.
type YieldSource interface {
	GetYield(ctx context.Context, protocol, user common.Address) (*uint256.Int, error)
}

// EventSink receives boundary events. Emitted exactly once per effective
// mutation or completed aggregation; never on no-op paths.
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}

// ProtocolSelector handles interactive protocol selection
type ProtocolSelector interface {
	SelectProtocol(ctx context.Context, protocols []common.Address, prompt string) (common.Address, error)
}

// ProgressSink receives progress updates during longer operations
type ProgressSink interface {
	Start(message string)
	Stop()
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) Start(string) {}
func (NopProgress) Stop()        {}
func (NopProgress) Info(string)  {}
func (NopProgress) Error(string) {}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) Emit(context.Context, domain.Event) {}
