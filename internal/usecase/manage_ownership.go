package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vaultscope/yctl/internal/domain/config"
)

// ManageOwnership handles the ownership surface of the registry.
type ManageOwnership struct {
	cfg      *config.RuntimeConfig
	owners   OwnershipStore
	progress ProgressSink
}

// NewManageOwnership creates a new ownership management use case
func NewManageOwnership(
	cfg *config.RuntimeConfig,
	owners OwnershipStore,
	progress ProgressSink,
) *ManageOwnership {
	return &ManageOwnership{
		cfg:      cfg,
		owners:   owners,
		progress: progress,
	}
}

// ManageOwnershipParams contains parameters for ownership operations
type ManageOwnershipParams struct {
	// Operation: "show", "transfer", or "renounce"
	Operation string
	// NewOwner for transfer
	NewOwner common.Address
}

// ManageOwnershipResult contains the result of an ownership operation
type ManageOwnershipResult struct {
	Operation     string
	Owner         common.Address
	PreviousOwner common.Address
}

// Run performs an ownership operation.
func (m *ManageOwnership) Run(ctx context.Context, params ManageOwnershipParams) (*ManageOwnershipResult, error) {
	switch params.Operation {
	case "show":
		return m.show(ctx)
	case "transfer":
		return m.transfer(ctx, params.NewOwner)
	case "renounce":
		return m.renounce(ctx)
	default:
		return nil, fmt.Errorf("invalid operation: %s", params.Operation)
	}
}

func (m *ManageOwnership) show(ctx context.Context) (*ManageOwnershipResult, error) {
	owner, err := m.owners.Owner(ctx)
	if err != nil {
		return nil, err
	}
	return &ManageOwnershipResult{Operation: "show", Owner: owner}, nil
}

func (m *ManageOwnership) transfer(ctx context.Context, newOwner common.Address) (*ManageOwnershipResult, error) {
	previous, err := m.owners.Owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.owners.TransferOwnership(ctx, m.cfg.Caller, newOwner); err != nil {
		return nil, err
	}

	m.progress.Info(fmt.Sprintf("Transferred ownership to %s", newOwner.Hex()))

	return &ManageOwnershipResult{
		Operation:     "transfer",
		Owner:         newOwner,
		PreviousOwner: previous,
	}, nil
}

func (m *ManageOwnership) renounce(ctx context.Context) (*ManageOwnershipResult, error) {
	previous, err := m.owners.Owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.owners.RenounceOwnership(ctx, m.cfg.Caller); err != nil {
		return nil, err
	}

	m.progress.Info("Ownership renounced; the registry is now immutable")

	return &ManageOwnershipResult{
		Operation:     "renounce",
		Owner:         common.Address{},
		PreviousOwner: previous,
	}, nil
}
