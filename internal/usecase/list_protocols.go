package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ListProtocols returns the tracked protocol set.
type ListProtocols struct {
	protocols ProtocolRepository
	owners    OwnershipStore
}

// NewListProtocols creates a new list protocols use case
func NewListProtocols(protocols ProtocolRepository, owners OwnershipStore) *ListProtocols {
	return &ListProtocols{protocols: protocols, owners: owners}
}

// ListProtocolsResult contains the registry snapshot
type ListProtocolsResult struct {
	Protocols []common.Address
	Count     uint64
	Owner     common.Address
}

// Run returns a snapshot of the registry in current order.
func (l *ListProtocols) Run(ctx context.Context) (*ListProtocolsResult, error) {
	protocols, err := l.protocols.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols: %w", err)
	}

	count, err := l.protocols.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read protocol count: %w", err)
	}

	owner, err := l.owners.Owner(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read owner: %w", err)
	}

	return &ListProtocolsResult{
		Protocols: protocols,
		Count:     count,
		Owner:     owner,
	}, nil
}
