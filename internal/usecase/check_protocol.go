package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// CheckProtocol reports whether a protocol is tracked.
type CheckProtocol struct {
	protocols ProtocolRepository
}

// NewCheckProtocol creates a new check protocol use case
func NewCheckProtocol(protocols ProtocolRepository) *CheckProtocol {
	return &CheckProtocol{protocols: protocols}
}

// CheckProtocolParams contains parameters for the tracked check
type CheckProtocolParams struct {
	Protocol common.Address
}

// CheckProtocolResult contains the tracked status
type CheckProtocolResult struct {
	Protocol common.Address
	Tracked  bool
}

// Run checks registry membership.
func (c *CheckProtocol) Run(ctx context.Context, params CheckProtocolParams) (*CheckProtocolResult, error) {
	tracked, err := c.protocols.Contains(ctx, params.Protocol)
	if err != nil {
		return nil, fmt.Errorf("failed to check protocol: %w", err)
	}

	return &CheckProtocolResult{
		Protocol: params.Protocol,
		Tracked:  tracked,
	}, nil
}
