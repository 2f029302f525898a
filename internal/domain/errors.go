package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrUnauthorized is returned when a mutation is attempted by a caller
	// that is not the registry owner
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOwner is returned when ownership would be assigned to an
	// invalid identity such as the zero address
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrOverflow is returned when yield accumulation exceeds the uint256 range
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNotInitialized is returned when no registry exists in the project yet
	ErrNotInitialized = errors.New("registry not initialized")

	// ErrAlreadyInitialized is returned when init runs against a project that
	// already has an owner record
	ErrAlreadyInitialized = errors.New("registry already initialized")
)

// UnauthorizedAccountErr carries the rejected caller identity.
type UnauthorizedAccountErr struct {
	Account common.Address
}

func (e UnauthorizedAccountErr) Error() string {
	return fmt.Sprintf("account %s is not the registry owner", e.Account.Hex())
}

func (e UnauthorizedAccountErr) Unwrap() error {
	return ErrUnauthorized
}

// YieldLookupErr wraps a failed yield lookup for a single protocol. The
// aggregation pass fails fast on the first lookup error rather than
// skipping the entry.
type YieldLookupErr struct {
	Protocol common.Address
	User     common.Address
	Err      error
}

func (e YieldLookupErr) Error() string {
	return fmt.Sprintf("yield lookup failed for protocol %s (user %s): %v",
		e.Protocol.Hex(), e.User.Hex(), e.Err)
}

func (e YieldLookupErr) Unwrap() error {
	return e.Err
}
