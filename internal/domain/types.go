package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress validates and normalizes a hex-encoded Ethereum address.
// Accepts with or without the 0x prefix; rejects anything that is not
// 20 bytes of hex.
func ParseAddress(s string) (common.Address, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(trimmed), nil
}

// IsZeroAddress reports whether addr is the zero address, which is never a
// valid owner identity.
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}
