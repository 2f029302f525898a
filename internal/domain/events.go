package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type EventType string

const (
	EventTypeProtocolAdded   EventType = "ProtocolAdded"
	EventTypeProtocolRemoved EventType = "ProtocolRemoved"
	EventTypeYieldCalculated EventType = "YieldCalculated"
)

// Event is the interface for all boundary events. Events fire exactly once
// per effective mutation or completed calculation; idempotent no-op paths
// emit nothing.
type Event interface {
	EventName() string
	String() string
}

// ProtocolAddedEvent fires when a protocol is appended to the registry.
type ProtocolAddedEvent struct {
	Protocol common.Address
	Owner    common.Address
}

func (ProtocolAddedEvent) EventName() string {
	return string(EventTypeProtocolAdded)
}

func (e *ProtocolAddedEvent) String() string {
	return fmt.Sprintf("%s: protocol=%s, owner=%s",
		e.EventName(), e.Protocol.Hex(), e.Owner.Hex())
}

// ProtocolRemovedEvent fires when a protocol is removed from the registry.
type ProtocolRemovedEvent struct {
	Protocol common.Address
	Owner    common.Address
}

func (ProtocolRemovedEvent) EventName() string {
	return string(EventTypeProtocolRemoved)
}

func (e *ProtocolRemovedEvent) String() string {
	return fmt.Sprintf("%s: protocol=%s, owner=%s",
		e.EventName(), e.Protocol.Hex(), e.Owner.Hex())
}

// YieldCalculatedEvent fires after a successful aggregation pass.
type YieldCalculatedEvent struct {
	User          common.Address
	TotalYield    *uint256.Int
	ProtocolCount uint64
}

func (YieldCalculatedEvent) EventName() string {
	return string(EventTypeYieldCalculated)
}

func (e *YieldCalculatedEvent) String() string {
	return fmt.Sprintf("%s: user=%s, total=%s, protocols=%d",
		e.EventName(), e.User.Hex(), e.TotalYield.Dec(), e.ProtocolCount)
}
