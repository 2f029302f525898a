package usecase_test

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/domain/config"
	"github.com/vaultscope/yctl/internal/usecase"
)

var (
	ownerAddr    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	strangerAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	protocol1    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	protocol2    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	protocol3    = common.HexToAddress("0x3333333333333333333333333333333333333333")
	userAddr     = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func runtimeConfig(caller common.Address) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot:    ".",
		Caller:         caller,
		NonInteractive: true,
	}
}

// memRepo is an in-memory ProtocolRepository with the same swap-and-pop
// semantics as the file-backed adapter.
type memRepo struct {
	entries []common.Address
	index   map[common.Address]int
}

func newMemRepo(protocols ...common.Address) *memRepo {
	r := &memRepo{index: make(map[common.Address]int)}
	for _, p := range protocols {
		r.index[p] = len(r.entries)
		r.entries = append(r.entries, p)
	}
	return r
}

func (r *memRepo) Add(ctx context.Context, protocol common.Address) (bool, error) {
	if _, exists := r.index[protocol]; exists {
		return false, nil
	}
	r.index[protocol] = len(r.entries)
	r.entries = append(r.entries, protocol)
	return true, nil
}

func (r *memRepo) Remove(ctx context.Context, protocol common.Address) (bool, error) {
	pos, exists := r.index[protocol]
	if !exists {
		return false, nil
	}
	last := len(r.entries) - 1
	if pos != last {
		moved := r.entries[last]
		r.entries[pos] = moved
		r.index[moved] = pos
	}
	r.entries = r.entries[:last]
	delete(r.index, protocol)
	return true, nil
}

func (r *memRepo) Contains(ctx context.Context, protocol common.Address) (bool, error) {
	_, exists := r.index[protocol]
	return exists, nil
}

func (r *memRepo) List(ctx context.Context) ([]common.Address, error) {
	snapshot := make([]common.Address, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot, nil
}

func (r *memRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(r.entries)), nil
}

// memOwners is an in-memory OwnershipStore.
type memOwners struct {
	owner       common.Address
	initialized bool
}

func newMemOwners(owner common.Address) *memOwners {
	return &memOwners{owner: owner, initialized: true}
}

func (o *memOwners) Initialize(ctx context.Context, initialOwner common.Address) error {
	if o.initialized {
		return domain.ErrAlreadyInitialized
	}
	if domain.IsZeroAddress(initialOwner) {
		return domain.ErrInvalidOwner
	}
	o.owner = initialOwner
	o.initialized = true
	return nil
}

func (o *memOwners) Owner(ctx context.Context) (common.Address, error) {
	if !o.initialized {
		return common.Address{}, domain.ErrNotInitialized
	}
	return o.owner, nil
}

func (o *memOwners) RequireOwner(ctx context.Context, caller common.Address) error {
	if domain.IsZeroAddress(o.owner) || caller != o.owner {
		return domain.UnauthorizedAccountErr{Account: caller}
	}
	return nil
}

func (o *memOwners) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	if err := o.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if domain.IsZeroAddress(newOwner) {
		return domain.ErrInvalidOwner
	}
	o.owner = newOwner
	return nil
}

func (o *memOwners) RenounceOwnership(ctx context.Context, caller common.Address) error {
	if err := o.RequireOwner(ctx, caller); err != nil {
		return err
	}
	o.owner = common.Address{}
	return nil
}

// captureSink records emitted events.
type captureSink struct {
	events []domain.Event
}

func (s *captureSink) Emit(ctx context.Context, event domain.Event) {
	s.events = append(s.events, event)
}

// stubSource serves canned yields and optionally fails for one protocol.
type stubSource struct {
	yields map[common.Address]*uint256.Int
	failOn *common.Address
}

func (s *stubSource) GetYield(ctx context.Context, protocol, user common.Address) (*uint256.Int, error) {
	if s.failOn != nil && protocol == *s.failOn {
		return nil, fmt.Errorf("protocol unreachable")
	}
	if amount, ok := s.yields[protocol]; ok {
		return amount.Clone(), nil
	}
	return uint256.NewInt(0), nil
}

// stubSelector returns a preset choice.
type stubSelector struct {
	choice common.Address
}

func (s *stubSelector) SelectProtocol(ctx context.Context, protocols []common.Address, prompt string) (common.Address, error) {
	return s.choice, nil
}

var _ usecase.ProtocolRepository = (*memRepo)(nil)
var _ usecase.OwnershipStore = (*memOwners)(nil)
var _ usecase.EventSink = (*captureSink)(nil)
var _ usecase.YieldSource = (*stubSource)(nil)
var _ usecase.ProtocolSelector = (*stubSelector)(nil)
