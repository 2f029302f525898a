package ownership

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

const (
	DataDirName = ".yctl"
	OwnerFile   = "owner.json"
)

// ownerFile is the on-disk shape of the ownership record.
type ownerFile struct {
	Version string `json:"version"`
	Owner   string `json:"owner"`
}

// FileStore is the durable single-owner record backing the ownership
// capability. After renounce the owner is the zero address and every
// mutation gate fails.
type FileStore struct {
	rootDir     string
	mu          sync.RWMutex
	owner       common.Address
	initialized bool
}

// NewFileStore creates an ownership store rooted at the project dir
func NewFileStore(rootDir string) (*FileStore, error) {
	s := &FileStore{rootDir: rootDir}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load owner record: %w", err)
	}

	return s, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.rootDir, DataDirName, OwnerFile)
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file ownerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	s.owner = common.HexToAddress(file.Owner)
	s.initialized = true
	return nil
}

// save writes the owner record atomically. Caller must hold the write lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(ownerFile{
		Version: "1.0.0",
		Owner:   s.owner.Hex(),
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path()), 0755); err != nil {
		return err
	}

	tmpPath := s.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path())
}

// Initialize sets the one-time initial owner
func (s *FileStore) Initialize(ctx context.Context, initialOwner common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return domain.ErrAlreadyInitialized
	}
	if domain.IsZeroAddress(initialOwner) {
		return fmt.Errorf("initial owner is the zero address: %w", domain.ErrInvalidOwner)
	}

	s.owner = initialOwner
	if err := s.save(); err != nil {
		s.owner = common.Address{}
		return err
	}
	s.initialized = true
	return nil
}

// Owner returns the current owner address
func (s *FileStore) Owner(ctx context.Context) (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return common.Address{}, domain.ErrNotInitialized
	}
	return s.owner, nil
}

// RequireOwner gates mutations on the caller being the current owner. Once
// ownership is renounced no caller passes.
func (s *FileStore) RequireOwner(ctx context.Context, caller common.Address) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if domain.IsZeroAddress(s.owner) || caller != s.owner {
		return domain.UnauthorizedAccountErr{Account: caller}
	}
	return nil
}

// TransferOwnership moves ownership to newOwner, gated by the current owner
func (s *FileStore) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if domain.IsZeroAddress(s.owner) || caller != s.owner {
		return domain.UnauthorizedAccountErr{Account: caller}
	}
	if domain.IsZeroAddress(newOwner) {
		return fmt.Errorf("new owner is the zero address: %w", domain.ErrInvalidOwner)
	}

	return s.setOwner(newOwner)
}

// RenounceOwnership sets the owner to the zero address, permanently locking
// all mutations
func (s *FileStore) RenounceOwnership(ctx context.Context, caller common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if domain.IsZeroAddress(s.owner) || caller != s.owner {
		return domain.UnauthorizedAccountErr{Account: caller}
	}

	return s.setOwner(common.Address{})
}

// setOwner persists an ownership change. Caller must hold the write lock.
func (s *FileStore) setOwner(newOwner common.Address) error {
	prev := s.owner
	s.owner = newOwner
	if err := s.save(); err != nil {
		s.owner = prev
		return err
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.OwnershipStore = (*FileStore)(nil)
