package protocols

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/vaultscope/yctl/internal/usecase"
)

const (
	DataDirName   = ".yctl"
	ProtocolsFile = "protocols.json"
)

// registryFile is the on-disk shape of the protocol registry.
type registryFile struct {
	Version   string   `json:"version"`
	Protocols []string `json:"protocols"`
}

// FileRepository stores the tracked protocol set in a JSON file. The entry
// slice is the authoritative ordered set; the index map is kept consistent
// on every mutation, including the swap step on removal.
type FileRepository struct {
	rootDir string
	mu      sync.RWMutex
	entries []common.Address
	index   map[common.Address]int
}

// NewFileRepository creates a protocol repository rooted at the project dir
func NewFileRepository(rootDir string) (*FileRepository, error) {
	dataDir := filepath.Join(rootDir, DataDirName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", DataDirName, err)
	}

	r := &FileRepository{
		rootDir: rootDir,
		index:   make(map[common.Address]int),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load protocol registry: %w", err)
	}

	return r, nil
}

// load reads the registry file and rebuilds the index
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(r.rootDir, DataDirName, ProtocolsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	r.entries = make([]common.Address, 0, len(file.Protocols))
	for _, hex := range file.Protocols {
		addr := common.HexToAddress(hex)
		if _, dup := r.index[addr]; dup {
			return fmt.Errorf("duplicate protocol %s in registry file", hex)
		}
		r.index[addr] = len(r.entries)
		r.entries = append(r.entries, addr)
	}

	return nil
}

// save writes the registry atomically (temp file + rename). Caller must hold
// the write lock.
func (r *FileRepository) save() error {
	file := registryFile{
		Version: "1.0.0",
		Protocols: lo.Map(r.entries, func(addr common.Address, _ int) string {
			return addr.Hex()
		}),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(r.rootDir, DataDirName, ProtocolsFile)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// Add appends a protocol unless already present. The duplicate check is a
// map lookup since the index is authoritative.
func (r *FileRepository) Add(ctx context.Context, protocol common.Address) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[protocol]; exists {
		return false, nil
	}

	r.entries = append(r.entries, protocol)
	r.index[protocol] = len(r.entries) - 1

	if err := r.save(); err != nil {
		// Roll back the in-memory mutation so a failed persist leaves no
		// partial state
		delete(r.index, protocol)
		r.entries = r.entries[:len(r.entries)-1]
		return false, err
	}

	return true, nil
}

// Remove deletes a protocol via swap-and-pop: the last entry takes the
// removed entry's slot and its index is updated. Order is not preserved
// across removals.
func (r *FileRepository) Remove(ctx context.Context, protocol common.Address) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, exists := r.index[protocol]
	if !exists {
		return false, nil
	}

	prev := make([]common.Address, len(r.entries))
	copy(prev, r.entries)

	last := len(r.entries) - 1
	if pos != last {
		moved := r.entries[last]
		r.entries[pos] = moved
		r.index[moved] = pos
	}
	r.entries = r.entries[:last]
	delete(r.index, protocol)

	if err := r.save(); err != nil {
		r.entries = prev
		r.rebuildIndex()
		return false, err
	}

	return true, nil
}

// rebuildIndex reconstructs the index from entries. Caller must hold the
// write lock.
func (r *FileRepository) rebuildIndex() {
	r.index = make(map[common.Address]int, len(r.entries))
	for i, addr := range r.entries {
		r.index[addr] = i
	}
}

// Contains reports registry membership
func (r *FileRepository) Contains(ctx context.Context, protocol common.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[protocol]
	return exists, nil
}

// List returns a snapshot copy of the entries in current order
func (r *FileRepository) List(ctx context.Context) ([]common.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]common.Address, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot, nil
}

// Count returns the number of tracked protocols
func (r *FileRepository) Count(ctx context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return uint64(len(r.entries)), nil
}

// Ensure the adapter implements the interface
var _ usecase.ProtocolRepository = (*FileRepository)(nil)
