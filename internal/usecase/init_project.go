package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/domain/config"
)

// InitProject performs one-time construction: project file, data dir, owner
// record, empty registry.
type InitProject struct {
	cfg      *config.RuntimeConfig
	owners   OwnershipStore
	progress ProgressSink
}

// NewInitProject creates a new init use case
func NewInitProject(
	cfg *config.RuntimeConfig,
	owners OwnershipStore,
	progress ProgressSink,
) *InitProject {
	return &InitProject{
		cfg:      cfg,
		owners:   owners,
		progress: progress,
	}
}

// InitProjectParams contains parameters for project initialization
type InitProjectParams struct {
	InitialOwner common.Address
}

// InitProjectResult contains the result of initialization
type InitProjectResult struct {
	ProjectRoot string
	Owner       common.Address
}

// Run initializes the registry with count 0 and the given owner. Fails with
// domain.ErrInvalidOwner for the zero address and refuses to re-initialize.
func (i *InitProject) Run(ctx context.Context, params InitProjectParams) (*InitProjectResult, error) {
	if domain.IsZeroAddress(params.InitialOwner) {
		return nil, fmt.Errorf("initial owner is the zero address: %w", domain.ErrInvalidOwner)
	}

	if err := i.writeProjectFile(); err != nil {
		return nil, err
	}

	if err := i.owners.Initialize(ctx, params.InitialOwner); err != nil {
		return nil, err
	}

	i.progress.Info(fmt.Sprintf("Initialized registry with owner %s", params.InitialOwner.Hex()))

	return &InitProjectResult{
		ProjectRoot: i.cfg.ProjectRoot,
		Owner:       params.InitialOwner,
	}, nil
}

// writeProjectFile creates a minimal yctl.toml so future invocations can
// discover the project root. Existing files are left untouched.
func (i *InitProject) writeProjectFile() error {
	path := filepath.Join(i.cfg.ProjectRoot, "yctl.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content := "# yctl project configuration\n# caller = \"0x...\"\n\n[rpc]\n# url = \"http://localhost:8545\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write yctl.toml: %w", err)
	}
	return nil
}
