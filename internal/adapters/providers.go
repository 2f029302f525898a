package adapters

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/vaultscope/yctl/internal/adapters/events"
	"github.com/vaultscope/yctl/internal/adapters/interactive"
	"github.com/vaultscope/yctl/internal/adapters/ownership"
	"github.com/vaultscope/yctl/internal/adapters/progress"
	"github.com/vaultscope/yctl/internal/adapters/repository/protocols"
	"github.com/vaultscope/yctl/internal/adapters/yieldsource"
	"github.com/vaultscope/yctl/internal/domain/config"
	"github.com/vaultscope/yctl/internal/usecase"
)

// ProvideProjectPath provides the project path from RuntimeConfig
func ProvideProjectPath(cfg *config.RuntimeConfig) string {
	return cfg.ProjectRoot
}

// ProvideYieldSource selects the RPC source when an endpoint is configured,
// the deterministic mock otherwise
func ProvideYieldSource(cfg *config.RuntimeConfig) (usecase.YieldSource, error) {
	if cfg.RPCURL == "" {
		return yieldsource.NewMockSource(), nil
	}

	source, err := yieldsource.NewRPCSource()
	if err != nil {
		return nil, err
	}
	if err := source.Connect(context.Background(), cfg.RPCURL); err != nil {
		return nil, fmt.Errorf("failed to connect yield source: %w", err)
	}
	return source, nil
}

// RepositorySet provides filesystem-backed state
var RepositorySet = wire.NewSet(
	protocols.NewFileRepository,
	wire.Bind(new(usecase.ProtocolRepository), new(*protocols.FileRepository)),

	ownership.NewFileStore,
	wire.Bind(new(usecase.OwnershipStore), new(*ownership.FileStore)),
)

// EventSet provides the boundary event sink
var EventSet = wire.NewSet(
	events.NewLogSink,
	wire.Bind(new(usecase.EventSink), new(*events.LogSink)),
)

// ProgressSet provides terminal progress reporting
var ProgressSet = wire.NewSet(
	progress.NewSpinnerSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerSink)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProtocolSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProjectPath,
	ProvideYieldSource,
	RepositorySet,
	EventSet,
	ProgressSet,
	InteractiveSet,
)
