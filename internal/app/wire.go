//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/vaultscope/yctl/internal/adapters"
	"github.com/vaultscope/yctl/internal/config"
	"github.com/vaultscope/yctl/internal/logging"
	"github.com/vaultscope/yctl/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewInitProject,
		usecase.NewAddProtocol,
		usecase.NewRemoveProtocol,
		usecase.NewListProtocols,
		usecase.NewCheckProtocol,
		usecase.NewCalculateYield,
		usecase.NewManageOwnership,

		// App
		NewApp,
	)
	return nil, nil
}
