package app

import (
	"log/slog"

	"github.com/vaultscope/yctl/internal/domain/config"
	"github.com/vaultscope/yctl/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	InitProject     *usecase.InitProject
	AddProtocol     *usecase.AddProtocol
	RemoveProtocol  *usecase.RemoveProtocol
	ListProtocols   *usecase.ListProtocols
	CheckProtocol   *usecase.CheckProtocol
	CalculateYield  *usecase.CalculateYield
	ManageOwnership *usecase.ManageOwnership
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	initProject *usecase.InitProject,
	addProtocol *usecase.AddProtocol,
	removeProtocol *usecase.RemoveProtocol,
	listProtocols *usecase.ListProtocols,
	checkProtocol *usecase.CheckProtocol,
	calculateYield *usecase.CalculateYield,
	manageOwnership *usecase.ManageOwnership,
) (*App, error) {
	return &App{
		Config:          cfg,
		Logger:          logger,
		InitProject:     initProject,
		AddProtocol:     addProtocol,
		RemoveProtocol:  removeProtocol,
		ListProtocols:   listProtocols,
		CheckProtocol:   checkProtocol,
		CalculateYield:  calculateYield,
		ManageOwnership: manageOwnership,
	}, nil
}
