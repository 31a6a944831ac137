package app

import (
	"context"
	"log/slog"

	"clockify-balance/internal/adapter/clockify"
	msql "clockify-balance/internal/adapter/mysql"
	"clockify-balance/internal/config"
	"clockify-balance/internal/domain"
	"clockify-balance/internal/migrate"
	"clockify-balance/internal/ports"
	"clockify-balance/internal/usecase"
)

// App wires adapters and use cases.
type App struct {
	log      *slog.Logger
	uc       *usecase.BalanceUseCase
	profiles ports.ProfileStore // nil when no MySQL DSN is configured
	store    *msql.Client
}

func New(ctx context.Context, log *slog.Logger, cfg config.Config) (*App, error) {
	provider := clockify.NewClient(cfg.Clockify.BaseURL, log)
	a := &App{
		log: log,
		uc:  &usecase.BalanceUseCase{Log: log, Provider: provider},
	}

	// The profile store is a defaults collaborator, not the data path:
	// the calculator works without it.
	if cfg.MySQL.DSN != "" {
		if err := migrate.Run(ctx, cfg.MySQL.DSN, log); err != nil {
			return nil, err
		}
		store, err := msql.NewClient(ctx, cfg.MySQL.DSN, log)
		if err != nil {
			return nil, err
		}
		a.store = store
		a.profiles = store
	} else {
		log.Info("no MYSQL_DSN configured, profile endpoints disabled")
	}

	return a, nil
}

// ComputeBalance runs a single balance computation.
func (a *App) ComputeBalance(ctx context.Context, req domain.BalanceRequest) (domain.BalanceResult, error) {
	return a.uc.Compute(ctx, req)
}

// Close releases held resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
