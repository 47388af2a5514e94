// Package persistence selects the storage driver behind the repository interfaces.
package persistence

import (
	"log/slog"

	"blogauth/config"
	"blogauth/internal/domain/repository"
	"blogauth/internal/errors"
	"blogauth/internal/infra/persistence/memory"
	"blogauth/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the parameters required to open the stores
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every repository the use cases depend on, backed by one driver.
type Repositories struct {
	fx.Out

	TxManager      repository.TransactionManager
	IdentityRepo   repository.IdentityRepository
	ResetTokenRepo repository.ResetTokenRepository
	MirrorRepo     repository.MirrorRepository
}

// New opens the configured storage driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; credentials are lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager:      store.TransactionManager(),
			IdentityRepo:   store.IdentityRepository(),
			ResetTokenRepo: store.ResetTokenRepository(),
			MirrorRepo:     store.MirrorRepository(),
		}, nil

	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:      postgres.NewTransactionManager(db),
			IdentityRepo:   postgres.NewIdentityRepository(db),
			ResetTokenRepo: postgres.NewResetTokenRepository(db),
			MirrorRepo:     postgres.NewMirrorRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
