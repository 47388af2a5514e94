package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"blogauth/config"
	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/lifecycle"
	"blogauth/internal/infra/auth"
	logs "blogauth/internal/infra/log"
	"blogauth/internal/infra/persistence"
	"blogauth/internal/usecase"
	"blogauth/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedFlags struct {
	username  string
	email     string
	password  string
	roles     string
	reconcile bool
}

type seedDeps struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	IdentityStore usecase.IdentityStore
	Syncer        usecase.MirrorSyncer
	Reconciler    usecase.MirrorReconciler
}

func main() {
	var flags seedFlags
	flag.StringVar(&flags.username, "username", "admin", "Username of the seeded identity")
	flag.StringVar(&flags.email, "email", "admin@localhost", "E-mail of the seeded identity")
	flag.StringVar(&flags.password, "password", os.Getenv("SEED_PASSWORD"), "Password of the seeded identity (default: $SEED_PASSWORD)")
	flag.StringVar(&flags.roles, "roles", entity.RoleAdministrator.String(), "Comma separated roles")
	flag.BoolVar(&flags.reconcile, "reconcile", false, "Run one mirror reconcile pass after seeding")
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags seedFlags) error {
	var deps seedDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.New,
			auth.NewBcryptHasher,
			impl.NewIdentityStore,
			impl.NewMirrorSyncer,
			impl.NewMirrorReconciler,
		),
		fx.Populate(&deps),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	if deps.Config.Storage.Driver == config.StorageDriverMemory {
		return errors.New("seeding the memory driver has no lasting effect")
	}

	ctx := context.Background()
	if flags.password != "" {
		if err := seedIdentity(ctx, deps, flags); err != nil {
			return err
		}
	} else {
		deps.Logger.Info("No password given, skipping identity seed")
	}

	if flags.reconcile {
		report, err := deps.Reconciler.Reconcile(ctx)
		if err != nil {
			return err
		}
		deps.Logger.Info("Mirror reconciled",
			slog.Int("scanned", report.Scanned),
			slog.Int("repaired", report.Repaired),
			slog.Int("failed", report.Failed),
		)
	}

	return nil
}

// seedIdentity creates the identity once. An existing identity is left untouched.
func seedIdentity(ctx context.Context, deps seedDeps, flags seedFlags) error {
	identity, err := deps.IdentityStore.Create(ctx, usecase.CreateIdentityInput{
		Username: flags.username,
		Email:    flags.email,
		Password: flags.password,
		Roles:    entity.RolesFromStrings(strings.Split(flags.roles, ",")),
	})
	if errors.Is(err, domainerrors.ErrUsernameTaken) {
		deps.Logger.Info("Identity already exists", slog.String("username", flags.username))

		return nil
	}
	if err != nil {
		return err
	}

	deps.Logger.Info("Identity seeded",
		slog.String("identityID", identity.ID.String()),
		slog.String("username", identity.Username),
	)

	if err := deps.Syncer.Sync(ctx, identity); err != nil {
		deps.Logger.Warn("Mirror not updated, run with -reconcile to repair", slog.Any("error", err))
	}

	return nil
}
