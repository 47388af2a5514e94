package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blogauth/config"
	"blogauth/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:     Apply every pending migration
// - down:   Roll back the most recent migration
// - status: Print the applied state of every migration

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand string, args []string) error {
	var migrate func(context.Context, *sql.DB) error
	switch subcommand {
	case "up":
		migrate = migrations.Up
	case "down":
		migrate = migrations.Down
	case "status":
		migrate = migrations.Status
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", subcommand)
	}

	cmd := flag.NewFlagSet(subcommand, flag.ExitOnError)
	dsn := cmd.String("dsn", "", "PostgreSQL connection string; defaults to the postgres section of config.yaml")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	if *dsn == "" {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cfg.Postgres == nil {
			return errors.New("postgres configuration is required")
		}
		*dsn = cfg.Postgres.Master.DSN(cfg.Postgres)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open PostgreSQL")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return migrate(ctx, db)
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply every pending migration")
	fmt.Println("  down     Roll back the most recent migration")
	fmt.Println("  status   Print the applied state of every migration")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -dsn     PostgreSQL connection string (default: built from config.yaml)")
}
