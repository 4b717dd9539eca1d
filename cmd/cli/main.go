package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/bookshelf/book"
	bookpostgres "github.com/marcelsud/bookshelf/book/postgres"
	booksqlite "github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/user"
	userpostgres "github.com/marcelsud/bookshelf/internal/user/postgres"
	usersqlite "github.com/marcelsud/bookshelf/internal/user/sqlite"
	"github.com/marcelsud/bookshelf/seed"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

/*
CLI do bookshelf: gerencia contas e catálogos direto no banco, sem passar pela API.

Exemplos:
  go run ./cmd/cli user register --username ana --email ana@example.com
  go run ./cmd/cli books list --owner ana@example.com --sort title
  go run ./cmd/cli --backend postgres books stats --owner ana@example.com
*/

// app holds what the subcommands share. It is built once in PersistentPreRunE.
type app struct {
	books   *book.Service
	users   *user.Service
	closers []func() error
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var backend string

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Manage bookshelf accounts and catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.SlotBackend = backend
				cfg.UserBackend = backend
			}
			return a.open(cmd.Context(), cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: sqlite or postgres (default from config)")

	root.AddCommand(newUserCmd(a), newBooksCmd(a))
	return root
}

func (a *app) open(ctx context.Context, cfg *config.Config) error {
	list, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	var slot book.Slot
	switch cfg.SlotBackend {
	case config.BackendSQLite:
		s, err := booksqlite.NewSlot(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() error { return s.Close(ctx) })
		slot = s
	case config.BackendPostgres:
		s, err := bookpostgres.NewSlot(cfg.PostgresConnectionString())
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() error { return s.Close(ctx) })
		if err := s.CreateTable(ctx); err != nil {
			return err
		}
		slot = s
	default:
		return fmt.Errorf("backend %q is not supported by the CLI", cfg.SlotBackend)
	}

	var repo user.Repository
	switch cfg.UserBackend {
	case config.BackendPostgres:
		r, err := userpostgres.NewRepository(cfg.PostgresConnectionString())
		if err != nil {
			return err
		}
		a.closers = append(a.closers, r.Close)
		if err := r.CreateTable(ctx); err != nil {
			return err
		}
		repo = r
	default:
		r, err := usersqlite.NewRepository(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, r.Close)
		repo = r
	}

	a.books = book.NewService(slot, list, zerolog.New(os.Stderr).With().Timestamp().Logger())
	a.users = user.NewService(repo)
	return nil
}
