package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
	bookpostgres "github.com/marcelsud/bookshelf/book/postgres"
	bookredis "github.com/marcelsud/bookshelf/book/redis"
	booksqlite "github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/http/chi"
	"github.com/marcelsud/bookshelf/internal/session"
	"github.com/marcelsud/bookshelf/internal/user"
	userpostgres "github.com/marcelsud/bookshelf/internal/user/postgres"
	usersqlite "github.com/marcelsud/bookshelf/internal/user/sqlite"
	"github.com/marcelsud/bookshelf/metrics"
	"github.com/marcelsud/bookshelf/seed"
	goredis "github.com/redis/go-redis/v9"
)

const TIMEOUT = 30 * time.Second

/* “a porta de entrada e saída da minha aplicação”
* É no main.go que é feita toda a “amarração” dos demais pacotes:
* iniciamos as dependências, fazemos as configurações e a invocação dos pacotes que desempenham a lógica de negócio.
* https://eltonminetto.dev/post/2022-07-06-error-handling-cli-applications-golang/
 */

type slotCloser interface {
	book.Slot
	Close(ctx context.Context) error
}

type userRepository interface {
	user.Repository
	Close() error
}

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if cfg.JWTSecret == "" {
		fmt.Println("JWT_SECRET is required")
		return
	}
	logger := httplog.NewLogger("bookshelf", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	var redisClient *goredis.Client
	if cfg.UsesRedis() {
		redisClient, err = connectRedis(ctx, cfg)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer redisClient.Close()
	}

	slot, err := openSlot(ctx, cfg, redisClient)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer slot.Close(ctx)

	repo, err := openUsers(ctx, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close()

	books, err := seed.Load(cfg.SeedFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	var store session.Store = session.NewMemoryStore()
	if cfg.SessionBackend == config.BackendRedis {
		store = session.NewRedisStore(redisClient)
	}

	bookService := book.NewService(slot, books, logger)
	userService := user.NewService(repo)
	sessions := session.NewManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour, store)

	exporter, err := metrics.NewOTelExporter(metrics.NewCatalogCollector(bookService, userService))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, chi.Deps{
		Logger:   logger,
		Books:    bookService,
		Users:    userService,
		Sessions: sessions,
		Metrics:  exporter.ServeHTTP(),
		PageSize: cfg.PageSize,
	})
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().
		Str("port", cfg.Port).
		Str("slot_backend", cfg.SlotBackend).
		Str("user_backend", cfg.UserBackend).
		Str("session_backend", cfg.SessionBackend).
		Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func connectRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	return client, nil
}

func openSlot(ctx context.Context, cfg *config.Config, client *goredis.Client) (slotCloser, error) {
	switch cfg.SlotBackend {
	case config.BackendRedis:
		return bookredis.NewSlotWithClient(client), nil
	case config.BackendPostgres:
		slot, err := bookpostgres.NewSlotWithPoolConfig(
			cfg.PostgresConnectionString(),
			cfg.PostgresMaxOpenConns,
			cfg.PostgresMaxIdleConns,
			cfg.PostgresConnMaxLifeMin,
		)
		if err != nil {
			return nil, err
		}
		if err := slot.CreateTable(ctx); err != nil {
			slot.Close(ctx)
			return nil, err
		}
		return slot, nil
	default:
		return booksqlite.NewSlot(ctx, cfg.SQLitePath)
	}
}

func openUsers(ctx context.Context, cfg *config.Config) (userRepository, error) {
	if cfg.UserBackend == config.BackendPostgres {
		repo, err := userpostgres.NewRepositoryWithPoolConfig(
			cfg.PostgresConnectionString(),
			cfg.PostgresMaxOpenConns,
			cfg.PostgresMaxIdleConns,
			cfg.PostgresConnMaxLifeMin,
		)
		if err != nil {
			return nil, err
		}
		if err := repo.CreateTable(ctx); err != nil {
			repo.Close()
			return nil, err
		}
		return repo, nil
	}
	return usersqlite.NewRepository(ctx, cfg.SQLitePath)
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
