package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"libraryhub/database"
	"libraryhub/internal/config"
	"libraryhub/internal/logging"
	httpapi "libraryhub/internal/microservices/http-api"
	"libraryhub/internal/microservices/http-api/cache"
	"libraryhub/internal/microservices/http-api/handler"
	"libraryhub/internal/microservices/http-api/middleware"
	"libraryhub/internal/microservices/http-api/repository"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type stores struct {
	users   repository.UserRepository
	books   repository.BookRepository
	borrows repository.BorrowRepository
	ping    handler.PingFunc
	close   func()
}

func main() {
	if err := run(); err != nil {
		slog.Error("api_server_failed", "error", err.Error())
		os.Exit(1)
	}
}

// run owns every resource it opens, so all deferred cleanup happens before main exits.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("storage init (%s): %w", cfg.StorageDriver, err)
	}
	defer st.close()

	var borrowCache service.BorrowListCache
	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			// the API still works without the cache
			logger.Warn("redis_unavailable", "error", err.Error())
		} else {
			c := cache.NewBorrowListCache(client, cfg.CacheDuration(), logger)
			defer c.Close()
			borrowCache = c
			logger.Info("redis_cache_enabled", "ttl", cfg.CacheDuration().String())
		}
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Users:          service.NewUserService(st.users, logger),
		Books:          service.NewBookService(st.books, logger),
		Borrows:        service.NewBorrowService(st.borrows, st.users, st.books, borrowCache, logger),
		Ping:           st.ping,
		Logger:         logger,
		RateLimiter:    middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server_stopped_gracefully")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.StorageDriver == "memory" {
		mem := repository.NewMemoryStore()
		logger.Warn("using_in_memory_storage")
		return &stores{
			users:   mem.Users(),
			books:   mem.Books(),
			borrows: mem.Borrows(),
			ping:    mem.Ping,
			close:   func() {},
		}, nil
	}

	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:   repository.NewUserRepository(db.Gorm),
		books:   repository.NewBookRepository(db.Gorm),
		borrows: repository.NewBorrowRepository(db.Gorm),
		ping:    db.Ping,
		close:   db.Close,
	}, nil
}
