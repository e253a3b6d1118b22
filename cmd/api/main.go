package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"spice-pos/internal/config"
	"spice-pos/internal/database"
	"spice-pos/internal/logger"
	"spice-pos/internal/pos"
	"spice-pos/internal/server"
	"spice-pos/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// newStore builds the state store for the configured backend. The redis
// client is returned alongside so rate limiting can share it.
func newStore(cfg *config.Config, log *zap.Logger) (store.Store, *redis.Client, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return store.NewRedisStore(client, cfg.Storage.Key), client, nil

	case "postgres":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db, "migrations", log); err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(db, cfg.Storage.Key), nil, nil

	case "memory":
		return store.NewMemoryStore(), nil, nil

	default:
		return store.NewFileStore(cfg.Storage.FilePath), nil, nil
	}
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting restaurant POS API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// Initialize state store and load the engine
	st, redisClient, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize state store", zap.Error(err))
	}

	engine := pos.NewEngine(context.Background(), st, log)

	// Create server
	srv := server.NewServer(cfg, log, engine, redisClient)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
