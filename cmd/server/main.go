package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gowthamsai117/financial-app/internal/api"
	"github.com/gowthamsai117/financial-app/internal/config"
	"github.com/gowthamsai117/financial-app/internal/db"
	"github.com/gowthamsai117/financial-app/internal/logging"
	"github.com/gowthamsai117/financial-app/internal/store"
	"github.com/gowthamsai117/financial-app/internal/transactions"
)

func main() {
	envErr := config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Warn("no .env file loaded", zap.Error(envErr))
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("error initializing database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer st.Close()

	service := transactions.NewService(st, logger)
	server := api.NewServer(service, logger, cfg.CORSAllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("driver", cfg.DBDriver))
		errCh <- server.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("error starting server", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}
	}
}

// openStore connects to the configured database and ensures the
// transactions table exists before any request is served.
func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		logger.Info("connecting to postgres",
			zap.String("host", cfg.DBHost),
			zap.String("port", cfg.DBPort),
			zap.String("user", cfg.DBUser),
			zap.String("name", cfg.DBName),
		)
		sqlDB, err := db.InitDB(context.Background(), cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		return store.NewSQLStore(sqlDB, logger), nil
	default:
		logger.Info("opening sqlite", zap.String("path", cfg.SQLitePath))
		gormDB, err := db.InitSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(gormDB, logger), nil
	}
}
