package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rl1809/stockroom/internal/adapter/handler"
	"github.com/rl1809/stockroom/internal/adapter/storage"
	"github.com/rl1809/stockroom/internal/core/service"
	"github.com/rl1809/stockroom/internal/port"
)

const (
	defaultHTTPAddr = ":8080"
	defaultDBPath   = "stockroom.db"
)

type repositories interface {
	port.InventoryRepository
	port.UserRepository
	Bootstrap(ctx context.Context) error
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpAddr := envOr("STOCKROOM_HTTP_ADDR", defaultHTTPAddr)

	// SQLite is the default store; a MySQL DSN switches the backend.
	var repo repositories
	var db *sql.DB
	if dsn := os.Getenv("STOCKROOM_MYSQL_DSN"); dsn != "" {
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			logger.Fatal("failed to open mysql", zap.Error(err))
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		repo = storage.NewMySQLAdapter(db)
		logger.Info("using mysql store")
	} else {
		dbPath := envOr("STOCKROOM_DB_PATH", defaultDBPath)
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			logger.Fatal("failed to open sqlite", zap.Error(err))
		}
		// The embedded store is a single file; one writer at a time.
		db.SetMaxOpenConns(1)
		repo = storage.NewSQLiteAdapter(db)
		logger.Info("using sqlite store", zap.String("path", dbPath))
	}

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping store", zap.Error(err))
	}
	if err := repo.Bootstrap(ctx); err != nil {
		logger.Fatal("failed to bootstrap schema", zap.Error(err))
	}

	inventoryService := service.NewInventoryService(repo)
	authService := service.NewAuthService(repo)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := handler.NewMetrics(registry)

	httpHandler := handler.NewHTTPHandler(inventoryService, authService, logger)
	mux := http.NewServeMux()
	httpHandler.Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: metrics.Wrap(mux),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	db.Close()
	logger.Info("store closed")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
