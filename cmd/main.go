package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/alert_sync_client/internal/api"
	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/cache"
	"github.com/shenikar/alert_sync_client/internal/config"
	"github.com/shenikar/alert_sync_client/internal/gateway"
	v1 "github.com/shenikar/alert_sync_client/internal/handler/http/v1"
	"github.com/shenikar/alert_sync_client/internal/scheduler"
	"github.com/shenikar/alert_sync_client/internal/service"
	"github.com/shenikar/alert_sync_client/pkg/logger"
	"github.com/shenikar/alert_sync_client/pkg/postgres"
	redisclient "github.com/shenikar/alert_sync_client/pkg/redis"
	sqliteclient "github.com/shenikar/alert_sync_client/pkg/sqlite"
	"github.com/sirupsen/logrus"
)

// runMigrations применяет миграции схемы хранилища снимков
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	var sourceURL, databaseURL string

	switch cfg.CacheDriver {
	case config.CacheDriverSQLite:
		sourceURL = "file://migrations/sqlite"
		databaseURL = "sqlite://" + cfg.CachePath
	case config.CacheDriverPostgres:
		sourceURL = "file://migrations/postgres"
		databaseURL = cfg.DatabaseURL
		if !strings.HasPrefix(databaseURL, "pgx5://") {
			databaseURL = strings.Replace(databaseURL, "postgres://", "pgx5://", 1)
		}
	default:
		// Redis обходится без схемы
		return nil
	}

	log.Info("Running snapshot store migrations...")

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Snapshot store migrations applied successfully")
	return nil
}

// newCacheBackend создает бэкенд хранилища снимков согласно конфигурации
func newCacheBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (cache.Backend, func(), error) {
	switch cfg.CacheDriver {
	case config.CacheDriverRedis:
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to Redis")
		return cache.NewRedisBackend(client, cfg.CacheTTL), func() { client.Close() }, nil

	case config.CacheDriverPostgres:
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return cache.NewPostgresBackend(dbpool), dbpool.Close, nil

	default:
		db, err := sqliteclient.NewSQLiteDB(cfg.CachePath)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", cfg.CachePath).Info("Opened local snapshot store")
		return cache.NewSQLiteBackend(db), func() { db.Close() }, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run snapshot store migrations: %v", err)
	}

	// Хранилище снимков
	backend, closeBackend, err := newCacheBackend(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer closeBackend()

	snapshots := cache.NewSnapshotCache(backend, cfg.CacheTTL, log)

	// Держатель сессионного токена
	tokens := auth.NewSessionTokenProvider(cfg.SessionToken)

	// Клиент бэкенда
	backendClient := api.NewClient(cfg.BackendURL, cfg.BackendTimeout, tokens, log)

	// Планировщик опроса
	sched := scheduler.New(tokens, cfg.RetryMax, cfg.RetryDelay, log)

	// Ядро синхронизации
	syncService := service.NewSyncService(cfg, backendClient, snapshots, sched, log)
	syncService.Start()
	defer syncService.Stop()

	// Шлюз мутаций
	mutateGateway := gateway.NewGateway(backendClient, syncService, tokens, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(syncService, mutateGateway, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	apiGroup := router.Group("/api/v1")
	apiGroup.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(apiGroup)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("Local consumer API started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Sync core gracefully stopped")
}
