package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/catalog"
	"movievibe/lobbyhub/internal/config"
	"movievibe/lobbyhub/internal/handler"
	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/repository"
	"movievibe/lobbyhub/internal/service"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize metadata cache (Redis or in-memory)
	var cache repository.Cache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cache = repository.NewRedisCache(redisClient)
		logger.Info("using Redis metadata cache")
	case "memory":
		cache = repository.NewMemoryCache()
		logger.Info("using in-memory metadata cache")
	default:
		logger.Fatal("unknown cache backend", zap.String("backend", cfg.Cache.Backend))
	}

	// 6. Initialize store
	store := repository.NewPGStore(db)

	// 7. Initialize services
	var catalogService service.CatalogService
	if cfg.Catalog.BaseURL != "" {
		catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, nil)
		catalogService = service.NewCatalogService(catalogClient, cache, cfg.Catalog.TitleTTL)
		logger.Info("catalog service initialized", zap.String("base_url", cfg.Catalog.BaseURL))
	}

	lobbyService := service.NewLobbyService(store, catalogService, cfg.Lobby, logger)
	swipeService := service.NewSwipeService(store, cfg.Lobby, logger)

	// 8. Initialize handlers
	lobbyHandler := handler.NewLobbyHandler(lobbyService)
	swipeHandler := handler.NewSwipeHandler(swipeService)

	var qrHandler *handler.QRHandler
	if cfg.QR.RendererURL != "" {
		renderer := service.NewHTTPQRRenderer(cfg.QR.RendererURL, nil)
		qrHandler = handler.NewQRHandler(lobbyService, renderer, logger)
		logger.Info("QR renderer configured", zap.String("renderer_url", cfg.QR.RendererURL))
	}

	// 9. Setup router
	router := handler.SetupRouter(cfg, logger, lobbyHandler, swipeHandler, qrHandler)

	// 10. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 11. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
