package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-saas/config"
	"restaurant-saas/logger"
	httpapi "restaurant-saas/restaurant-svc/internal/api/http"
	"restaurant-saas/restaurant-svc/internal/auth"
	"restaurant-saas/restaurant-svc/internal/service"
	"restaurant-saas/restaurant-svc/internal/storage"

	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if cfg.EnsureSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repo.EnsureSchema(ctx); err != nil {
			cancel()
			logger.Log.Fatal("Failed to apply schema", zap.Error(err))
		}
		cancel()
	}

	s3Client, err := config.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to configure object storage", zap.Error(err))
	}
	publicBase := cfg.Storage.PublicURL
	if publicBase == "" {
		publicBase = cfg.Storage.Endpoint
	}
	objects := storage.NewObjectStore(s3Client, cfg.Storage.Bucket, publicBase)

	ownership := service.NewOwnership(repo)
	orders := service.NewOrderService(repo, ownership, service.DefaultQRGenerator{BaseURL: cfg.PublicAppURL})

	var limiter httpapi.Limiter
	var statsReader service.StatsReader
	if rdb := config.MustInitRedis(cfg); rdb != nil {
		defer rdb.Close()
		orders.WithMarkers(storage.NewRedisCache(rdb, idempotencyTTL))
		limiter = storage.NewRateLimiter(rdb, cfg.OrderRateLimit, cfg.OrderRateWindow)
		statsReader = storage.NewStatsReader(rdb)
		logger.Log.Info("Redis enabled", zap.String("addr", cfg.RedisAddr))
	}

	if writer := config.NewKafkaWriter(cfg, cfg.OrderEventsTopic); writer != nil {
		defer writer.Close()
		orders.WithPublisher(storage.NewKafkaPublisher(writer))
		logger.Log.Info("Order events enabled", zap.String("topic", cfg.OrderEventsTopic))
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Restaurants: service.NewRestaurantService(repo),
		Profiles:    service.NewProfileService(repo),
		Categories:  service.NewCategoryService(repo, ownership),
		Items:       service.NewItemService(repo, ownership),
		Sides:       service.NewSideService(repo, ownership),
		Public:      service.NewPublicService(repo),
		Orders:      orders,
		Uploads:     service.NewUploadService(objects),
		Stats:       service.NewStatsService(statsReader, ownership),
	}, auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience), limiter)

	if cfg.JWTSecret == "" {
		logger.Log.Warn("JWT_SECRET is not set; authenticated routes will reject every request")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Log.Info("Restaurant service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
