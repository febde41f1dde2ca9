package main

import (
	"context"
	"os/signal"
	"syscall"

	"restaurant-saas/config"
	"restaurant-saas/logger"
	"restaurant-saas/stats-svc/internal/service"
	"restaurant-saas/stats-svc/internal/storage"

	"go.uber.org/zap"
)

const consumerGroup = "stats-svc"

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Sync()

	if cfg.KafkaBroker == "" {
		logger.Log.Fatal("KAFKA_BROKER is required")
	}

	rdb := config.MustInitRedis(cfg)
	if rdb == nil {
		logger.Log.Fatal("REDIS_HOST is required")
	}
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, cfg.OrderEventsTopic, consumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Stats service starting",
		zap.String("topic", cfg.OrderEventsTopic),
		zap.String("group", consumerGroup))

	service.NewConsumer(reader, storage.NewStore(rdb)).Start(ctx)
}
