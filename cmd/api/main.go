package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/XDOOPAPP/ocr-service/docs"
	"github.com/XDOOPAPP/ocr-service/internal/repository/postgresql"
	"github.com/XDOOPAPP/ocr-service/internal/service"
	httptransport "github.com/XDOOPAPP/ocr-service/internal/transport/http"
)

// @title OCR Service API
// @version 1.0
// @description Receipt/invoice extraction jobs: submit an image, poll the job, read the expense data.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using OS environment")
	}

	pgDSN := mustEnv(logger, "POSTGRES_DSN")
	redisAddr := mustEnv(logger, "REDIS_ADDR")
	httpAddr := envOr("HTTP_ADDR", ":8080")
	queueKey := envOr("REDIS_QUEUE_KEY", "ocr:jobs:queue")
	processingKey := envOr("REDIS_PROCESSING_KEY", queueKey+":processing")

	pool, err := postgresql.NewPool(ctx, pgDSN)
	if err != nil {
		logger.Error("pg connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("redis connect failed", "err", err)
		os.Exit(1)
	}

	repo := postgresql.NewJobRepository(pool)
	queue := service.NewRedisJobQueue(rdb, queueKey, processingKey)
	svc := service.NewOCRService(repo, queue, logger)
	handler := httptransport.NewHandler(svc)

	srv := &http.Server{
		Addr:    httpAddr,
		Handler: httptransport.Routes(handler, logger),
	}

	go func() {
		logger.Info("api started", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("api stopped")
}

func mustEnv(logger *slog.Logger, key string) string {
	v := os.Getenv(key)
	if v == "" {
		logger.Error("missing env", "key", key)
		os.Exit(1)
	}
	return v
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
