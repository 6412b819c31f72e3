package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/XDOOPAPP/ocr-service/internal/extract"
	"github.com/XDOOPAPP/ocr-service/internal/fetch"
	"github.com/XDOOPAPP/ocr-service/internal/recognize"
	"github.com/XDOOPAPP/ocr-service/internal/repository/postgresql"
	"github.com/XDOOPAPP/ocr-service/internal/repository/rabbitmq"
	"github.com/XDOOPAPP/ocr-service/internal/service"
	"github.com/XDOOPAPP/ocr-service/internal/worker"
)

const completedRoutingKey = "job.completed"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using OS environment")
	}

	pgDSN := mustEnv(logger, "POSTGRES_DSN")
	redisAddr := mustEnv(logger, "REDIS_ADDR")
	rabbitURL := mustEnv(logger, "RABBITMQ_URL")

	queueKey := envOr("REDIS_QUEUE_KEY", "ocr:jobs:queue")
	processingKey := envOr("REDIS_PROCESSING_KEY", queueKey+":processing")
	exchange := envOr("RABBITMQ_EXCHANGE", "ocr.events")
	// extraction is CPU bound; size the pool near the core count
	workersCount := envIntOr("WORKERS", runtime.NumCPU())

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

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		logger.Error("rabbitmq connect failed", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	publisher, err := rabbitmq.NewPublisher(conn, exchange, completedRoutingKey)
	if err != nil {
		logger.Error("rabbitmq publisher init failed", "err", err)
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgresql.NewJobRepository(pool)
	queue := service.NewRedisJobQueue(rdb, queueKey, processingKey)
	fetcher := fetch.NewDownloader(fetch.DefaultTimeout, logger)
	qr := extract.NewQRExtractor(logger)
	engine := recognize.NewTesseract(logger)

	processor := worker.NewProcessor(repo, fetcher, qr, engine, publisher, logger)
	workerPool := worker.NewPool(queue, processor, workersCount, logger)

	// reaper: return claimed-but-unacked jobs to the queue after a crash
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := queue.RequeueStale(ctx, 100)
				if err != nil {
					logger.Error("requeue error", "err", err)
					continue
				}
				if n > 0 {
					logger.Info("requeued stale jobs", "count", n)
				}
			}
		}
	}()

	logger.Info("worker started",
		"workers", workersCount,
		"queue_key", queueKey,
		"exchange", exchange,
	)
	workerPool.Run(ctx)

	logger.Info("worker stopped")
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

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
