package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/XDOOPAPP/ocr-service/internal/service"
)

// Pool runs N extraction workers fed by a single claiming listener, so the
// CPU-heavy QR decoding and OCR never block the queue-consuming loop.
type Pool struct {
	queue      service.Queue
	processor  *Processor
	workers    int
	claimDelay time.Duration
	logger     *slog.Logger
}

func NewPool(queue service.Queue, processor *Processor, workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		queue:      queue,
		processor:  processor,
		workers:    workers,
		claimDelay: 5 * time.Second,
		logger:     logger,
	}
}

func (p *Pool) Run(ctx context.Context) {
	p.logger.Info("worker.pool.started", "workers", p.workers)

	jobCh := make(chan string)

	for i := 0; i < p.workers; i++ {
		go func(n int) {
			for jobID := range jobCh {
				if err := p.processor.Process(ctx, jobID); err != nil {
					p.logger.Error("worker.process.error", "worker", n, "job_id", jobID, "err", err)
				}

				// Ack either way: the job is already terminal in the store
				// (or failed before any write, and the reaper requeues it).
				if ackErr := p.queue.Ack(ctx, jobID); ackErr != nil {
					p.logger.Error("worker.ack.error", "worker", n, "job_id", jobID, "err", ackErr)
				}
			}
		}(i + 1)
	}

	for {
		select {
		case <-ctx.Done():
			close(jobCh)
			p.logger.Info("worker.pool.stopped")
			return
		default:
			jobID, err := p.queue.ClaimBlocking(ctx, p.claimDelay)
			if err != nil {
				// timeout / redis.Nil / ctx cancel; not fatal
				continue
			}
			select {
			case jobCh <- jobID:
			case <-ctx.Done():
				close(jobCh)
				return
			}
		}
	}
}
