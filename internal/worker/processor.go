package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
	"github.com/XDOOPAPP/ocr-service/internal/extract"
	"github.com/XDOOPAPP/ocr-service/internal/recognize"
)

type JobRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error
	MarkFailed(ctx context.Context, id uuid.UUID, errText string) error
}

type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type QRDetector interface {
	Detect(image []byte) (*entity.QRResult, error)
}

type EventPublisher interface {
	PublishCompleted(ctx context.Context, event entity.JobCompletedEvent) error
}

// DefaultLanguages are the recognition hints for the target documents.
var DefaultLanguages = []string{"eng", "vie"}

// Processor drives one job through the extraction pipeline: download the
// image, try structured QR extraction first, fall back to OCR, persist the
// outcome and publish a completion event.
type Processor struct {
	repo      JobRepo
	fetcher   ImageFetcher
	qr        QRDetector
	engine    recognize.Engine
	events    EventPublisher
	languages []string
	logger    *slog.Logger
}

func NewProcessor(repo JobRepo, fetcher ImageFetcher, qr QRDetector, engine recognize.Engine, events EventPublisher, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		repo:      repo,
		fetcher:   fetcher,
		qr:        qr,
		engine:    engine,
		events:    events,
		languages: DefaultLanguages,
		logger:    logger,
	}
}

// Process runs the pipeline for one claimed job id. Every failure past the
// initial load is terminal: the job lands in failed with the error message
// and is never retried. Re-running a terminal job re-executes extraction and
// overwrites the previous result.
func (p *Processor) Process(ctx context.Context, jobID string) error {
	start := time.Now()

	id, err := uuid.Parse(jobID)
	if err != nil {
		p.logger.Error("worker.job.bad_id", "job_id", jobID, "err", err)
		return err
	}

	job, err := p.repo.GetByID(ctx, id)
	if err != nil {
		// nothing to mark failed; the row does not exist
		p.logger.Error("worker.job.load_failed", "job_id", id, "err", err)
		return fmt.Errorf("job %s not found: %w", id, err)
	}

	if err := p.repo.MarkProcessing(ctx, id); err != nil {
		p.logger.Error("worker.job.mark_processing_failed", "job_id", id, "err", err)
		return err
	}
	p.logger.Info("worker.job.processing", "job_id", id, "file_url", job.FileURL)

	if err := p.run(ctx, job); err != nil {
		if failErr := p.repo.MarkFailed(ctx, id, err.Error()); failErr != nil {
			p.logger.Error("worker.job.mark_failed_failed", "job_id", id, "err", failErr)
		}
		p.logger.Error("worker.job.failed",
			"job_id", id,
			"duration_ms", time.Since(start).Milliseconds(),
			"err", err,
		)
		return err
	}

	p.logger.Info("worker.job.completed",
		"job_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Processor) run(ctx context.Context, job *entity.Job) error {
	image, err := p.fetcher.Fetch(ctx, job.FileURL)
	if err != nil {
		return fmt.Errorf("failed to download image: %v", err)
	}

	result := p.tryQR(job.ID, image)

	var expense entity.ExpenseData
	var recognized entity.JobResult

	switch {
	case result != nil:
		// structured path: the QR payload alone carries the expense
		expense = extract.ExpenseFromInvoice(result)
		recognized = entity.JobResult{
			RawText:    result.RawData,
			Confidence: result.Confidence,
			HasQRCode:  true,
			QRData:     result,
			Expense:    expense,
		}
	default:
		rec, err := p.engine.Recognize(ctx, image, p.languages)
		if err != nil {
			return fmt.Errorf("failed to perform OCR: %v", err)
		}
		expense = extract.ParseExpenseText(rec.Text, rec.Confidence)
		recognized = entity.JobResult{
			RawText:    rec.Text,
			Confidence: rec.Confidence,
			HasQRCode:  false,
			Expense:    expense,
		}
	}

	payload, err := json.Marshal(recognized)
	if err != nil {
		return fmt.Errorf("failed to encode result: %v", err)
	}
	if err := p.repo.MarkCompleted(ctx, job.ID, payload); err != nil {
		return fmt.Errorf("failed to persist result: %v", err)
	}

	event := entity.JobCompletedEvent{
		JobID:   job.ID,
		UserID:  job.UserID,
		Expense: expense,
		FileURL: job.FileURL,
	}
	if err := p.events.PublishCompleted(ctx, event); err != nil {
		return fmt.Errorf("failed to publish completion event: %v", err)
	}
	return nil
}

// tryQR attempts the QR-first path. A usable outcome needs a decoded
// payload that also parsed into the invoice schema; anything else, including
// images the decoder cannot read at all, routes into the OCR fallback.
func (p *Processor) tryQR(jobID uuid.UUID, image []byte) *entity.QRResult {
	result, err := p.qr.Detect(image)
	if err != nil {
		p.logger.Warn("worker.qr.unusable", "job_id", jobID, "err", err)
		return nil
	}
	if result == nil {
		p.logger.Info("worker.qr.miss", "job_id", jobID)
		return nil
	}
	if result.Invoice == nil {
		p.logger.Info("worker.qr.unparsed", "job_id", jobID)
		return nil
	}
	return result
}
