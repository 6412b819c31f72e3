package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

var ErrForbidden = errors.New("forbidden")

// Repository port (implementation: postgresql.JobRepository).
type JobRepository interface {
	Create(ctx context.Context, userID, fileURL string) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	ListByUser(ctx context.Context, userID string, status *entity.JobStatus, offset, limit int) ([]entity.Job, int64, error)
	Stats(ctx context.Context) (*entity.AdminStats, error)
}

// Enqueue-only view of the queue, so the API side cannot claim jobs.
type JobQueue interface {
	Enqueue(ctx context.Context, jobID string) error
}

// OCRService covers the submission and query flows: create+enqueue a job,
// fetch one with an ownership check, paginated history, admin aggregates.
type OCRService struct {
	repo   JobRepository
	queue  JobQueue
	logger *slog.Logger
}

func NewOCRService(repo JobRepository, queue JobQueue, logger *slog.Logger) *OCRService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRService{repo: repo, queue: queue, logger: logger}
}

// Scan creates a queued job for the image and hands its id to the worker
// queue. The caller gets the job row back immediately; extraction is async.
func (s *OCRService) Scan(ctx context.Context, userID, fileURL string) (*entity.Job, error) {
	if fileURL == "" {
		return nil, errors.New("fileUrl is required")
	}

	job, err := s.repo.Create(ctx, userID, fileURL)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, job.ID.String()); err != nil {
		return nil, err
	}

	s.logger.Info("service.scan.queued", "job_id", job.ID, "user_id", userID)
	return job, nil
}

func (s *OCRService) GetJob(ctx context.Context, userID string, id uuid.UUID) (*entity.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, ErrForbidden
	}
	return job, nil
}

type HistoryQuery struct {
	Status *entity.JobStatus
	Page   int
	Limit  int
}

type HistoryMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type HistoryPage struct {
	Data []entity.Job `json:"data"`
	Meta HistoryMeta  `json:"meta"`
}

func (s *OCRService) History(ctx context.Context, userID string, q HistoryQuery) (*HistoryPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	jobs, total, err := s.repo.ListByUser(ctx, userID, q.Status, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		totalPages++
	}

	return &HistoryPage{
		Data: jobs,
		Meta: HistoryMeta{
			Total:      total,
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *OCRService) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	return s.repo.Stats(ctx)
}
