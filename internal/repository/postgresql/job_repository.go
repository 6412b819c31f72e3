package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

var ErrNotFound = errors.New("not found")

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, user_id, file_url, status, result_json, error_message, created_at, completed_at`

func (r *JobRepository) Create(ctx context.Context, userID, fileURL string) (*entity.Job, error) {
	const q = `
INSERT INTO ocr_jobs (user_id, file_url, status)
VALUES ($1, $2, 'queued')
RETURNING ` + jobColumns + `;
`
	row := r.pool.QueryRow(ctx, q, userID, fileURL)
	return scanJob(row)
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	const q = `
SELECT ` + jobColumns + `
FROM ocr_jobs
WHERE id = $1;
`
	job, err := scanJob(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// markProcessingQuery also clears the terminal columns so a redelivered job
// never shows status='processing' next to a stale result or completion time.
const markProcessingQuery = `
UPDATE ocr_jobs
SET status='processing', result_json=NULL, error_message=NULL, completed_at=NULL
WHERE id=$1;
`

func (r *JobRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, markProcessingQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkCompleted persists the result payload and closes the job.
func (r *JobRepository) MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error {
	if len(result) == 0 {
		result = json.RawMessage(`{}`)
	}
	const q = `
UPDATE ocr_jobs
SET status='completed', result_json=$2, error_message=NULL, completed_at=now()
WHERE id=$1;
`
	tag, err := r.pool.Exec(ctx, q, id, result)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed records the human-readable failure reason and closes the job.
func (r *JobRepository) MarkFailed(ctx context.Context, id uuid.UUID, errText string) error {
	const q = `
UPDATE ocr_jobs
SET status='failed', error_message=$2, completed_at=now()
WHERE id=$1;
`
	tag, err := r.pool.Exec(ctx, q, id, errText)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns one page of a user's jobs, newest first, with the total
// count for pagination metadata.
func (r *JobRepository) ListByUser(ctx context.Context, userID string, status *entity.JobStatus, offset, limit int) ([]entity.Job, int64, error) {
	countQ, q, args := buildListQuery(userID, status, offset, limit)

	var total int64
	if err := r.pool.QueryRow(ctx, countQ, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]entity.Job, 0, limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// buildListQuery assembles the count and page queries for one user's history.
// Offset and limit ride in args with the rest, never in the SQL text; args'
// last two entries are offset and limit, so the count query drops them.
func buildListQuery(userID string, status *entity.JobStatus, offset, limit int) (countQ, q string, args []any) {
	q = `
SELECT ` + jobColumns + `
FROM ocr_jobs
WHERE user_id = $1
`
	countQ = `SELECT count(*) FROM ocr_jobs WHERE user_id = $1`
	args = []any{userID}

	if status != nil {
		q += ` AND status = $2`
		countQ += ` AND status = $2`
		args = append(args, string(*status))
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC OFFSET $%d LIMIT $%d;`, len(args)+1, len(args)+2)
	args = append(args, offset, limit)
	return countQ, q, args
}

func (r *JobRepository) Stats(ctx context.Context) (*entity.AdminStats, error) {
	stats := &entity.AdminStats{}

	const totalsQ = `SELECT count(*), count(DISTINCT user_id) FROM ocr_jobs;`
	if err := r.pool.QueryRow(ctx, totalsQ).Scan(&stats.TotalJobs, &stats.TotalUsers); err != nil {
		return nil, err
	}

	const byStatusQ = `SELECT status, count(*) FROM ocr_jobs GROUP BY status;`
	rows, err := r.pool.Query(ctx, byStatusQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completed, failed int64
	for rows.Next() {
		var sc entity.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		switch sc.Status {
		case entity.StatusCompleted:
			completed = sc.Count
		case entity.StatusFailed:
			failed = sc.Count
		}
		stats.ByStatus = append(stats.ByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if terminal := completed + failed; terminal > 0 {
		stats.SuccessRate = float64(completed) / float64(terminal) * 100
	}

	const recentQ = `
SELECT ` + jobColumns + `
FROM ocr_jobs
ORDER BY created_at DESC
LIMIT 10;
`
	recentRows, err := r.pool.Query(ctx, recentQ)
	if err != nil {
		return nil, err
	}
	defer recentRows.Close()

	for recentRows.Next() {
		job, err := scanJob(recentRows)
		if err != nil {
			return nil, err
		}
		stats.RecentJobs = append(stats.RecentJobs, *job)
	}
	if err := recentRows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var (
		job        entity.Job
		statusText string
		resultB    []byte
	)
	if err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.FileURL,
		&statusText,
		&resultB, // NULL => nil
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.CompletedAt,
	); err != nil {
		return nil, err
	}
	job.Status = entity.JobStatus(statusText)
	if resultB != nil {
		job.Result = json.RawMessage(resultB)
	}
	return &job, nil
}
