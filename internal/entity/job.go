package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further status transition may happen.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func (s JobStatus) Valid() bool {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Job tracks one image's extraction lifecycle.
// Result is set only when status is completed, ErrorMessage only when failed,
// CompletedAt exactly when the status is terminal.
type Job struct {
	ID           uuid.UUID       `json:"id"`
	UserID       string          `json:"userId"`
	FileURL      string          `json:"fileUrl"`
	Status       JobStatus       `json:"status"`
	Result       json.RawMessage `json:"resultJson,omitempty"`
	ErrorMessage *string         `json:"errorMessage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
}
