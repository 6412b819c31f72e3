package entity

import "github.com/google/uuid"

// JobCompletedEvent is published to the expense service after a job completes.
type JobCompletedEvent struct {
	JobID   uuid.UUID   `json:"jobId"`
	UserID  string      `json:"userId"`
	Expense ExpenseData `json:"expenseData"`
	FileURL string      `json:"fileUrl"`
}
