package entity

import "time"

type ExpenseSource string

const (
	SourceQR     ExpenseSource = "qr"
	SourceOCR    ExpenseSource = "ocr"
	SourceHybrid ExpenseSource = "hybrid"
)

// ExpenseData is the expense record derived from one receipt image.
// Immutable once built; embedded verbatim into the job's result payload.
type ExpenseData struct {
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	SpentAt     time.Time     `json:"spentAt"`
	Category    *string       `json:"category"`
	Confidence  float64       `json:"confidence"`
	Source      ExpenseSource `json:"source"`
}

// JobResult is the payload persisted on a completed job.
// QRData is null on the OCR path.
type JobResult struct {
	RawText    string      `json:"rawText"`
	Confidence float64     `json:"confidence"`
	HasQRCode  bool        `json:"hasQrCode"`
	QRData     *QRResult   `json:"qrData"`
	Expense    ExpenseData `json:"expenseData"`
}
