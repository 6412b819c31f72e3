package recognize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract runs OCR through the system tesseract library.
// A gosseract client is not safe for concurrent use, so each call gets its
// own short-lived client.
type Tesseract struct {
	logger *slog.Logger
}

func NewTesseract(logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tesseract{logger: logger}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte, languages []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	client := gosseract.NewClient()
	defer client.Close()

	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			return Result{}, fmt.Errorf("setting ocr languages: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return Result{}, fmt.Errorf("loading image for ocr: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognizing text: %w", err)
	}

	confidence := meanWordConfidence(client)

	t.logger.Debug("recognize.ocr.done",
		"chars", len(text),
		"confidence", confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Result{Text: text, Confidence: confidence}, nil
}

// meanWordConfidence averages per-word confidences; tesseract reports them
// on a 0-100 scale already.
func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes))
}
