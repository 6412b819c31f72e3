package recognize

import "context"

// Result is the outcome of one text-recognition pass.
// Confidence is a 0-100 score reported by the engine.
type Result struct {
	Text       string
	Confidence float64
}

// Engine turns image bytes into recognized text.
type Engine interface {
	Recognize(ctx context.Context, image []byte, languages []string) (Result, error)
}
