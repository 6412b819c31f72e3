package extract

import (
	"fmt"
	"log/slog"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

// QRConfidence is the fixed confidence assigned to decoded QR payloads.
// Decoding is binary success/fail, so the constant signals near-certain
// rather than a measured score.
const QRConfidence = 98

// QRExtractor locates and decodes a QR code in raw image bytes.
type QRExtractor struct {
	reader gozxing.Reader
	logger *slog.Logger
}

func NewQRExtractor(logger *slog.Logger) *QRExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &QRExtractor{reader: qrcode.NewQRCodeReader(), logger: logger}
}

// Detect returns the decoded QR payload, or nil when the image holds no code.
// "No code found" is not an error; an error means the bytes could not be
// decoded to pixels at all, which callers route into the OCR fallback.
func (e *QRExtractor) Detect(data []byte) (*entity.QRResult, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(toRGBA(img))
	if err != nil {
		return nil, fmt.Errorf("building bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := e.reader.Decode(bmp, hints)
	if err != nil {
		e.logger.Debug("extract.qr.miss", "err", err)
		return nil, nil
	}

	raw := result.GetText()
	e.logger.Debug("extract.qr.hit", "len", len(raw))

	return &entity.QRResult{
		RawData:    raw,
		Confidence: QRConfidence,
		Invoice:    ParseInvoiceQR(raw),
	}, nil
}
