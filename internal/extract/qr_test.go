package extract

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

func encodeQRPNG(t *testing.T, payload string) []byte {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(payload, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("encoding qr: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, matrix); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func blankPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestDetectRoundTripsInvoicePayload(t *testing.T) {
	e := NewQRExtractor(nil)

	result, err := e.Detect(encodeQRPNG(t, fullInvoiceQR))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if result == nil {
		t.Fatal("expected a decoded payload")
	}
	if result.RawData != fullInvoiceQR {
		t.Errorf("RawData = %q, want %q", result.RawData, fullInvoiceQR)
	}
	if result.Confidence != QRConfidence {
		t.Errorf("Confidence = %v, want %v", result.Confidence, QRConfidence)
	}
	if result.Invoice == nil {
		t.Fatal("payload should have parsed into an invoice")
	}
	if result.Invoice.TotalPayment == nil || *result.Invoice.TotalPayment != 1100000 {
		t.Errorf("TotalPayment = %v, want 1100000", result.Invoice.TotalPayment)
	}
}

func TestDetectNonInvoicePayload(t *testing.T) {
	e := NewQRExtractor(nil)

	result, err := e.Detect(encodeQRPNG(t, "https://example.com/receipt"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if result == nil {
		t.Fatal("expected a decoded payload")
	}
	if result.Invoice != nil {
		t.Errorf("Invoice = %+v, want nil for a non-invoice payload", result.Invoice)
	}
}

func TestDetectNoCodeIsNotAnError(t *testing.T) {
	e := NewQRExtractor(nil)

	result, err := e.Detect(blankPNG(t))
	if err != nil {
		t.Fatalf("blank image should not error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for an image without a code", result)
	}
}

func TestDetectUndecodableBytes(t *testing.T) {
	e := NewQRExtractor(nil)

	result, err := e.Detect([]byte("not an image at all"))
	if err == nil {
		t.Fatal("expected an error for bytes that are not an image")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on error", result)
	}
}
