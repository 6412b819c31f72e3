package extract

import (
	"testing"
	"time"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

func qrResultFor(t *testing.T, raw string) *entity.QRResult {
	t.Helper()
	inv := ParseInvoiceQR(raw)
	if inv == nil {
		t.Fatalf("test payload did not parse: %q", raw)
	}
	return &entity.QRResult{RawData: raw, Confidence: QRConfidence, Invoice: inv}
}

func TestExpenseFromInvoice_PrefersTotalPayment(t *testing.T) {
	got := ExpenseFromInvoice(qrResultFor(t, fullInvoiceQR))

	if got.Amount != 1100000 {
		t.Fatalf("expected total payment 1100000, got %v", got.Amount)
	}
	if got.Source != entity.SourceQR {
		t.Fatalf("expected source qr, got %q", got.Source)
	}
	if got.Confidence != QRConfidence {
		t.Fatalf("expected confidence %d, got %v", QRConfidence, got.Confidence)
	}
	if got.Category != nil {
		t.Fatalf("expected no category on the qr path, got %q", *got.Category)
	}
}

func TestExpenseFromInvoice_FallsBackToTotalAmount(t *testing.T) {
	raw := "1|C22TAA|00000123|25/12/2023|0101243150|CONG TY TNHH ABC|0109876543|NGUYEN VAN A|1000000"
	got := ExpenseFromInvoice(qrResultFor(t, raw))
	if got.Amount != 1000000 {
		t.Fatalf("expected pre-tax total 1000000, got %v", got.Amount)
	}
}

func TestExpenseFromInvoice_Description(t *testing.T) {
	got := ExpenseFromInvoice(qrResultFor(t, fullInvoiceQR))
	if got.Description != "CONG TY TNHH ABC - 00000123" {
		t.Fatalf("unexpected description %q", got.Description)
	}

	noSeller := "1|C22TAA|00000123|25/12/2023|0101243150||0109876543|NGUYEN VAN A|1000000"
	got = ExpenseFromInvoice(qrResultFor(t, noSeller))
	if got.Description != "Hóa đơn điện tử - 00000123" {
		t.Fatalf("unexpected fallback description %q", got.Description)
	}
}

func TestExpenseFromInvoice_Date(t *testing.T) {
	got := ExpenseFromInvoice(qrResultFor(t, fullInvoiceQR))
	want := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.Local)
	if !got.SpentAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.SpentAt)
	}
}

func TestExpenseFromInvoice_MalformedDateDefaultsToNow(t *testing.T) {
	raw := "1|C22TAA|00000123|late december|0101243150|CONG TY TNHH ABC|0109876543|NGUYEN VAN A|1000000"
	before := time.Now()
	got := ExpenseFromInvoice(qrResultFor(t, raw))
	if got.SpentAt.Before(before) {
		t.Fatalf("expected fallback to now, got %v", got.SpentAt)
	}
}
