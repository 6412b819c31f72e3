package extract

import (
	"testing"
	"time"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

func TestParseExpenseText_KeywordAmount(t *testing.T) {
	got := ParseExpenseText("CUA HANG ABC\nTổng: 1.234.567\nCam on quy khach", 82.5)
	if got.Amount != 1234567 {
		t.Fatalf("expected 1234567, got %v", got.Amount)
	}
	if got.Confidence != 82.5 {
		t.Fatalf("expected confidence passthrough, got %v", got.Confidence)
	}
	if got.Source != entity.SourceOCR {
		t.Fatalf("expected source ocr, got %q", got.Source)
	}
}

func TestParseExpenseText_CurrencySuffixFallback(t *testing.T) {
	got := ParseExpenseText("HIGHLANDS COFFEE\n150.000 đ", 70)
	if got.Amount != 150000 {
		t.Fatalf("expected 150000, got %v", got.Amount)
	}
}

func TestParseExpenseText_NoAmount(t *testing.T) {
	got := ParseExpenseText("no numbers here", 50)
	if got.Amount != 0 {
		t.Fatalf("expected 0, got %v", got.Amount)
	}
}

func TestParseExpenseText_Date(t *testing.T) {
	got := ParseExpenseText("STORE\n12/25/2023\nTotal: 100", 90)
	want := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.Local)
	if !got.SpentAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.SpentAt)
	}
}

func TestParseExpenseText_UnparseableDateDefaultsToNow(t *testing.T) {
	before := time.Now()
	got := ParseExpenseText("STORE\n45/99/2023", 90)
	if got.SpentAt.Before(before) {
		t.Fatalf("expected fallback to now, got %v", got.SpentAt)
	}
}

func TestParseExpenseText_Description(t *testing.T) {
	got := ParseExpenseText("\n\n  CUA HANG TIEN LOI  \nrow 2", 60)
	if got.Description != "CUA HANG TIEN LOI" {
		t.Fatalf("expected first non-blank line, got %q", got.Description)
	}

	blank := ParseExpenseText("   \n \n", 60)
	if blank.Description != "OCR Scanned Receipt" {
		t.Fatalf("expected fallback label, got %q", blank.Description)
	}
}

func TestParseExpenseText_Category(t *testing.T) {
	got := ParseExpenseText("coffee shop receipt", 60)
	if got.Category == nil || *got.Category != "food" {
		t.Fatalf("expected food category, got %v", got.Category)
	}

	none := ParseExpenseText("xyz 123", 60)
	if none.Category != nil {
		t.Fatalf("expected nil category, got %q", *none.Category)
	}
}
