package extract

import "testing"

func TestNormalizeAmount_StripsCurrencyNoise(t *testing.T) {
	v, ok := NormalizeAmount("1100000 VND")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 1100000 {
		t.Fatalf("expected 1100000, got %v", v)
	}
}

func TestNormalizeAmount_DotsAreNotThousandsSeparators(t *testing.T) {
	// separators are stripped, not interpreted: the first dot survives as a
	// decimal point and the value comes out "inflated".
	v, ok := NormalizeAmount("1.234.567đ")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 1.234 {
		t.Fatalf("expected 1.234, got %v", v)
	}
}

func TestNormalizeAmount_DecimalValue(t *testing.T) {
	v, ok := NormalizeAmount("$45.50")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 45.5 {
		t.Fatalf("expected 45.5, got %v", v)
	}
}

func TestNormalizeAmount_EmptyAndUnparseable(t *testing.T) {
	if _, ok := NormalizeAmount(""); ok {
		t.Fatalf("expected empty input to fail")
	}
	if _, ok := NormalizeAmount("n/a"); ok {
		t.Fatalf("expected non-numeric input to fail")
	}
	if _, ok := NormalizeAmount("..."); ok {
		t.Fatalf("expected dots-only input to fail")
	}
}
