package extract

import "testing"

func TestClassifyCategory_KeywordHit(t *testing.T) {
	cat := ClassifyCategory("HIGHLANDS COFFEE\nTra sen vang 45.000đ")
	if cat == nil || *cat != "food" {
		t.Fatalf("expected food, got %v", cat)
	}
}

func TestClassifyCategory_Vietnamese(t *testing.T) {
	cat := ClassifyCategory("siêu thị vinmart hóa đơn bán hàng")
	if cat == nil || *cat != "shopping" {
		t.Fatalf("expected shopping, got %v", cat)
	}
}

func TestClassifyCategory_CaseInsensitive(t *testing.T) {
	cat := ClassifyCategory("GRAB RIDE 7:45")
	if cat == nil || *cat != "transport" {
		t.Fatalf("expected transport, got %v", cat)
	}
}

func TestClassifyCategory_FirstCategoryWins(t *testing.T) {
	// both food and transport keywords present; the table order decides
	cat := ClassifyCategory("restaurant near the taxi stand")
	if cat == nil || *cat != "food" {
		t.Fatalf("expected food, got %v", cat)
	}
}

func TestClassifyCategory_NoMatch(t *testing.T) {
	if cat := ClassifyCategory("lorem ipsum dolor sit amet"); cat != nil {
		t.Fatalf("expected nil, got %q", *cat)
	}
}
