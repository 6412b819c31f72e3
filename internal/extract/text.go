package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

const fallbackDescription = "OCR Scanned Receipt"

var (
	// keyword-prefixed amount ("Total: 150,000") tried before a bare
	// currency-suffixed number ("150.000 đ").
	amountRe   = regexp.MustCompile(`(?i)(?:total|amount|tổng|thanh toán)[:\s]*([0-9,.]+)`)
	currencyRe = regexp.MustCompile(`(?i)([0-9,.]+)\s*(?:đ|vnd|₫|usd|\$)`)
	dateRe     = regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	sepRe      = regexp.MustCompile(`[,.]`)
)

var textDateFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
}

// ParseExpenseText heuristically derives an expense record from free-form
// recognized text. Best effort: amount defaults to 0, date to now and the
// description to a generic label when nothing matches.
func ParseExpenseText(text string, confidence float64) entity.ExpenseData {
	return entity.ExpenseData{
		Amount:      parseTextAmount(text),
		Description: parseTextDescription(text),
		SpentAt:     parseTextDate(text),
		Category:    ClassifyCategory(text),
		Confidence:  confidence,
		Source:      entity.SourceOCR,
	}
}

func parseTextAmount(text string) float64 {
	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		m = currencyRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0
	}
	// All separators stripped: "150.000" reads as 150000.
	v, err := strconv.ParseFloat(sepRe.ReplaceAllString(m[1], ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseTextDate(text string) time.Time {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Now()
	}
	for _, layout := range textDateFormats {
		if t, err := time.ParseInLocation(layout, m[1], time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func parseTextDescription(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return fallbackDescription
}
