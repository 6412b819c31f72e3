package extract

import (
	"strconv"
	"strings"
)

// NormalizeAmount strips every character that is not a digit or a decimal
// point from a currency-like token and parses the longest valid numeric
// prefix. Thousands separators get no special treatment: "1.234.567đ"
// becomes "1.234.567" and parses as 1.234.
func NormalizeAmount(token string) (float64, bool) {
	var b strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err == nil {
		return v, true
	}

	// More than one dot: keep digits up to and including the first
	// fractional run, drop the rest.
	prefix := numericPrefix(cleaned)
	if prefix == "" {
		return 0, false
	}
	v, err = strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func numericPrefix(s string) string {
	sawDot := false
	for i, r := range s {
		if r == '.' {
			if sawDot {
				return s[:i]
			}
			sawDot = true
			continue
		}
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
