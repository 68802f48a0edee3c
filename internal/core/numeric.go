package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeNumber parses a cell into a signed float. Cells may already be
// numeric, or strings in ambiguous Indonesian/English formats ("1.250.000",
// "1,250,000", "1.234,56", "Rp 2.500,75", "- 3.000"). Unparseable input
// yields 0; this function never fails.
func NormalizeNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return normalizeNumericString(n)
	default:
		return normalizeNumericString(fmt.Sprint(v))
	}
}

func normalizeNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Accounting-style parentheses mark a negative value.
	neg := strings.Contains(s, "(") && strings.Contains(s, ")")

	// Keep only digits and separators; a minus anywhere flips the sign.
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.':
			b.WriteRune(r)
		case r == '-':
			neg = true
		}
	}
	t := b.String()
	if t == "" {
		return 0
	}

	lastComma := strings.LastIndex(t, ",")
	lastDot := strings.LastIndex(t, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Both present: the rightmost separator is the decimal one.
		if lastComma > lastDot {
			t = strings.ReplaceAll(t, ".", "")
			i := strings.LastIndex(t, ",")
			t = strings.ReplaceAll(t[:i], ",", "") + "." + t[i+1:]
		} else {
			t = strings.ReplaceAll(t, ",", "")
			i := strings.LastIndex(t, ".")
			t = strings.ReplaceAll(t[:i], ".", "") + t[i:]
		}
	case lastComma >= 0:
		// A lone separator is decimal only with 1-2 trailing digits.
		if decimalTail(t, lastComma) && strings.Count(t, ",") == 1 {
			t = strings.Replace(t, ",", ".", 1)
		} else {
			t = strings.ReplaceAll(t, ",", "")
		}
	case lastDot >= 0:
		if !(decimalTail(t, lastDot) && strings.Count(t, ".") == 1) {
			t = strings.ReplaceAll(t, ".", "")
		}
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	if neg {
		f = -f
	}
	return f
}

func decimalTail(s string, sep int) bool {
	digits := len(s) - sep - 1
	return digits >= 1 && digits <= 2
}
