package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats an amount as pesos with thousands separators and
// exactly 2 decimal places (e.g., $1,234,567.89). NaN renders as $0.00 and
// infinities saturate at the largest float.
func FormatMoney(amount float64) string {
	amount = roundCents(amount)
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "$" + applyThousandsGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatMXN is FormatMoney with the currency code appended, as shown on the
// public house pages.
func FormatMXN(amount float64) string {
	return FormatMoney(amount) + " MXN"
}

// FormatQuantity renders a quantity with 2 decimals and thousands separators.
func FormatQuantity(qty float64) string {
	raw := fmt.Sprintf("%.2f", sanitizeAmount(qty))
	parts := strings.SplitN(raw, ".", 2)
	return applyThousandsGrouping(parts[0]) + "." + parts[1]
}

// applyThousandsGrouping inserts a comma every 3 digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ParseNumber is the single entry point for numeric form input. It accepts
// "1,234.50", "$ 99" and " 12 ", and maps anything that is empty,
// unparseable, negative, NaN or infinite to 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return sanitizeAmount(v)
}

// ParseCount parses a non-negative whole number (bedrooms, bathrooms).
// Fractions are truncated; invalid input is 0.
func ParseCount(s string) int {
	return int(ParseNumber(s))
}
