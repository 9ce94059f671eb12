package models

import (
	"strconv"
	"strings"
)

// FormatIDR renders an amount of Indonesian Rupiah with id-ID grouping,
// e.g. 150000 -> "Rp 150.000". Amounts are whole rupiah; there is no
// fractional currency handling.
func FormatIDR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
