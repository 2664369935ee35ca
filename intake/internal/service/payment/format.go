package payment

import "strings"

const (
	cardGroupSize = 4
	cardMinRun    = 4
	cardMaxDigits = 16
)

// FormatCardNumber keeps the digits of s and groups the first 4..16 of them in fours.
// With fewer than four digits the digits are returned as they are.
func FormatCardNumber(s string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	if len(digits) < cardMinRun {
		return digits
	}
	if len(digits) > cardMaxDigits {
		digits = digits[:cardMaxDigits]
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/cardGroupSize)
	for i := 0; i < len(digits); i += cardGroupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i:min(i+cardGroupSize, len(digits))])
	}
	return b.String()
}
