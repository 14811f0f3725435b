package checkout

import "strings"

const maxCardDigits = 16

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// groupByFour joins s in blocks of four separated by spaces
func groupByFour(s string) string {
	var parts []string
	for i := 0; i < len(s); i += 4 {
		end := i + 4
		if end > len(s) {
			end = len(s)
		}
		parts = append(parts, s[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatCardNumber keeps up to 16 digits and groups them in blocks of four
func FormatCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) > maxCardDigits {
		v = v[:maxCardDigits]
	}
	return groupByFour(v)
}

// FormatExpiryDate renders digits as MM/YY once two digits are present
func FormatExpiryDate(value string) string {
	v := digitsOnly(value)
	if len(v) < 2 {
		return v
	}
	end := len(v)
	if end > 4 {
		end = 4
	}
	return v[:2] + "/" + v[2:end]
}

// FormatCVV keeps at most four digits
func FormatCVV(value string) string {
	v := digitsOnly(value)
	if len(v) > 4 {
		v = v[:4]
	}
	return v
}

// MaskCardNumber hides all but the last four digits
func MaskCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) <= 4 {
		return v
	}
	return groupByFour(strings.Repeat("*", len(v)-4) + v[len(v)-4:])
}
