package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const maskChar = "*"

// IsCardNumber reports whether s is a syntactically valid card number
// (digits only, Luhn checksum).
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsExpiry reports whether s is exactly four digits in MMYY form.
func IsExpiry(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	month := (s[0]-'0')*10 + (s[1] - '0')
	return month >= 1 && month <= 12
}

// MaskCard keeps the first and last four digits and masks the middle.
// Numbers shorter than eight characters have no safe masking window and are
// returned as-is.
func MaskCard(number string) string {
	if len(number) < 8 {
		return number
	}
	return number[:4] + strings.Repeat(maskChar, len(number)-8) + number[len(number)-4:]
}
