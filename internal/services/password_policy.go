package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

// ValidatePasswordStrength enforces the bar for claiming a seeded
// participant row: at least 8 characters mixing upper case, lower case and
// digits. The same rule guards the command-line password reset.
func ValidatePasswordStrength(password string) error {
	runes := []rune(password)
	if len(runes) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range runes {
		hasUpper = hasUpper || unicode.IsUpper(r)
		hasLower = hasLower || unicode.IsLower(r)
		hasDigit = hasDigit || unicode.IsDigit(r)
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
