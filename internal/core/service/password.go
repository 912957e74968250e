package service

import (
	"unicode"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// ValidatePassword enforces the password policy: at least 8 characters with
// an uppercase letter, a lowercase letter, a digit, and a special character.
// Returns domain.ErrWeakPassword on violation. The check runs before any
// store call so weak passwords never reach the network.
func ValidatePassword(password string) error {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if len([]rune(password)) < 8 || !upper || !lower || !digit || !special {
		return domain.ErrWeakPassword
	}
	return nil
}
