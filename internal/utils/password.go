package utils

import "unicode"

// PasswordValidation collects every violated rule, not just the first.
type PasswordValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// ValidatePassword checks the password policy: at least 8 characters,
// one uppercase letter, one lowercase letter and one digit. It is the
// single implementation shared by registration and password reset.
func ValidatePassword(password string) PasswordValidation {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain at least one number")
	}

	return PasswordValidation{IsValid: len(errs) == 0, Errors: errs}
}
