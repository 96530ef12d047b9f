package services

import (
	"errors"
	"strings"
)

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrTokenNotFound      = errors.New("invalid or expired token")
	ErrResetTokenExpired  = errors.New("reset token has expired")

	ErrFolderNotFound    = errors.New("folder not found")
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrAccessDenied      = errors.New("access denied")
)

// ValidationError carries every violated input rule so the response can
// enumerate all of them at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func newValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}
