package services

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"flashdeck/internal/models"
	"flashdeck/internal/repositories"
	"flashdeck/internal/utils"
)

const resetTokenTTLHours = 24

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService interface {
	Register(email, password string) (*models.User, error)
	Login(email, password string) (*models.User, error)
	VerifyEmail(token string) error
	ResendVerification(email string) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
}

type userService struct {
	repo   repositories.UserRepository
	emails EmailService
	auth   AuthService
}

func NewUserService(repo repositories.UserRepository, emails EmailService, auth AuthService) UserService {
	return &userService{
		repo:   repo,
		emails: emails,
		auth:   auth,
	}
}

// Register creates an unverified account and sends the verification
// email best-effort: a delivery failure is logged, never surfaced (the
// user can request a resend).
func (s *userService) Register(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, newValidationError("Email and password are required")
	}
	if !emailRe.MatchString(email) {
		return nil, newValidationError("Invalid email format")
	}
	if pv := utils.ValidatePassword(password); !pv.IsValid {
		return nil, &ValidationError{Errors: pv.Errors}
	}

	// advisory check, the unique constraint is the real guard
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	token, err := utils.NewToken(32)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      hash,
		EmailVerified:     false,
		VerificationToken: &token,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.emails != nil {
		if err := s.emails.SendVerificationEmail(user.Email, token); err != nil {
			log.Printf("[user][register] failed to send verification email to %s: %v", user.Email, err)
		}
	}
	return user, nil
}

// Login checks the credentials. A missing account and a wrong password
// produce the same error so callers cannot tell which part was wrong.
func (s *userService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	return user, nil
}

// VerifyEmail is single-use: the first call flips email_verified and
// clears the token, so a replay lands on ErrTokenNotFound.
func (s *userService) VerifyEmail(token string) error {
	user, err := s.repo.GetByVerificationToken(token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrTokenNotFound
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	return s.repo.MarkVerified(user.ID)
}

// ResendVerification returns nil for unknown emails so the endpoint
// cannot be used to enumerate accounts. An already-verified account is
// reported distinctly, which intentionally reveals verification state.
func (s *userService) ResendVerification(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		log.Printf("[user][resend-verification] request for unknown email %q", email)
		return nil
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	token, err := utils.NewToken(32)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateVerificationToken(user.ID, token); err != nil {
		return err
	}
	if s.emails != nil {
		if err := s.emails.SendVerificationEmail(user.Email, token); err != nil {
			log.Printf("[user][resend-verification] failed to send email to %s: %v", user.Email, err)
		}
	}
	return nil
}

// RequestPasswordReset overwrites any previous reset token with a fresh
// one expiring in 24 hours. Unknown emails succeed silently.
func (s *userService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		log.Printf("[user][forgot-password] request for unknown email %q", email)
		return nil
	}

	token, err := utils.NewToken(32)
	if err != nil {
		return err
	}
	expires := utils.TokenExpiry(resetTokenTTLHours)
	if err := s.repo.SetResetToken(user.ID, token, expires); err != nil {
		return err
	}
	if s.emails != nil {
		if err := s.emails.SendPasswordResetEmail(user.Email, token); err != nil {
			log.Printf("[user][forgot-password] failed to send email to %s: %v", user.Email, err)
		}
	}
	return nil
}

// ResetPassword consumes the token: on success the new hash is stored
// and the token cleared in the same update, so it cannot authorize a
// second change. An expired token stays in place until the next
// forgot-password request overwrites it.
func (s *userService) ResetPassword(token, newPassword string) error {
	if strings.TrimSpace(token) == "" || newPassword == "" {
		return newValidationError("Token and new password are required")
	}
	if pv := utils.ValidatePassword(newPassword); !pv.IsValid {
		return &ValidationError{Errors: pv.Errors}
	}

	user, err := s.repo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if user == nil || user.ResetTokenExpiresAt == nil {
		return ErrTokenNotFound
	}
	if time.Now().After(*user.ResetTokenExpiresAt) {
		return ErrResetTokenExpired
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordClearReset(user.ID, hash)
}
