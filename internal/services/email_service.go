package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerificationEmail(email, token string) error
	SendPasswordResetEmail(email, token string) error
}

type emailService struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// NewEmailService builds the SMTP-backed notification gateway. baseURL
// is the public frontend origin the verification and reset links point
// at.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, baseURL string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:  dialer,
		from:    fromEmail,
		baseURL: baseURL,
	}
}

func (s *emailService) SendVerificationEmail(email, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Verify Your Email Address")

	body := fmt.Sprintf(`
		<h2>Welcome to Flashdeck!</h2>
		<p>Thank you for signing up. Please verify your email address by opening the link below:</p>
		<p><a href="%s">Verify Email Address</a></p>
		<p>Or copy and paste this link into your browser:</p>
		<p>%s</p>
		<p>If you didn't create an account, you can safely ignore this email.</p>
	`, verificationURL, verificationURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendPasswordResetEmail(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reset Your Password")

	body := fmt.Sprintf(`
		<h2>Password reset requested</h2>
		<p>You requested to reset your password. Open the link below to set a new one:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>Or copy and paste this link into your browser:</p>
		<p>%s</p>
		<p><strong>This link will expire in 24 hours.</strong></p>
		<p>If you did not request a password reset, you can ignore this email.</p>
	`, resetURL, resetURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
