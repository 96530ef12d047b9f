package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashdeck/internal/models"
	"flashdeck/internal/repositories"
)

// memUserRepo is an in-memory UserRepository double keyed by id.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByVerificationToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByResetToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) MarkVerified(userID string) error {
	u := r.users[userID]
	u.EmailVerified = true
	u.VerificationToken = nil
	return nil
}

func (r *memUserRepo) UpdateVerificationToken(userID, token string) error {
	r.users[userID].VerificationToken = &token
	return nil
}

func (r *memUserRepo) SetResetToken(userID, token string, expiresAt time.Time) error {
	u := r.users[userID]
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (r *memUserRepo) UpdatePasswordClearReset(userID, passwordHash string) error {
	u := r.users[userID]
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
	return nil
}

// recordingEmails captures outgoing emails; failSend makes every send
// fail to exercise the best-effort paths.
type recordingEmails struct {
	verificationSent []string
	resetSent        []string
	failSend         bool
}

func (e *recordingEmails) SendVerificationEmail(email, token string) error {
	if e.failSend {
		return errors.New("smtp down")
	}
	e.verificationSent = append(e.verificationSent, token)
	return nil
}

func (e *recordingEmails) SendPasswordResetEmail(email, token string) error {
	if e.failSend {
		return errors.New("smtp down")
	}
	e.resetSent = append(e.resetSent, token)
	return nil
}

func newUserServiceForTest() (UserService, *memUserRepo, *recordingEmails) {
	repo := newMemUserRepo()
	emails := &recordingEmails{}
	return NewUserService(repo, emails, NewAuthService()), repo, emails
}

func TestRegister_Success(t *testing.T) {
	svc, repo, emails := newUserServiceForTest()

	user, err := svc.Register("Alice@Example.com", "Abcdefg1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email, "email is stored lowercase")
	assert.False(t, user.EmailVerified)
	require.NotNil(t, user.VerificationToken)
	assert.Len(t, *user.VerificationToken, 64)
	assert.NotEqual(t, "Abcdefg1", user.PasswordHash)

	stored := repo.users[user.ID]
	require.NotNil(t, stored)
	assert.Len(t, emails.verificationSent, 1)
	assert.Equal(t, *user.VerificationToken, emails.verificationSent[0])
}

func TestRegister_DuplicateEmailAnyCasing(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	_, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)

	_, err = svc.Register("ALICE@EXAMPLE.COM", "Abcdefg1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_WeakPasswordCollectsAllErrors(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	_, err := svc.Register("bob@example.com", "abc")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
}

func TestRegister_BadEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	_, err := svc.Register("not-an-email", "Abcdefg1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRegister_EmailSendFailureIsSwallowed(t *testing.T) {
	repo := newMemUserRepo()
	emails := &recordingEmails{failSend: true}
	svc := NewUserService(repo, emails, NewAuthService())

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err, "registration must not fail on email delivery")
	assert.NotNil(t, repo.users[user.ID])
}

func TestLogin_GenericErrorForUnknownAndWrongPassword(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(*user.VerificationToken))

	_, err = svc.Login("nobody@example.com", "Abcdefg1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("alice@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	_, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "Abcdefg1")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	reg, err := svc.Register("Alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(*reg.VerificationToken))

	user, err := svc.Login("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, user.ID)
}

func TestVerifyEmail_SingleUse(t *testing.T) {
	svc, repo, _ := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	token := *user.VerificationToken

	require.NoError(t, svc.VerifyEmail(token))
	stored := repo.users[user.ID]
	assert.True(t, stored.EmailVerified)
	assert.Nil(t, stored.VerificationToken, "token must be cleared")

	// replay with the same token: it no longer matches anyone
	err = svc.VerifyEmail(token)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	svc, _, _ := newUserServiceForTest()
	assert.ErrorIs(t, svc.VerifyEmail("deadbeef"), ErrTokenNotFound)
}

func TestResendVerification_UnknownEmailSilent(t *testing.T) {
	svc, _, emails := newUserServiceForTest()

	require.NoError(t, svc.ResendVerification("nobody@example.com"))
	assert.Empty(t, emails.verificationSent)
}

func TestResendVerification_OverwritesToken(t *testing.T) {
	svc, repo, emails := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	oldToken := *user.VerificationToken

	require.NoError(t, svc.ResendVerification("alice@example.com"))
	stored := repo.users[user.ID]
	require.NotNil(t, stored.VerificationToken)
	assert.NotEqual(t, oldToken, *stored.VerificationToken)
	assert.Len(t, emails.verificationSent, 2)
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(*user.VerificationToken))

	assert.ErrorIs(t, svc.ResendVerification("alice@example.com"), ErrAlreadyVerified)
}

func TestRequestPasswordReset_SetsTokenAndExpiry(t *testing.T) {
	svc, repo, emails := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("alice@example.com"))
	stored := repo.users[user.ID]
	require.NotNil(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *stored.ResetTokenExpiresAt, time.Minute)
	assert.Len(t, emails.resetSent, 1)

	// a second request overwrites the first token
	first := *stored.ResetToken
	require.NoError(t, svc.RequestPasswordReset("alice@example.com"))
	assert.NotEqual(t, first, *repo.users[user.ID].ResetToken)
}

func TestRequestPasswordReset_UnknownEmailSilent(t *testing.T) {
	svc, _, emails := newUserServiceForTest()
	require.NoError(t, svc.RequestPasswordReset("nobody@example.com"))
	assert.Empty(t, emails.resetSent)
}

func TestResetPassword_SingleUse(t *testing.T) {
	svc, repo, _ := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(*user.VerificationToken))
	require.NoError(t, svc.RequestPasswordReset("alice@example.com"))
	token := *repo.users[user.ID].ResetToken

	require.NoError(t, svc.ResetPassword(token, "Newpass1"))

	// new password works, token is consumed
	_, err = svc.Login("alice@example.com", "Newpass1")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ResetPassword(token, "Another1"), ErrTokenNotFound)
}

func TestResetPassword_Expired(t *testing.T) {
	svc, repo, _ := newUserServiceForTest()

	user, err := svc.Register("alice@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset("alice@example.com"))

	expired := time.Now().Add(-time.Hour)
	repo.users[user.ID].ResetTokenExpiresAt = &expired
	token := *repo.users[user.ID].ResetToken

	assert.ErrorIs(t, svc.ResetPassword(token, "Newpass1"), ErrResetTokenExpired)
	// the expired token stays in place until the next request overwrites it
	assert.NotNil(t, repo.users[user.ID].ResetToken)
}

func TestResetPassword_WeakPasswordRejectedBeforeLookup(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	err := svc.ResetPassword("whatever", "short")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
