package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"flashdeck/internal/models"
)

// ErrDuplicateEmail maps the users_email_key unique violation. The
// constraint is the authoritative guard; the pre-insert existence check
// in the service is advisory only.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByVerificationToken(token string) (*models.User, error)
	GetByResetToken(token string) (*models.User, error)

	// verification
	MarkVerified(userID string) error
	UpdateVerificationToken(userID, token string) error

	// password reset
	SetResetToken(userID, token string, expiresAt time.Time) error
	UpdatePasswordClearReset(userID, passwordHash string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, email, password_hash, email_verified,
	verification_token, reset_token, reset_token_expires_at, created_at
`

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (id, email, password_hash, email_verified, verification_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.DB.QueryRow(q,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.EmailVerified,
		user.VerificationToken,
	).Scan(&user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) GetByVerificationToken(token string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE verification_token = $1`, token)
}

func (r *userRepository) GetByResetToken(token string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE reset_token = $1`, token)
}

// getOne returns (nil, nil) for no rows so callers can tell "absent"
// from a store failure.
func (r *userRepository) getOne(q string, arg any) (*models.User, error) {
	u := &models.User{}
	var (
		vt  sql.NullString
		rt  sql.NullString
		rte sql.NullTime
	)
	err := r.DB.QueryRow(q, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.EmailVerified,
		&vt, &rt, &rte, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if vt.Valid {
		s := vt.String
		u.VerificationToken = &s
	}
	if rt.Valid {
		s := rt.String
		u.ResetToken = &s
	}
	if rte.Valid {
		t := rte.Time
		u.ResetTokenExpiresAt = &t
	}
	return u, nil
}

func (r *userRepository) MarkVerified(userID string) error {
	const q = `
		UPDATE users
		SET email_verified = TRUE, verification_token = NULL
		WHERE id = $1
	`
	_, err := r.DB.Exec(q, userID)
	return err
}

func (r *userRepository) UpdateVerificationToken(userID, token string) error {
	const q = `
		UPDATE users SET verification_token = $1 WHERE id = $2
	`
	_, err := r.DB.Exec(q, token, userID)
	return err
}

func (r *userRepository) SetResetToken(userID, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET reset_token = $1, reset_token_expires_at = $2
		WHERE id = $3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

func (r *userRepository) UpdatePasswordClearReset(userID, passwordHash string) error {
	const q = `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL
		WHERE id = $2
	`
	_, err := r.DB.Exec(q, passwordHash, userID)
	return err
}
