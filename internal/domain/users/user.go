package users

import (
	"errors"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// Errors returned by the auth service
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingCredentials = errors.New("Email and password required")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrNotFound           = errors.New("not found")
)

// CredentialProvider is the provider id of email/password accounts
const CredentialProvider = "credential"

// User is a CMS user
type User struct {
	ID            string  `validate:"required,uuid4"`
	Email         string  `validate:"required,email,max=255"`
	EmailVerified bool
	Name          string  `validate:"required,min=1,max=255"`
	Image         *string `validate:"omitempty,max=2048"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// Account links a user to a sign-in provider. Credential accounts carry a bcrypt hash.
type Account struct {
	ID           string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	AccountID    string `validate:"required"`
	ProviderID   string `validate:"required"`
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	return validators.ValidateStruct(a)
}

// Session is the server-side record of an issued token
type Session struct {
	ID        string `validate:"required,uuid4"`
	UserID    string `validate:"required,uuid4"`
	ExpiresAt time.Time
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	return validators.ValidateStruct(s)
}

// Expired reports whether the session is no longer usable at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ClientInfo describes the browser a session was opened from
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// Claims identify the signed-in user behind a verified token
type Claims struct {
	SessionID string
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// SignInResult is returned by a successful sign in
type SignInResult struct {
	Token     string
	User      *User
	ExpiresAt time.Time
}
