package users

import (
	"context"
	"time"
)

// AuthService defines admin authentication.
type AuthService interface {
	// SignIn checks email and password and opens a session. Unknown emails,
	// users without a credential account and wrong passwords all yield
	// ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string, client ClientInfo) (*SignInResult, error)

	// SignOut deletes the session behind token. Invalid tokens are ignored.
	SignOut(ctx context.Context, token string) error

	// Verify checks the token signature and expiry and that its session still exists.
	Verify(ctx context.Context, token string) (*Claims, error)

	// CreateAdmin creates a user with a credential account. ErrUserExists when
	// the email is taken.
	CreateAdmin(ctx context.Context, email, name, password string) (*User, error)

	// PurgeExpiredSessions deletes sessions that expired before now.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// UserRepository defines the persistence operations for users and accounts
type UserRepository interface {
	CreateWithAccount(ctx context.Context, user *User, account *Account) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAccount(ctx context.Context, userID, providerID string) (*Account, error)
}

// SessionRepository defines the persistence operations for sessions
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
