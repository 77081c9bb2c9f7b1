//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

const testAuthSecret = "0123456789abcdef0123456789abcdef"

type authFixture struct {
	svc      *authService
	users    *MockUserRepository
	sessions *MockSessionRepository
	user     *users.User
	account  *users.Account
	now      time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}
	settings := &config.AuthSettings{Secret: testAuthSecret, CookieName: "auth-token", SessionTTL: 7 * 24 * time.Hour}

	svc, err := NewAuthService(userRepo, sessionRepo, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	f := &authFixture{
		svc:      svc.(*authService),
		users:    userRepo,
		sessions: sessionRepo,
		user:     &users.User{ID: uuid.NewString(), Email: "admin@votenpp.com", Name: "Admin User"},
		now:      time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
	}
	f.account = &users.Account{ID: uuid.NewString(), UserID: f.user.ID, AccountID: f.user.Email, ProviderID: users.CredentialProvider, PasswordHash: &hashed}
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *authFixture) signIn(t *testing.T) (*users.SignInResult, *users.Session) {
	t.Helper()

	var stored *users.Session
	f.users.On("GetByEmail", mock.Anything, "admin@votenpp.com").Return(f.user, nil)
	f.users.On("GetAccount", mock.Anything, f.user.ID, users.CredentialProvider).Return(f.account, nil)
	f.sessions.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*users.Session)
	}).Return(nil)

	result, err := f.svc.SignIn(context.Background(), " Admin@VoteNPP.com ", "correct horse", users.ClientInfo{IPAddress: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	return result, stored
}

func TestAuthService_SignInAndVerify(t *testing.T) {
	f := newAuthFixture(t)
	result, session := f.signIn(t)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, f.user.ID, result.User.ID)
	assert.Equal(t, f.now.Add(7*24*time.Hour), result.ExpiresAt)
	assert.Equal(t, "10.0.0.1", *session.IPAddress)

	f.sessions.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	claims, err := f.svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, claims.UserID)
	assert.Equal(t, "admin@votenpp.com", claims.Email)
	assert.Equal(t, session.ID, claims.SessionID)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, users.ErrNotFound)

		_, err := f.svc.SignIn(context.Background(), "nobody@example.com", "x", users.ClientInfo{})
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("no credential account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetByEmail", mock.Anything, f.user.Email).Return(f.user, nil)
		f.users.On("GetAccount", mock.Anything, f.user.ID, users.CredentialProvider).Return(nil, users.ErrNotFound)

		_, err := f.svc.SignIn(context.Background(), f.user.Email, "correct horse", users.ClientInfo{})
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetByEmail", mock.Anything, f.user.Email).Return(f.user, nil)
		f.users.On("GetAccount", mock.Anything, f.user.ID, users.CredentialProvider).Return(f.account, nil)

		_, err := f.svc.SignIn(context.Background(), f.user.Email, "wrong", users.ClientInfo{})
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
		f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.SignIn(context.Background(), "", "x", users.ClientInfo{})
		assert.ErrorIs(t, err, users.ErrMissingCredentials)
	})
}

func TestAuthService_Verify_Rejects(t *testing.T) {
	f := newAuthFixture(t)
	result, session := f.signIn(t)
	ctx := context.Background()

	_, err := f.svc.Verify(ctx, "")
	assert.ErrorIs(t, err, users.ErrUnauthorized)

	_, err = f.svc.Verify(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, users.ErrUnauthorized)

	other := newAuthFixture(t)
	other.svc.secret = []byte("another-secret-another-secret")
	_, err = other.svc.Verify(ctx, result.Token)
	assert.ErrorIs(t, err, users.ErrUnauthorized)

	f.sessions.On("GetByID", mock.Anything, session.ID).Return(nil, users.ErrNotFound).Once()
	_, err = f.svc.Verify(ctx, result.Token)
	assert.ErrorIs(t, err, users.ErrUnauthorized)

	f.now = f.now.Add(8 * 24 * time.Hour)
	_, err = f.svc.Verify(ctx, result.Token)
	assert.ErrorIs(t, err, users.ErrUnauthorized)
}

func TestAuthService_SignOut(t *testing.T) {
	f := newAuthFixture(t)
	result, session := f.signIn(t)

	f.sessions.On("DeleteByID", mock.Anything, session.ID).Return(nil)
	require.NoError(t, f.svc.SignOut(context.Background(), result.Token))
	f.sessions.AssertCalled(t, "DeleteByID", mock.Anything, session.ID)

	assert.NoError(t, f.svc.SignOut(context.Background(), "garbage"))
}

func TestAuthService_CreateAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "new@votenpp.com").Return(nil, users.ErrNotFound)
	f.users.On("CreateWithAccount", ctx, mock.Anything, mock.MatchedBy(func(a *users.Account) bool {
		return a.ProviderID == users.CredentialProvider &&
			a.PasswordHash != nil &&
			bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(nil)

	user, err := f.svc.CreateAdmin(ctx, "New@VoteNPP.com", "New Admin", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "new@votenpp.com", user.Email)
	assert.True(t, user.EmailVerified)

	f.users.On("GetByEmail", ctx, f.user.Email).Return(f.user, nil)
	_, err = f.svc.CreateAdmin(ctx, f.user.Email, "Dup", "s3cret-pass")
	assert.ErrorIs(t, err, users.ErrUserExists)

	_, err = f.svc.CreateAdmin(ctx, "short@votenpp.com", "Short", "abc")
	assert.Error(t, err)
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	f := newAuthFixture(t)
	f.sessions.On("DeleteExpired", mock.Anything, f.now).Return(int64(3), nil)

	n, err := f.svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestNewAuthService_ShortSecret(t *testing.T) {
	_, err := NewAuthService(&MockUserRepository{}, &MockSessionRepository{}, &config.AuthSettings{Secret: "short", CookieName: "c", SessionTTL: time.Hour}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
