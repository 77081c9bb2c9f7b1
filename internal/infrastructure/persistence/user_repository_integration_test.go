//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, tc *TestContext, email string) *users.User {
	t.Helper()

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	user := &users.User{ID: uuid.NewString(), Email: email, Name: "Admin"}
	account := &users.Account{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		AccountID:    email,
		ProviderID:   users.CredentialProvider,
		PasswordHash: &hash,
	}
	require.NoError(t, tc.UserRepo.CreateWithAccount(context.Background(), user, account))
	return user
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := createTestUser(t, tc, "Admin@VoteNPP.com")

	byEmail, err := tc.UserRepo.GetByEmail(ctx, "admin@votenpp.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@votenpp.com", byID.Email)

	account, err := tc.UserRepo.GetAccount(ctx, user.ID, users.CredentialProvider)
	require.NoError(t, err)
	require.NotNil(t, account.PasswordHash)

	_, err = tc.UserRepo.GetAccount(ctx, user.ID, "github")
	assert.ErrorIs(t, err, users.ErrNotFound)

	_, err = tc.UserRepo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	createTestUser(t, tc, "admin@votenpp.com")

	dup := &users.User{ID: uuid.NewString(), Email: "admin@votenpp.com", Name: "Other"}
	account := &users.Account{ID: uuid.NewString(), UserID: dup.ID, AccountID: dup.Email, ProviderID: users.CredentialProvider}
	assert.Error(t, tc.UserRepo.CreateWithAccount(context.Background(), dup, account))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	user := createTestUser(t, tc, "admin@votenpp.com")

	now := time.Now()
	live := &users.Session{ID: uuid.NewString(), UserID: user.ID, ExpiresAt: now.Add(time.Hour)}
	stale := &users.Session{ID: uuid.NewString(), UserID: user.ID, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, tc.SessionRepo.Create(ctx, live))
	require.NoError(t, tc.SessionRepo.Create(ctx, stale))

	removed, err := tc.SessionRepo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	fetched, err := tc.SessionRepo.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.UserID)

	require.NoError(t, tc.SessionRepo.DeleteByID(ctx, live.ID))
	_, err = tc.SessionRepo.GetByID(ctx, live.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
}
