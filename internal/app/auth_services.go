package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// PasswordCost is the bcrypt cost used for admin passwords
const PasswordCost = bcrypt.DefaultCost

// MinPasswordLength applies to passwords set through CreateAdmin
const MinPasswordLength = 8

// sessionClaims is the JWT payload. ID carries the session id and Subject the user id.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface
type authService struct {
	users    users.UserRepository
	sessions users.SessionRepository
	secret   []byte
	ttl      time.Duration
	logger   logger.Logger
	now      func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, sessionRepo users.SessionRepository, settings *config.AuthSettings, logger logger.Logger) (users.AuthService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &authService{
		users:    userRepo,
		sessions: sessionRepo,
		secret:   []byte(settings.Secret),
		ttl:      settings.SessionTTL,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string, client users.ClientInfo) (*users.SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, users.ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		return nil, users.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	account, err := s.users.GetAccount(ctx, user.ID, users.CredentialProvider)
	if errors.Is(err, users.ErrNotFound) {
		return nil, users.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if account.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("Failed sign in for ", email)
		return nil, users.ErrInvalidCredentials
	}

	now := s.now()
	session := &users.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		IPAddress: strutil.Ptr(client.IPAddress),
		UserAgent: strutil.Ptr(client.UserAgent),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	token, err := s.sign(user, session, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User ", user.ID, " signed in")
	return &users.SignInResult{Token: token, User: user, ExpiresAt: session.ExpiresAt}, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.DeleteByID(ctx, claims.ID); err != nil && !errors.Is(err, users.ErrNotFound) {
		return fmt.Errorf("failed to close session: %w", err)
	}

	s.logger.Info("User ", claims.Subject, " signed out")
	return nil
}

func (s *authService) Verify(ctx context.Context, token string) (*users.Claims, error) {
	if token == "" {
		return nil, users.ErrUnauthorized
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, users.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, claims.ID)
	if errors.Is(err, users.ErrNotFound) {
		return nil, users.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.Subject || session.Expired(s.now()) {
		return nil, users.ErrUnauthorized
	}

	return &users.Claims{
		SessionID: session.ID,
		UserID:    session.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) CreateAdmin(ctx context.Context, email, name, password string) (*users.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, users.ErrMissingCredentials
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", users.ErrUserExists, email)
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	now := s.now()
	user := &users.User{
		ID:            uuid.NewString(),
		Email:         email,
		EmailVerified: true,
		Name:          strings.TrimSpace(name),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	account := &users.Account{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		AccountID:    email,
		ProviderID:   users.CredentialProvider,
		PasswordHash: &hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateWithAccount(ctx, user, account); err != nil {
		return nil, fmt.Errorf("failed to create admin %s: %w", email, err)
	}

	s.logger.Info("Created admin user ", user.ID)
	return user, nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

func (s *authService) sign(user *users.User, session *users.Session, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *authService) parse(token string) (*sessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, errors.New("token is missing its session")
	}
	return &claims, nil
}
