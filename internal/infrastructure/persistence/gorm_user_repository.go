package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

// CreateWithAccount stores user and account in one transaction
func (r *gormUserRepository) CreateWithAccount(ctx context.Context, user *users.User, account *users.Account) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	userModel := &models.UserModel{}
	userModel.FromDomain(user)
	userModel.Email = strings.ToLower(userModel.Email)
	accountModel := &models.AccountModel{}
	accountModel.FromDomain(account)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Omit(clause.Associations).Create(accountModel).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	*user = *userModel.ToDomain()
	*account = *accountModel.ToDomain()
	r.logger.Info("Created user ", user.Email)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetAccount(ctx context.Context, userID, providerID string) (*users.Account, error) {
	var model models.AccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, providerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s account of user %s: %w", providerID, userID, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (users.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *users.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	*session = *model.ToDomain()
	return nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, id string) (*users.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Deleted ", result.RowsAffected, " expired sessions")
	}
	return result.RowsAffected, nil
}
