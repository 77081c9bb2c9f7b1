package models

import (
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/users"
)

// UserModel is the GORM database model for CMS users
type UserModel struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)"`
	Email         string  `gorm:"not null;uniqueIndex;type:varchar(255)"`
	EmailVerified bool    `gorm:"column:email_verified;not null"`
	Name          string  `gorm:"not null;type:varchar(255)"`
	Image         *string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "user"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:            m.ID,
		Email:         m.Email,
		EmailVerified: m.EmailVerified,
		Name:          m.Name,
		Image:         m.Image,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.EmailVerified = u.EmailVerified
	m.Name = u.Name
	m.Image = u.Image
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// AccountModel is the GORM database model for sign-in accounts
type AccountModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `gorm:"column:user_id;not null;index;type:varchar(36)"`
	User         UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AccountID    string    `gorm:"column:account_id;not null;type:varchar(255)"`
	ProviderID   string    `gorm:"column:provider_id;not null;type:varchar(50)"`
	PasswordHash *string   `gorm:"column:password;type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "account"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *users.Account {
	return &users.Account{
		ID:           m.ID,
		UserID:       m.UserID,
		AccountID:    m.AccountID,
		ProviderID:   m.ProviderID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *users.Account) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.AccountID = a.AccountID
	m.ProviderID = a.ProviderID
	m.PasswordHash = a.PasswordHash
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// SessionModel is the GORM database model for admin sessions
type SessionModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"column:user_id;not null;index;type:varchar(36)"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	IPAddress *string   `gorm:"column:ip_address;type:varchar(64)"`
	UserAgent *string   `gorm:"column:user_agent;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "session"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *users.Session {
	return &users.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *users.Session) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.ExpiresAt = s.ExpiresAt
	m.IPAddress = s.IPAddress
	m.UserAgent = s.UserAgent
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// All lists every model for AutoMigrate, parents first
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&AccountModel{},
		&SessionModel{},
		&HeroImageModel{},
		&PageContentModel{},
		&BlogPostModel{},
		&PaymentModel{},
		&MembershipApplicationModel{},
	}
}
