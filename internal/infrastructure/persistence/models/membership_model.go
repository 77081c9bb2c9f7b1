package models

import (
	"strings"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
)

// MembershipApplicationModel is the GORM database model for membership applications.
// AssistAreas is stored comma separated.
type MembershipApplicationModel struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement"`
	IDNumber            *string `gorm:"column:id_number;type:varchar(50)"`
	Name                string  `gorm:"not null;type:varchar(255)"`
	HomeAddress         *string `gorm:"type:varchar(500)"`
	HomePhone           *string `gorm:"type:varchar(50)"`
	BusinessAddress     *string `gorm:"type:varchar(500)"`
	BusinessPhone       *string `gorm:"type:varchar(50)"`
	Email               *string `gorm:"type:varchar(255)"`
	Constituency        string  `gorm:"not null;type:varchar(100)"`
	PreviousPartyMember bool    `gorm:"not null"`
	AssistAreas         string  `gorm:"type:text"`
	DeclarationAccepted bool    `gorm:"not null"`
	CreatedAt           time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MembershipApplicationModel) TableName() string {
	return "membership_applications"
}

// ToDomain converts GORM model to domain entity
func (m *MembershipApplicationModel) ToDomain() *membership.Application {
	var areas []string
	if m.AssistAreas != "" {
		areas = strings.Split(m.AssistAreas, ",")
	}
	return &membership.Application{
		ID:                  m.ID,
		IDNumber:            m.IDNumber,
		Name:                m.Name,
		HomeAddress:         m.HomeAddress,
		HomePhone:           m.HomePhone,
		BusinessAddress:     m.BusinessAddress,
		BusinessPhone:       m.BusinessPhone,
		Email:               m.Email,
		Constituency:        m.Constituency,
		PreviousPartyMember: m.PreviousPartyMember,
		AssistAreas:         areas,
		DeclarationAccepted: m.DeclarationAccepted,
		CreatedAt:           m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MembershipApplicationModel) FromDomain(a *membership.Application) {
	m.ID = a.ID
	m.IDNumber = a.IDNumber
	m.Name = a.Name
	m.HomeAddress = a.HomeAddress
	m.HomePhone = a.HomePhone
	m.BusinessAddress = a.BusinessAddress
	m.BusinessPhone = a.BusinessPhone
	m.Email = a.Email
	m.Constituency = a.Constituency
	m.PreviousPartyMember = a.PreviousPartyMember
	m.AssistAreas = strings.Join(a.AssistAreas, ",")
	m.DeclarationAccepted = a.DeclarationAccepted
	m.CreatedAt = a.CreatedAt
}
