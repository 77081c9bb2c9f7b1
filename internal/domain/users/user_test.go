//go:build unit
// +build unit

package users

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	valid := &User{ID: uuid.NewString(), Email: "admin@votenpp.com", Name: "Admin"}
	assert.NoError(t, valid.Validate())

	badEmail := &User{ID: uuid.NewString(), Email: "admin", Name: "Admin"}
	assert.ErrorContains(t, badEmail.Validate(), "Field: Email, Tag: email")

	badID := &User{ID: "42", Email: "admin@votenpp.com", Name: "Admin"}
	assert.ErrorContains(t, badID.Validate(), "Field: ID, Tag: uuid4")
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.True(t, s.Expired(now.Add(time.Hour)))
}
