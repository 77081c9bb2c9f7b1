//go:build unit
// +build unit

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageContentModel_ContentIsStoredAsText(t *testing.T) {
	p := &pages.PageContent{Page: "about", Section: "history", Content: json.RawMessage(`{"paragraphs":["a","b"]}`), Active: true}

	m := &PageContentModel{}
	m.FromDomain(p)
	assert.Equal(t, `{"paragraphs":["a","b"]}`, m.Content)

	back := m.ToDomain()
	assert.JSONEq(t, string(p.Content), string(back.Content))
	assert.True(t, back.Active)
}

func TestPaymentModel_EmptyMetadataIsNull(t *testing.T) {
	m := &PaymentModel{}
	m.FromDomain(&payments.Payment{StripePaymentID: "pi_1", Amount: 100, Currency: "usd", Status: "succeeded"})
	assert.Nil(t, m.Metadata)
	assert.Nil(t, m.ToDomain().Metadata)

	m.FromDomain(&payments.Payment{StripePaymentID: "pi_1", Metadata: json.RawMessage(`{"a":"b"}`)})
	require.NotNil(t, m.Metadata)
	assert.Equal(t, `{"a":"b"}`, *m.Metadata)
}

func TestMembershipApplicationModel_AssistAreas(t *testing.T) {
	created := time.Now()
	m := &MembershipApplicationModel{}
	m.FromDomain(&membership.Application{Name: "A", Constituency: "saint_john", AssistAreas: []string{"house", "other"}, CreatedAt: created})
	assert.Equal(t, "house,other", m.AssistAreas)
	assert.Equal(t, []string{"house", "other"}, m.ToDomain().AssistAreas)

	m.AssistAreas = ""
	assert.Nil(t, m.ToDomain().AssistAreas)
}

func TestAll_ListsEveryTable(t *testing.T) {
	names := map[string]bool{}
	for _, m := range All() {
		if tn, ok := m.(interface{ TableName() string }); ok {
			names[tn.TableName()] = true
		}
	}
	for _, table := range []string{"user", "account", "session", "hero_images", "page_content", "blog_posts", "stripe_payments", "membership_applications"} {
		assert.True(t, names[table], table)
	}
}
