//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
)

// MockBlogPostRepository is a mock implementation of posts.BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) Create(ctx context.Context, post *posts.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) ListAll(ctx context.Context) ([]*posts.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) ListPublished(ctx context.Context, limit int) ([]*posts.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*posts.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) GetByID(ctx context.Context, id uint) (*posts.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Update(ctx context.Context, post *posts.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlogPostService is a mock implementation of posts.BlogPostService
type MockBlogPostService struct {
	mock.Mock
}

func (m *MockBlogPostService) Create(ctx context.Context, post *posts.BlogPost) (*posts.BlogPost, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) ListAll(ctx context.Context) ([]*posts.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) ListPublished(ctx context.Context, limit int) ([]*posts.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) GetBySlug(ctx context.Context, slug string) (*posts.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) GetByID(ctx context.Context, id uint) (*posts.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Update(ctx context.Context, id uint, patch *posts.BlogPostPatch) (*posts.BlogPost, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogPostService) UpsertBySlug(ctx context.Context, post *posts.BlogPost) (bool, error) {
	args := m.Called(ctx, post)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepository is a mock implementation of payments.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateIfAbsent(ctx context.Context, payment *payments.Payment) (bool, error) {
	args := m.Called(ctx, payment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, limit int) ([]*payments.Payment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payments.Payment), args.Error(1)
}

// MockPaymentGateway is a mock implementation of payments.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) ParseWebhookEvent(payload []byte, signature string) (*payments.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}

func (m *MockPaymentGateway) ListRecentPaymentIntents(ctx context.Context, limit int) ([]*payments.Payment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payments.Payment), args.Error(1)
}

// MockCheckoutGateway is a mock implementation of donations.CheckoutGateway
type MockCheckoutGateway struct {
	mock.Mock
}

func (m *MockCheckoutGateway) CreateCustomer(ctx context.Context, details *donations.BillingDetails) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutGateway) CreateMeteredSubscription(ctx context.Context, customerID, priceID string, amount int64) (string, error) {
	args := m.Called(ctx, customerID, priceID, amount)
	return args.String(0), args.Error(1)
}

// MockUserRepository is a mock implementation of users.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithAccount(ctx context.Context, user *users.User, account *users.Account) error {
	args := m.Called(ctx, user, account)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetAccount(ctx context.Context, userID, providerID string) (*users.Account, error) {
	args := m.Called(ctx, userID, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Account), args.Error(1)
}

// MockSessionRepository is a mock implementation of users.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *users.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*users.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockMediaConnector is a mock implementation of media.MediaConnector
type MockMediaConnector struct {
	mock.Mock
}

func (m *MockMediaConnector) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, name, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaConnector) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockTextExtractor is a mock implementation of pressimport.TextExtractor
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) PDFText(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *MockTextExtractor) OCRAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTextExtractor) OCRPDFPage(ctx context.Context, path string, page int) (string, error) {
	args := m.Called(ctx, path, page)
	return args.String(0), args.Error(1)
}

func (m *MockTextExtractor) OCRImage(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// MockContentCleaner is a mock implementation of pressimport.ContentCleaner
type MockContentCleaner struct {
	mock.Mock
}

func (m *MockContentCleaner) CleanContent(ctx context.Context, raw string) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

func (m *MockContentCleaner) ExtractDate(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *MockContentCleaner) RepairDate(ctx context.Context, fragment, content string) (string, error) {
	args := m.Called(ctx, fragment, content)
	return args.String(0), args.Error(1)
}
