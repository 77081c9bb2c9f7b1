//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
)

// MockHeroImageService is a mock implementation of HeroImageService
type MockHeroImageService struct {
	mock.Mock
}

func (m *MockHeroImageService) Create(ctx context.Context, image *heroimages.HeroImage) (*heroimages.HeroImage, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroimages.HeroImage), args.Error(1)
}

func (m *MockHeroImageService) ListAll(ctx context.Context) ([]*heroimages.HeroImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*heroimages.HeroImage), args.Error(1)
}

func (m *MockHeroImageService) ListActive(ctx context.Context) ([]*heroimages.HeroImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*heroimages.HeroImage), args.Error(1)
}

func (m *MockHeroImageService) GetByID(ctx context.Context, id uint) (*heroimages.HeroImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroimages.HeroImage), args.Error(1)
}

func (m *MockHeroImageService) Update(ctx context.Context, id uint, patch *heroimages.HeroImagePatch) (*heroimages.HeroImage, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*heroimages.HeroImage), args.Error(1)
}

func (m *MockHeroImageService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPageContentService is a mock implementation of PageContentService
type MockPageContentService struct {
	mock.Mock
}

func (m *MockPageContentService) Create(ctx context.Context, content *pages.PageContent) (*pages.PageContent, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pages.PageContent), args.Error(1)
}

func (m *MockPageContentService) List(ctx context.Context, query *pages.PageContentQuery) ([]*pages.PageContent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pages.PageContent), args.Error(1)
}

func (m *MockPageContentService) ListForPage(ctx context.Context, page string) ([]*pages.PageContent, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pages.PageContent), args.Error(1)
}

func (m *MockPageContentService) GetByID(ctx context.Context, id uint) (*pages.PageContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pages.PageContent), args.Error(1)
}

func (m *MockPageContentService) Update(ctx context.Context, id uint, patch *pages.PageContentPatch) (*pages.PageContent, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pages.PageContent), args.Error(1)
}

func (m *MockPageContentService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlogPostService is a mock implementation of BlogPostService
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

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) List(ctx context.Context) ([]*payments.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) RecordIfAbsent(ctx context.Context, payment *payments.Payment) (bool, error) {
	args := m.Called(ctx, payment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*payments.WebhookResult, error) {
	args := m.Called(ctx, payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookResult), args.Error(1)
}

func (m *MockPaymentService) Sync(ctx context.Context) (*payments.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.SyncResult), args.Error(1)
}

// MockDonationService is a mock implementation of DonationService
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) CreateCustomer(ctx context.Context, details *donations.BillingDetails) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

func (m *MockDonationService) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

func (m *MockDonationService) CreateSubscription(ctx context.Context, amount int64, customerID string) (string, error) {
	args := m.Called(ctx, amount, customerID)
	return args.String(0), args.Error(1)
}

func (m *MockDonationService) ConvertToUSD(amount decimal.Decimal) (int64, error) {
	args := m.Called(amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationService is a mock implementation of ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, application *membership.Application) (*membership.Application, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Application), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context) ([]*membership.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Application), args.Error(1)
}

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, form *multipart.Form) ([]*media.Asset, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Asset), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string, client users.ClientInfo) (*users.SignInResult, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.SignInResult), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, email, name, password string) (*users.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
