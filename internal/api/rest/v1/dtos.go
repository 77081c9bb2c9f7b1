package v1

import (
	"encoding/json"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse acknowledges updates and deletes
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HeroImageResponse is the JSON form of a hero image
type HeroImageResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Caption   *string   `json:"caption"`
	Link      *string   `json:"link"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewHeroImageResponse maps a domain hero image
func NewHeroImageResponse(h *heroimages.HeroImage) HeroImageResponse {
	return HeroImageResponse{
		ID:        h.ID,
		Title:     h.Title,
		ImageURL:  h.ImageURL,
		Caption:   h.Caption,
		Link:      h.Link,
		Order:     h.Order,
		Active:    h.Active,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// NewHeroImageResponses maps a list, never returning nil
func NewHeroImageResponses(images []*heroimages.HeroImage) []HeroImageResponse {
	out := make([]HeroImageResponse, 0, len(images))
	for _, h := range images {
		out = append(out, NewHeroImageResponse(h))
	}
	return out
}

// HeroImageListResponse wraps hero images as {"images": [...]}
type HeroImageListResponse struct {
	Images []HeroImageResponse `json:"images"`
}

// HeroImageItemResponse wraps one hero image as {"image": {...}}
type HeroImageItemResponse struct {
	Image HeroImageResponse `json:"image"`
}

// CreateHeroImageRequest is the body of POST /api/admin/hero-images
type CreateHeroImageRequest struct {
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Caption  *string `json:"caption"`
	Link     *string `json:"link"`
	Order    int     `json:"order"`
	Active   *bool   `json:"active"`
}

// ToDomain converts the request. Active defaults to true.
func (r *CreateHeroImageRequest) ToDomain() *heroimages.HeroImage {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &heroimages.HeroImage{
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Caption:  r.Caption,
		Link:     r.Link,
		Order:    r.Order,
		Active:   active,
	}
}

// UpdateHeroImageRequest is the body of PATCH /api/admin/hero-images/:id
type UpdateHeroImageRequest struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
	Caption  *string `json:"caption"`
	Link     *string `json:"link"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

// ToPatch converts the request
func (r *UpdateHeroImageRequest) ToPatch() *heroimages.HeroImagePatch {
	return &heroimages.HeroImagePatch{
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Caption:  r.Caption,
		Link:     r.Link,
		Order:    r.Order,
		Active:   r.Active,
	}
}

// PageContentResponse is the JSON form of a page section
type PageContentResponse struct {
	ID        uint            `json:"id"`
	Page      string          `json:"page"`
	Section   string          `json:"section"`
	Title     *string         `json:"title"`
	Content   json.RawMessage `json:"content"`
	Order     int             `json:"order"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewPageContentResponse maps a domain page section
func NewPageContentResponse(p *pages.PageContent) PageContentResponse {
	content := p.Content
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return PageContentResponse{
		ID:        p.ID,
		Page:      p.Page,
		Section:   p.Section,
		Title:     p.Title,
		Content:   content,
		Order:     p.Order,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPageContentResponses maps a list, never returning nil
func NewPageContentResponses(list []*pages.PageContent) []PageContentResponse {
	out := make([]PageContentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewPageContentResponse(p))
	}
	return out
}

// PageContentListResponse wraps sections as {"content": [...]}
type PageContentListResponse struct {
	Content []PageContentResponse `json:"content"`
}

// PageContentItemResponse wraps one section as {"content": {...}}
type PageContentItemResponse struct {
	Content PageContentResponse `json:"content"`
}

// CreatePageContentRequest is the body of POST /api/admin/pages
type CreatePageContentRequest struct {
	Page    string          `json:"page"`
	Section string          `json:"section"`
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
	Order   int             `json:"order"`
	Active  *bool           `json:"active"`
}

// ToDomain converts the request. Active defaults to true.
func (r *CreatePageContentRequest) ToDomain() *pages.PageContent {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &pages.PageContent{
		Page:    r.Page,
		Section: r.Section,
		Title:   r.Title,
		Content: r.Content,
		Order:   r.Order,
		Active:  active,
	}
}

// UpdatePageContentRequest is the body of PATCH /api/admin/pages/:id
type UpdatePageContentRequest struct {
	Page    *string         `json:"page"`
	Section *string         `json:"section"`
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
	Order   *int            `json:"order"`
	Active  *bool           `json:"active"`
}

// ToPatch converts the request
func (r *UpdatePageContentRequest) ToPatch() *pages.PageContentPatch {
	return &pages.PageContentPatch{
		Page:    r.Page,
		Section: r.Section,
		Title:   r.Title,
		Content: r.Content,
		Order:   r.Order,
		Active:  r.Active,
	}
}

// BlogPostResponse is the JSON form of a blog post
type BlogPostResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	HeaderImage *string    `json:"headerImage"`
	Author      *string    `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewBlogPostResponse maps a domain post
func NewBlogPostResponse(p *posts.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		HeaderImage: p.HeaderImage,
		Author:      p.Author,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewBlogPostResponses maps a list, never returning nil
func NewBlogPostResponses(list []*posts.BlogPost) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewBlogPostResponse(p))
	}
	return out
}

// BlogPostListResponse wraps posts as {"posts": [...]}
type BlogPostListResponse struct {
	Posts []BlogPostResponse `json:"posts"`
}

// BlogPostItemResponse wraps one post as {"post": {...}}
type BlogPostItemResponse struct {
	Post BlogPostResponse `json:"post"`
}

// CreateBlogPostRequest is the body of POST /api/admin/blog
type CreateBlogPostRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	HeaderImage *string    `json:"headerImage"`
	Author      *string    `json:"author"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// ToDomain converts the request
func (r *CreateBlogPostRequest) ToDomain() *posts.BlogPost {
	return &posts.BlogPost{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		HeaderImage: r.HeaderImage,
		Author:      r.Author,
		Published:   r.Published,
		PublishedAt: r.PublishedAt,
	}
}

// UpdateBlogPostRequest is the body of PATCH /api/admin/blog/:id
type UpdateBlogPostRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Content     *string    `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	HeaderImage *string    `json:"headerImage"`
	Author      *string    `json:"author"`
	Published   *bool      `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// ToPatch converts the request
func (r *UpdateBlogPostRequest) ToPatch() *posts.BlogPostPatch {
	return &posts.BlogPostPatch{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		HeaderImage: r.HeaderImage,
		Author:      r.Author,
		Published:   r.Published,
		PublishedAt: r.PublishedAt,
	}
}

// PaymentResponse is the JSON form of a mirrored Stripe payment
type PaymentResponse struct {
	ID              uint            `json:"id"`
	StripePaymentID string          `json:"stripePaymentId"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CustomerEmail   *string         `json:"customerEmail"`
	CustomerName    *string         `json:"customerName"`
	PaymentMethod   *string         `json:"paymentMethod"`
	Description     *string         `json:"description"`
	Metadata        json.RawMessage `json:"metadata"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewPaymentResponses maps a list, never returning nil
func NewPaymentResponses(list []*payments.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		metadata := p.Metadata
		if len(metadata) == 0 {
			metadata = json.RawMessage("null")
		}
		out = append(out, PaymentResponse{
			ID:              p.ID,
			StripePaymentID: p.StripePaymentID,
			Amount:          p.Amount,
			Currency:        p.Currency,
			Status:          p.Status,
			CustomerEmail:   p.CustomerEmail,
			CustomerName:    p.CustomerName,
			PaymentMethod:   p.PaymentMethod,
			Description:     p.Description,
			Metadata:        metadata,
			CreatedAt:       p.CreatedAt,
		})
	}
	return out
}

// PaymentListResponse wraps payments as {"payments": [...]}
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// SyncPaymentsResponse reports a Stripe sync
type SyncPaymentsResponse struct {
	Success bool `json:"success"`
	Synced  int  `json:"synced"`
	Skipped int  `json:"skipped"`
	Total   int  `json:"total"`
}

// WebhookResponse acknowledges a verified Stripe event
type WebhookResponse struct {
	Received bool `json:"received"`
}

// CreatePaymentIntentRequest carries either an amount in cents of the charge
// currency or a decimal amount of the display currency to convert.
type CreatePaymentIntentRequest struct {
	Amount        int64  `json:"amount"`
	DisplayAmount string `json:"displayAmount"`
}

// PaymentIntentResponse returns the client secret to the donation widget
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateSubscriptionRequest is the body of POST /api/create-subscription
type CreateSubscriptionRequest struct {
	Amount     int64  `json:"amount"`
	CustomerID string `json:"customerId"`
}

// SubscriptionResponse returns the new subscription id
type SubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
}

// CustomerResponse returns the new customer id
type CustomerResponse struct {
	CustomerID string `json:"customerId"`
}

// MembershipRequest is the body of POST /api/membership
type MembershipRequest struct {
	IDNumber            string   `json:"idNumber"`
	Name                string   `json:"name"`
	HomeAddress         string   `json:"homeAddress"`
	HomePhone           string   `json:"homePhone"`
	BusinessAddress     string   `json:"businessAddress"`
	BusinessPhone       string   `json:"businessPhone"`
	Email               string   `json:"email"`
	Constituency        string   `json:"constituency"`
	PreviousPartyMember bool     `json:"previousPartyMember"`
	AssistAreas         []string `json:"assistAreas"`
	DeclarationAccepted bool     `json:"declarationAccepted"`
}

// ToDomain converts the request. Blank optional fields become nil.
func (r *MembershipRequest) ToDomain() *membership.Application {
	return &membership.Application{
		IDNumber:            strutil.Ptr(r.IDNumber),
		Name:                r.Name,
		HomeAddress:         strutil.Ptr(r.HomeAddress),
		HomePhone:           strutil.Ptr(r.HomePhone),
		BusinessAddress:     strutil.Ptr(r.BusinessAddress),
		BusinessPhone:       strutil.Ptr(r.BusinessPhone),
		Email:               strutil.Ptr(r.Email),
		Constituency:        r.Constituency,
		PreviousPartyMember: r.PreviousPartyMember,
		AssistAreas:         r.AssistAreas,
		DeclarationAccepted: r.DeclarationAccepted,
	}
}

// MembershipResponse is the JSON form of a membership application
type MembershipResponse struct {
	ID                  uint      `json:"id"`
	IDNumber            *string   `json:"idNumber"`
	Name                string    `json:"name"`
	HomeAddress         *string   `json:"homeAddress"`
	HomePhone           *string   `json:"homePhone"`
	BusinessAddress     *string   `json:"businessAddress"`
	BusinessPhone       *string   `json:"businessPhone"`
	Email               *string   `json:"email"`
	Constituency        string    `json:"constituency"`
	PreviousPartyMember bool      `json:"previousPartyMember"`
	AssistAreas         []string  `json:"assistAreas"`
	DeclarationAccepted bool      `json:"declarationAccepted"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewMembershipResponse maps a domain application
func NewMembershipResponse(a *membership.Application) MembershipResponse {
	areas := a.AssistAreas
	if areas == nil {
		areas = []string{}
	}
	return MembershipResponse{
		ID:                  a.ID,
		IDNumber:            a.IDNumber,
		Name:                a.Name,
		HomeAddress:         a.HomeAddress,
		HomePhone:           a.HomePhone,
		BusinessAddress:     a.BusinessAddress,
		BusinessPhone:       a.BusinessPhone,
		Email:               a.Email,
		Constituency:        a.Constituency,
		PreviousPartyMember: a.PreviousPartyMember,
		AssistAreas:         areas,
		DeclarationAccepted: a.DeclarationAccepted,
		CreatedAt:           a.CreatedAt,
	}
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public part of a user
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned after a successful sign in
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// SessionInfo describes the signed-in user
type SessionInfo struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse is {"session": null} when nobody is signed in
type SessionResponse struct {
	Session *SessionInfo `json:"session"`
}

// NewSessionResponse maps verified claims; nil claims give a null session
func NewSessionResponse(claims *users.Claims) SessionResponse {
	if claims == nil {
		return SessionResponse{}
	}
	return SessionResponse{Session: &SessionInfo{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt,
	}}
}

// MediaUploadResponse lists the stored files
type MediaUploadResponse struct {
	Files []*media.Asset `json:"files"`
}
