package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// DonationHandler defines the interface for the donation widget endpoints
type DonationHandler interface {
	CreateCustomer(ctx *gin.Context)
	CreatePaymentIntent(ctx *gin.Context)
	CreateSubscription(ctx *gin.Context)
}

type donationHandler struct {
	donationService donations.DonationService
	logger          logger.Logger
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(donationService donations.DonationService, logger logger.Logger) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		logger:          logger,
	}
}

func (handler *donationHandler) CreateCustomer(ctx *gin.Context) {
	var details donations.BillingDetails
	if !bindJSON(ctx, &details) {
		return
	}

	customerID, err := handler.donationService.CreateCustomer(ctx, &details)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create customer")
		return
	}
	ctx.JSON(http.StatusOK, CustomerResponse{CustomerID: customerID})
}

// CreatePaymentIntent charges amount cents, or converts displayAmount first when it is set
func (handler *donationHandler) CreatePaymentIntent(ctx *gin.Context) {
	var request CreatePaymentIntentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	amount := request.Amount
	if request.DisplayAmount != "" {
		display, err := decimal.NewFromString(request.DisplayAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
			return
		}
		if amount, err = handler.donationService.ConvertToUSD(display); err != nil {
			respondError(ctx, handler.logger, err, "Failed to create payment intent")
			return
		}
	}

	clientSecret, err := handler.donationService.CreatePaymentIntent(ctx, amount)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create payment intent")
		return
	}
	ctx.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

func (handler *donationHandler) CreateSubscription(ctx *gin.Context) {
	var request CreateSubscriptionRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if request.CustomerID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "customerId is required"})
		return
	}

	subscriptionID, err := handler.donationService.CreateSubscription(ctx, request.Amount, request.CustomerID)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create subscription")
		return
	}
	ctx.JSON(http.StatusOK, SubscriptionResponse{SubscriptionID: subscriptionID})
}
