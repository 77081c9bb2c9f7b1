package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// MaxWebhookBytes bounds the Stripe event payload read by Webhook
const MaxWebhookBytes = 1 << 20

// PaymentHandler defines the interface for the Stripe payment mirror
type PaymentHandler interface {
	List(ctx *gin.Context)
	Sync(ctx *gin.Context)
	Webhook(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
	logger         logger.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService payments.PaymentService, logger logger.Logger) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (handler *paymentHandler) List(ctx *gin.Context) {
	list, err := handler.paymentService.List(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch payments")
		return
	}
	ctx.JSON(http.StatusOK, PaymentListResponse{Payments: NewPaymentResponses(list)})
}

// Sync pulls recent payment intents from Stripe into the mirror
func (handler *paymentHandler) Sync(ctx *gin.Context) {
	result, err := handler.paymentService.Sync(ctx)
	if err != nil {
		handler.logger.Error("Error syncing payments: ", err)
		ctx.JSON(StatusFor(err), ErrorResponse{Error: "Failed to sync payments", Details: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, SyncPaymentsResponse{
		Success: true,
		Synced:  result.Synced,
		Skipped: result.Skipped,
		Total:   result.Total,
	})
}

// Webhook verifies and applies a Stripe event
func (handler *paymentHandler) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, MaxWebhookBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := handler.paymentService.HandleWebhook(ctx, payload, ctx.GetHeader("Stripe-Signature"))
	if errors.Is(err, payments.ErrSignatureInvalid) {
		handler.logger.Warn("Webhook signature verification failed: ", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: payments.ErrSignatureInvalid.Error()})
		return
	}
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to process webhook")
		return
	}

	handler.logger.Debug("Handled Stripe event ", result.EventType)
	ctx.JSON(http.StatusOK, WebhookResponse{Received: true})
}
