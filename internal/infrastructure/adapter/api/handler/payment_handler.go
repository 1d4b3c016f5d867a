package handler

import (
	"io"
	"net/http"

	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	paymentUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/payment"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout and webhook HTTP requests
type PaymentHandler struct {
	intentTracker   *paymentUseCase.IntentTracker
	reconciler      *paymentUseCase.Reconciler
	signatureHeader string
	logger          coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	intentTracker *paymentUseCase.IntentTracker,
	reconciler *paymentUseCase.Reconciler,
	signatureHeader string,
	logger coreport.Logger,
) *PaymentHandler {
	if signatureHeader == "" {
		signatureHeader = "Stripe-Signature"
	}
	return &PaymentHandler{
		intentTracker:   intentTracker,
		reconciler:      reconciler,
		signatureHeader: signatureHeader,
		logger:          logger,
	}
}

// Checkout handles the POST /payment/checkout endpoint
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	userID := c.GetUint64(middleware.ContextUserID)

	intent, err := h.intentTracker.CreateIntent(c.Request.Context(), userID, req.Credits)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		URL:   intent.RedirectURL,
		Token: intent.Token,
	})
}

// Webhook handles the POST /payment/webhook endpoint. The raw body is read
// before any parsing: signature verification needs the exact bytes the
// provider signed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	signature := c.GetHeader(h.signatureHeader)

	if _, err := h.reconciler.Handle(c.Request.Context(), payload, signature); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookAckResponse{Received: true})
}
