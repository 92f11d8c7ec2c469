package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/payments"
	"go.uber.org/zap"
)

type PaymentController struct {
	intents payments.IntentCreator
	log     *zap.Logger
}

func NewPaymentController(intents payments.IntentCreator, log *zap.Logger) *PaymentController {
	return &PaymentController{intents: intents, log: log}
}

// CreatePaymentIntent handles POST /create-payment-intent. Amounts are in
// cents. A non-positive amount is rejected before the processor is ever
// contacted. Clients may send an idempotencyKey and reuse it on retries.
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var body struct {
		Amount         float64 `json:"amount"`
		IdempotencyKey string  `json:"idempotencyKey"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment amount"})
		return
	}
	if body.Amount <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment amount"})
		return
	}

	clientSecret, err := c.intents.CreateIntent(ctx.Request.Context(), body.Amount, body.IdempotencyKey)
	if err != nil {
		respondError(ctx, c.log, err, "failed to create payment intent")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"clientSecret": clientSecret})
}
