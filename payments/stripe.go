package payments

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"
)

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64, idempotencyKey string) (string, error)
}

// Service bridges to Stripe. Intents are card-only and charged in USD;
// amounts arrive in cents, matching the frontend.
type Service struct {
	log *zap.Logger
}

func NewService(secretKey string, log *zap.Logger) *Service {
	stripe.Key = secretKey
	return &Service{log: log}
}

// CreateIntent validates the amount, attaches an idempotency key and asks
// Stripe for a card-only USD intent. When the client does not supply a key
// a fresh one is generated, so client retries that carry their key never
// double-charge.
func (s *Service) CreateIntent(ctx context.Context, amount float64, idempotencyKey string) (string, error) {
	if amount <= 0 {
		return "", httperr.ErrInvalidInput
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(amount))),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)

	intent, err := paymentintent.New(params)
	if err != nil {
		s.log.Error("failed to create payment intent", zap.Float64("amount", amount), zap.Error(err))
		return "", httperr.ErrUpstream
	}

	return intent.ClientSecret, nil
}
