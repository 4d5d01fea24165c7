package booking

import (
	"context"
	"fmt"

	"medibook/config"
	"medibook/models"
	"medibook/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentIntent carries the client secret the frontend needs to complete a
// card payment.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// placeholderClientSecret is returned when no Stripe key is configured, so
// the endpoint stays usable in development and demos.
const placeholderClientSecret = "test_client_secret"

// CreatePaymentIntent prepares a Stripe payment intent for the booking's
// price. Amounts are in cents.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, booking *models.Booking) (*PaymentIntent, error) {
	logger := utils.GetLogger()
	amount := int64(booking.Price * 100)

	if config.AppConfig.StripeKey == "" {
		logger.Info("stripe key not configured, returning placeholder client secret",
			zap.Int64("amount", amount))
		return &PaymentIntent{ClientSecret: placeholderClientSecret}, nil
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	logger.Info("payment intent created", zap.Int64("amount", amount))
	return &PaymentIntent{ClientSecret: pi.ClientSecret}, nil
}

// RecordPayment stores a payment record. The paid booking's status is not
// updated; the payment document carries its own snapshot of the booking.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}
