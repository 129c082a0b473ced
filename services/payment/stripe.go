package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway charges cards through a Stripe PaymentIntent.
type StripeGateway struct {
	client paymentintent.Client
}

func NewStripeGateway(key string) *StripeGateway {
	return &StripeGateway{
		client: paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: key},
	}
}

func (s *StripeGateway) Charge(ctx context.Context, ch Charge) (*Receipt, error) {
	currency := strings.ToLower(ch.Currency)
	if currency == "" {
		currency = "kes"
	}
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minorUnits(ch.Amount)),
		Currency:    stripe.String(currency),
		Description: stripe.String(ch.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("appointment-" + ch.Reference)
	params.AddMetadata("appointmentId", ch.Reference)

	pi, err := s.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Receipt{
		PaymentID: pi.ID,
		Method:    MethodCard,
		Status:    string(pi.Status),
		PaidAt:    time.Now(),
	}, nil
}

// minorUnits converts shillings to cents as Stripe expects.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
