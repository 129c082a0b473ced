package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MpesaSimulator stands in for the STK push flow: it waits for the configured
// delay, as if the user confirmed the prompt on their phone, and succeeds.
type MpesaSimulator struct {
	Delay time.Duration
}

func (m MpesaSimulator) Charge(ctx context.Context, ch Charge) (*Receipt, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &Receipt{
		PaymentID: "mp_" + uuid.New().String(),
		Method:    MethodMpesa,
		Status:    "paid",
		PaidAt:    time.Now(),
	}, nil
}
