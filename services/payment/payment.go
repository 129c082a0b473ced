package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mechriz/zen-fit/utils"

	"go.uber.org/zap"
)

type Method string

const (
	MethodMpesa Method = "mpesa"
	MethodCard  Method = "card"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrInvalidCharge     = errors.New("invalid payment request")
)

// Charge is a single payment for one appointment.
type Charge struct {
	Reference   string // appointment id, used as idempotency key
	Amount      float64
	Currency    string
	Phone       string // M-Pesa prompt target
	Description string
}

// Receipt is what a gateway hands back after a successful charge.
type Receipt struct {
	PaymentID string    `json:"paymentId"`
	Method    Method    `json:"method"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paidAt"`
}

// Gateway settles a charge for one payment method.
type Gateway interface {
	Charge(ctx context.Context, ch Charge) (*Receipt, error)
}

// Processor routes charges to the gateway registered for their method.
type Processor struct {
	gateways map[Method]Gateway
}

func NewProcessor() *Processor {
	return &Processor{gateways: make(map[Method]Gateway)}
}

// Register installs g for method, replacing any previous gateway.
func (p *Processor) Register(method Method, g Gateway) {
	p.gateways[method] = g
}

// Methods lists the payment methods that can currently be used.
func (p *Processor) Methods() []Method {
	out := make([]Method, 0, len(p.gateways))
	for _, m := range []Method{MethodMpesa, MethodCard} {
		if _, ok := p.gateways[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Pay validates the charge and hands it to the matching gateway.
func (p *Processor) Pay(ctx context.Context, method Method, ch Charge) (*Receipt, error) {
	if err := validateCharge(ch); err != nil {
		return nil, err
	}
	g, ok := p.gateways[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	receipt, err := g.Charge(ctx, ch)
	if err != nil {
		utils.GetLogger().Error("Payment failed",
			zap.String("method", string(method)),
			zap.String("reference", ch.Reference),
			zap.Error(err))
		return nil, fmt.Errorf("payment via %s failed: %w", method, err)
	}
	utils.GetLogger().Info("Payment successful",
		zap.String("method", string(method)),
		zap.String("reference", ch.Reference),
		zap.String("paymentId", receipt.PaymentID))
	return receipt, nil
}

func validateCharge(ch Charge) error {
	if ch.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidCharge)
	}
	if ch.Reference == "" {
		return fmt.Errorf("%w: missing reference", ErrInvalidCharge)
	}
	return nil
}
