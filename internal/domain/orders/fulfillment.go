// Package orders is where verified payment events leave the web tier.
// Order records, inventory and confirmation mail belong to whatever
// implements Fulfillment; this repository only ships a logging sink.
package orders

import (
	"context"

	"go.uber.org/zap"
)

type CheckoutCompleted struct {
	SessionID     string
	CustomerEmail string
	AmountTotal   int64
	Currency      string
}

type PaymentResult struct {
	PaymentIntentID string
	Amount          int64
	Currency        string
}

// Fulfillment consumes verified payment events. A returned error makes the
// webhook answer 500 so the processor retries delivery.
type Fulfillment interface {
	CheckoutCompleted(ctx context.Context, e CheckoutCompleted) error
	PaymentSucceeded(ctx context.Context, e PaymentResult) error
	PaymentFailed(ctx context.Context, e PaymentResult) error
}

type LogFulfillment struct {
	log *zap.Logger
}

func NewLogFulfillment(log *zap.Logger) *LogFulfillment {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogFulfillment{log: log}
}

func (f *LogFulfillment) CheckoutCompleted(_ context.Context, e CheckoutCompleted) error {
	f.log.Info("payment successful",
		zap.String("session_id", e.SessionID),
		zap.Bool("has_customer_email", e.CustomerEmail != ""),
		zap.Int64("amount_total", e.AmountTotal),
		zap.String("currency", e.Currency),
	)
	return nil
}

func (f *LogFulfillment) PaymentSucceeded(_ context.Context, e PaymentResult) error {
	f.log.Info("payment intent succeeded", zap.String("payment_intent_id", e.PaymentIntentID), zap.Int64("amount", e.Amount))
	return nil
}

func (f *LogFulfillment) PaymentFailed(_ context.Context, e PaymentResult) error {
	f.log.Error("payment failed", zap.String("payment_intent_id", e.PaymentIntentID), zap.Int64("amount", e.Amount))
	return nil
}
