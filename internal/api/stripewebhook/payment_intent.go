package stripewebhooks

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"

	"portfolio-site/internal/domain/orders"
)

func decodePaymentIntent(event stripe.Event) (orders.PaymentResult, error) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil || pi.ID == "" {
		return orders.PaymentResult{}, fmt.Errorf("%w: payment intent", errMalformed)
	}
	return orders.PaymentResult{
		PaymentIntentID: pi.ID,
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
	}, nil
}

func (h *Handler) handlePaymentIntentSucceeded(c *gin.Context, event stripe.Event) error {
	res, err := decodePaymentIntent(event)
	if err != nil {
		return err
	}
	return h.fulfillment.PaymentSucceeded(c.Request.Context(), res)
}

func (h *Handler) handlePaymentIntentFailed(c *gin.Context, event stripe.Event) error {
	res, err := decodePaymentIntent(event)
	if err != nil {
		return err
	}
	return h.fulfillment.PaymentFailed(c.Request.Context(), res)
}
