package stripewebhooks

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"

	"portfolio-site/internal/domain/orders"
)

func (h *Handler) handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil || session.ID == "" {
		return fmt.Errorf("%w: checkout session", errMalformed)
	}

	done := orders.CheckoutCompleted{
		SessionID:   session.ID,
		AmountTotal: session.AmountTotal,
		Currency:    string(session.Currency),
	}
	if session.CustomerDetails != nil {
		done.CustomerEmail = session.CustomerDetails.Email
	}
	if done.CustomerEmail == "" {
		done.CustomerEmail = session.CustomerEmail
	}

	return h.fulfillment.CheckoutCompleted(c.Request.Context(), done)
}
