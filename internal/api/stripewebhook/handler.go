package stripewebhooks

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"

	"portfolio-site/internal/domain/orders"
)

const maxBodyBytes = 65536

// errMalformed marks an event whose object could not be decoded.
var errMalformed = errors.New("malformed event object")

// EventVerifier authenticates a raw webhook delivery.
type EventVerifier interface {
	Verify(payload []byte, signature string) (stripe.Event, error)
}

// EventRecorder counts verified events by type.
type EventRecorder interface {
	WebhookEvent(eventType string)
}

const (
	eventCheckoutSessionCompleted = "checkout.session.completed"
	eventPaymentIntentSucceeded   = "payment_intent.succeeded"
	eventPaymentIntentFailed      = "payment_intent.payment_failed"
)

type eventHandler func(c *gin.Context, event stripe.Event) error

type Handler struct {
	verifier    EventVerifier
	fulfillment orders.Fulfillment
	log         *zap.Logger
	recorder    EventRecorder
	handlers    map[string]eventHandler
}

func NewHandler(v EventVerifier, f orders.Fulfillment, log *zap.Logger, rec EventRecorder) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{verifier: v, fulfillment: f, log: log, recorder: rec}
	h.handlers = map[string]eventHandler{
		eventCheckoutSessionCompleted: h.handleCheckoutSessionCompleted,
		eventPaymentIntentSucceeded:   h.handlePaymentIntentSucceeded,
		eventPaymentIntentFailed:      h.handlePaymentIntentFailed,
	}
	return h
}

// StripeWebhook handles POST /webhooks/payment.
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := readStripeBody(c, maxBodyBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing stripe-signature header"})
		return
	}

	event, err := h.verifier.Verify(payload, signature)
	if err != nil {
		h.log.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook Error: signature verification failed"})
		return
	}

	if h.recorder != nil {
		h.recorder.WebhookEvent(string(event.Type))
	}

	handle, ok := h.handlers[string(event.Type)]
	if !ok {
		h.log.Info("unhandled event type", zap.String("type", string(event.Type)), zap.String("event_id", event.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := handle(c, event); err != nil {
		if errors.Is(err, errMalformed) {
			h.log.Warn("webhook event not decodable", zap.String("type", string(event.Type)), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse event object"})
			return
		}
		h.log.Error("webhook handler failed", zap.String("type", string(event.Type)), zap.String("event_id", event.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook handler failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
