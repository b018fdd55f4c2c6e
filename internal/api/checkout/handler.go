package checkout

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/infra/stripe"
)

// MaxQuantity matches the quantity selector on the product page.
const MaxQuantity = 10

// SessionCreator opens a hosted payment session.
type SessionCreator interface {
	Create(ctx context.Context, req stripe.SessionRequest) (stripe.Session, error)
}

// ResultRecorder counts checkout attempts by outcome.
type ResultRecorder interface {
	CheckoutResult(outcome string)
}

type Handler struct {
	sessions SessionCreator
	log      *zap.Logger
	recorder ResultRecorder
	appURL   string
}

// NewHandler uses appURL as the redirect origin when a request carries no
// Origin header.
func NewHandler(sessions SessionCreator, appURL string, log *zap.Logger, rec ResultRecorder) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sessions: sessions, log: log, recorder: rec, appURL: strings.TrimRight(appURL, "/")}
}

type item struct {
	PriceRef string `json:"priceRef"`
	Quantity int64  `json:"quantity"`
}

type request struct {
	Items  []item `json:"items"`
	Locale string `json:"locale"`
}

// Create handles POST /checkout.
func (h *Handler) Create(c *gin.Context) {
	var body request
	if err := c.ShouldBindJSON(&body); err != nil {
		h.reject(c, "Invalid request body")
		return
	}
	if len(body.Items) == 0 {
		h.reject(c, "No items provided")
		return
	}

	items := make([]stripe.LineItem, 0, len(body.Items))
	for _, it := range body.Items {
		ref := strings.TrimSpace(it.PriceRef)
		switch {
		case ref == "":
			h.reject(c, "Each item needs a priceRef")
			return
		case it.Quantity < 0:
			h.reject(c, "Quantity cannot be negative")
			return
		case it.Quantity > MaxQuantity:
			h.reject(c, "Quantity cannot exceed 10")
			return
		}
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, stripe.LineItem{PriceRef: ref, Quantity: qty})
	}

	origin := strings.TrimRight(c.GetHeader("Origin"), "/")
	if origin == "" {
		origin = h.appURL
	}

	session, err := h.sessions.Create(c.Request.Context(), stripe.SessionRequest{
		Items:  items,
		Locale: i18n.OrDefault(body.Locale).String(),
		Origin: origin,
	})
	if err != nil {
		h.log.Error("stripe checkout error", zap.Error(err), zap.Int("items", len(items)))
		h.record("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}

	h.record("created")
	c.JSON(http.StatusOK, session)
}

func (h *Handler) reject(c *gin.Context, msg string) {
	h.record("rejected")
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (h *Handler) record(outcome string) {
	if h.recorder != nil {
		h.recorder.CheckoutResult(outcome)
	}
}
