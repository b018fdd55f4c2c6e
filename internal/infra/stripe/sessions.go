package stripe

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// SessionAPI is the slice of the Stripe client used to create sessions.
type SessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type LineItem struct {
	PriceRef string
	Quantity int64
}

type SessionRequest struct {
	Items  []LineItem
	Locale string
	Origin string
}

type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

type Sessions struct {
	api       SessionAPI
	countries []string
}

// NewSessions uses api when non-nil, otherwise a live client for secretKey.
func NewSessions(secretKey string, countries []string, api SessionAPI) (*Sessions, error) {
	if api == nil {
		if strings.TrimSpace(secretKey) == "" {
			return nil, errors.New("stripe: secret key is required")
		}
		api = client.New(secretKey, nil).CheckoutSessions
	}
	return &Sessions{api: api, countries: append([]string(nil), countries...)}, nil
}

// Create opens a hosted card payment session. Success and cancel pages live
// under the buyer's locale; Stripe's own UI is localized to es or en.
func (s *Sessions) Create(ctx context.Context, req SessionRequest) (Session, error) {
	locale := "en"
	if req.Locale == "es" {
		locale = "es"
	}
	origin := strings.TrimRight(req.Origin, "/")

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(origin + "/" + locale + "/shop/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(origin + "/" + locale + "/shop"),
		Locale:             stripe.String(locale),
	}
	params.Context = ctx
	for _, it := range req.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(it.PriceRef),
			Quantity: stripe.Int64(it.Quantity),
		})
	}
	if len(s.countries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(s.countries),
		}
	}

	cs, err := s.api.New(params)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: cs.ID, URL: cs.URL}, nil
}
