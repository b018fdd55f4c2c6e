package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
)

type fakeSessionAPI struct {
	params *stripe.CheckoutSessionParams
	err    error
}

func (f *fakeSessionAPI) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

func TestCreateBuildsHostedSession(t *testing.T) {
	api := &fakeSessionAPI{}
	s, err := NewSessions("", []string{"US", "ES"}, api)
	require.NoError(t, err)

	got, err := s.Create(context.Background(), SessionRequest{
		Items:  []LineItem{{PriceRef: "price_1", Quantity: 2}},
		Locale: "es",
		Origin: "https://shop.example/",
	})
	require.NoError(t, err)
	assert.Equal(t, Session{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, got)

	p := api.params
	require.NotNil(t, p)
	assert.Equal(t, "payment", *p.Mode)
	assert.Equal(t, "es", *p.Locale)
	assert.Equal(t, "https://shop.example/es/shop/success?session_id={CHECKOUT_SESSION_ID}", *p.SuccessURL)
	assert.Equal(t, "https://shop.example/es/shop", *p.CancelURL)
	require.Len(t, p.LineItems, 1)
	assert.Equal(t, "price_1", *p.LineItems[0].Price)
	assert.Equal(t, int64(2), *p.LineItems[0].Quantity)
	assert.Equal(t, []string{"US", "ES"}, values(p.ShippingAddressCollection.AllowedCountries))
	assert.Equal(t, []string{"card"}, values(p.PaymentMethodTypes))
}

func values(ptrs []*string) []string {
	out := make([]string, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

func TestCreateUnknownLocaleFallsBackToEnglish(t *testing.T) {
	api := &fakeSessionAPI{}
	s, _ := NewSessions("", nil, api)

	_, err := s.Create(context.Background(), SessionRequest{Locale: "fr", Origin: "http://localhost:3000"})
	require.NoError(t, err)
	assert.Equal(t, "en", *api.params.Locale)
	assert.Nil(t, api.params.ShippingAddressCollection)
}

func TestCreatePassesProcessorError(t *testing.T) {
	s, _ := NewSessions("", nil, &fakeSessionAPI{err: errors.New("No such price: 'price_x'")})
	_, err := s.Create(context.Background(), SessionRequest{})
	require.Error(t, err)
}

func TestNewSessionsNeedsKeyOrAPI(t *testing.T) {
	_, err := NewSessions(" ", nil, nil)
	require.Error(t, err)
}

func sign(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.", ts.Unix())))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerify(t *testing.T) {
	v := NewVerifier("whsec_test")
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","api_version":"2020-08-27","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`)

	ev, err := v.Verify(payload, sign("whsec_test", payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.succeeded", string(ev.Type))

	_, err = v.Verify(payload, "")
	assert.ErrorIs(t, err, ErrMissingSignature)

	_, err = v.Verify(payload, sign("whsec_other", payload, time.Now()))
	assert.Error(t, err)

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-3] = ' '
	_, err = v.Verify(tampered, sign("whsec_test", payload, time.Now()))
	assert.Error(t, err)

	_, err = v.Verify(payload, sign("whsec_test", payload, time.Now().Add(-time.Hour)))
	assert.Error(t, err)
}
