package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/api/checkout"
	"portfolio-site/internal/api/pages"
	stripewebhooks "portfolio-site/internal/api/stripewebhook"
	"portfolio-site/internal/catalog"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/orders"
	"portfolio-site/internal/infra/metrics"
	"portfolio-site/internal/infra/sanity"
	"portfolio-site/internal/infra/stripe"
)

type rawQuerier struct{}

func (rawQuerier) Query(_ context.Context, query string, _ map[string]any) (json.RawMessage, error) {
	if strings.Contains(query, "[0]") {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage("[]"), nil
}

type noSessions struct{}

func (noSessions) Create(context.Context, stripe.SessionRequest) (stripe.Session, error) {
	return stripe.Session{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	bundle, err := i18n.Embedded()
	require.NoError(t, err)

	m := metrics.New()
	store := catalog.NewStore(rawQuerier{}, catalog.WithRecorder(m))
	r := gin.New()
	RegisterRoutes(r, Deps{
		Pages:    pages.NewHandler(store, sanity.Images{ProjectID: "p", Dataset: "d"}, bundle, nil),
		Checkout: checkout.NewHandler(noSessions{}, "http://localhost:3000", nil, m),
		Webhook:  stripewebhooks.NewHandler(stripe.NewVerifier("whsec_x"), orders.NewLogFulfillment(nil), nil, m),
		Metrics:  m,
	})
	return r
}

func TestRoutes(t *testing.T) {
	r := newEngine(t)

	cases := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusTemporaryRedirect},
		{http.MethodGet, "/en/shop", "", http.StatusOK},
		{http.MethodGet, "/es/archive", "", http.StatusOK},
		{http.MethodGet, "/es/shop/success", "", http.StatusOK},
		{http.MethodPost, "/checkout", `{"items":[{"priceRef":"price_1"}]}`, http.StatusOK},
		{http.MethodPost, "/checkout", `{"items":[]}`, http.StatusBadRequest},
		{http.MethodPost, "/webhooks/payment", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/metrics", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestMetricsExposeRequests(t *testing.T) {
	r := newEngine(t)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}
