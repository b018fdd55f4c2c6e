package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/internal/api/checkout"
	"portfolio-site/internal/api/pages"
	stripewebhooks "portfolio-site/internal/api/stripewebhook"
	"portfolio-site/internal/app/http/middleware"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/infra/metrics"
)

type Deps struct {
	Pages    *pages.Handler
	Checkout *checkout.Handler
	Webhook  *stripewebhooks.Handler
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.LocaleRedirect(),
	)

	// The webhook needs the raw body for signature checks.
	r.POST("/webhooks/payment", d.Webhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	public := r.Group("/")
	public.Use(middleware.SanitizeJSONInput())
	public.POST("/checkout", d.Checkout.Create)

	for _, loc := range i18n.Locales {
		g := r.Group("/"+loc.String(), middleware.SetLocale(loc))
		d.Pages.Register(g)
	}
}
