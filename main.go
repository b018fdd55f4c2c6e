package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/config"
	"portfolio-site/internal/api/checkout"
	"portfolio-site/internal/api/pages"
	stripewebhooks "portfolio-site/internal/api/stripewebhook"
	routes "portfolio-site/internal/app/http"
	"portfolio-site/internal/app/http/middleware"
	"portfolio-site/internal/catalog"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/orders"
	"portfolio-site/internal/infra/cache"
	"portfolio-site/internal/infra/metrics"
	"portfolio-site/internal/infra/sanity"
	"portfolio-site/internal/infra/stripe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := middleware.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	var contentCache cache.Cache = cache.NewNoop()
	if cfg.Redis.Addr != "" {
		rc := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			logger.Warn("redis unavailable, content cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = rc.Close()
		} else {
			contentCache = rc
			defer func() { _ = rc.Close() }()
		}
		cancel()
	}

	sanityCfg := sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		Token:      cfg.Sanity.Token,
		UseCDN:     cfg.Sanity.UseCDN,
	}
	sanityClient, err := sanity.New(sanityCfg)
	if err != nil {
		logger.Fatal("content store client", zap.Error(err))
	}
	store := catalog.NewStore(sanityClient,
		catalog.WithCache(contentCache, cfg.Cache.TTL),
		catalog.WithLogger(logger.Named("catalog")),
		catalog.WithRecorder(m),
	)

	sessions, err := stripe.NewSessions(cfg.Stripe.SecretKey, cfg.Stripe.ShippingCountries, nil)
	if err != nil {
		logger.Fatal("payment sessions", zap.Error(err))
	}

	bundle, err := i18n.Embedded()
	if err != nil {
		logger.Fatal("ui strings", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Language", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Pages:    pages.NewHandler(store, sanity.Images{ProjectID: cfg.Sanity.ProjectID, Dataset: cfg.Sanity.Dataset}, bundle, logger.Named("pages")),
		Checkout: checkout.NewHandler(sessions, cfg.AppURL, logger.Named("checkout"), m),
		Webhook: stripewebhooks.NewHandler(
			stripe.NewVerifier(cfg.Stripe.WebhookSecret),
			orders.NewLogFulfillment(logger.Named("orders")),
			logger.Named("webhook"),
			m,
		),
		Metrics: m,
		Log:     logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}
