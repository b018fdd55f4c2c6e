// Package pages serves the locale-resolved view models behind each page of
// the site. Every string in a response is already in the request's locale.
package pages

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/internal/api/respond"
	"portfolio-site/internal/app/http/middleware"
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/media"
)

// Content is the read side of the content store.
type Content interface {
	AllProjects(ctx context.Context) ([]content.Project, error)
	ProjectBySlug(ctx context.Context, slug string, loc i18n.Locale) (*content.Project, error)
	FeaturedImages(ctx context.Context) ([]content.ImageAsset, error)
	AllImages(ctx context.Context) ([]content.ImageAsset, error)
	SiteSettings(ctx context.Context) (*content.SiteSettings, error)
	AllProducts(ctx context.Context) ([]content.Product, error)
	ProductBySlug(ctx context.Context, slug string, loc i18n.Locale) (*content.Product, error)
}

// ImageURLs turns an image reference into a sized CDN URL.
type ImageURLs interface {
	URL(img *media.Image, width, height int) string
}

type Handler struct {
	content Content
	images  ImageURLs
	bundle  *i18n.Bundle
	log     *zap.Logger
	now     func() time.Time
}

func NewHandler(c Content, images ImageURLs, bundle *i18n.Bundle, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{content: c, images: images, bundle: bundle, log: log, now: time.Now}
}

// Register mounts the page routes on a locale group.
func (h *Handler) Register(g gin.IRoutes) {
	g.GET("", h.Home)
	g.GET("/about", h.About)
	g.GET("/archive", h.Archive)
	g.GET("/archive/lightbox", h.ArchiveLightbox)
	g.GET("/projects/:slug", h.Project)
	g.GET("/projects/:slug/lightbox", h.Lightbox)
	g.GET("/shop", h.Shop)
	g.GET("/shop/success", h.Success)
	g.GET("/shop/:slug", h.Product)
	g.GET("/layout", h.Layout)
}

func (h *Handler) fail(c *gin.Context, loc i18n.Locale, err error) {
	respond.Error(c, h.log, h.bundle, loc, err)
}

func (h *Handler) t(loc i18n.Locale, key string) string {
	return h.bundle.T(loc, key)
}

func locale(c *gin.Context) i18n.Locale {
	return middleware.CurrentLocale(c)
}
