// Package catalog exposes typed, read-only accessors over the content store.
// Every failure leaves here as an *apperr.Error.
package catalog

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio-site/internal/apperr"
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/infra/cache"
)

// Querier runs a GROQ query and returns the raw result.
type Querier interface {
	Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
}

type Recorder interface {
	CacheHit()
	CacheMiss()
	ObserveContentQuery(name string, err error, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit()                                        {}
func (nopRecorder) CacheMiss()                                       {}
func (nopRecorder) ObserveContentQuery(string, error, time.Duration) {}

type Store struct {
	q     Querier
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
	rec   Recorder
}

type Option func(*Store)

// WithCache caches raw results for ttl. A zero ttl disables caching.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Store) {
		s.cache = c
		s.ttl = ttl
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.rec = r }
}

func NewStore(q Querier, opts ...Option) *Store {
	s := &Store{q: q, cache: cache.NewNoop(), log: zap.NewNop(), rec: nopRecorder{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) AllProjects(ctx context.Context) ([]content.Project, error) {
	var out []content.Project
	if _, err := s.fetch(ctx, "all_projects", allProjectsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ProjectBySlug(ctx context.Context, slug string, loc i18n.Locale) (*content.Project, error) {
	var out content.Project
	if err := s.fetchOne(ctx, "project_by_slug", projectBySlugQuery(loc), slug, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) FeaturedImages(ctx context.Context) ([]content.ImageAsset, error) {
	var out []content.ImageAsset
	if _, err := s.fetch(ctx, "featured_images", featuredImagesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllImages is ordered by parent project start year (newest first), then by
// the image's own order.
func (s *Store) AllImages(ctx context.Context) ([]content.ImageAsset, error) {
	var out []content.ImageAsset
	if _, err := s.fetch(ctx, "all_images", allImagesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SiteSettings returns empty settings when the singleton is not authored yet.
func (s *Store) SiteSettings(ctx context.Context) (*content.SiteSettings, error) {
	var out content.SiteSettings
	if _, err := s.fetch(ctx, "site_settings", siteSettingsQuery, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) AllProducts(ctx context.Context) ([]content.Product, error) {
	var out []content.Product
	if _, err := s.fetch(ctx, "all_products", allProductsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ProductBySlug(ctx context.Context, slug string, loc i18n.Locale) (*content.Product, error) {
	var out content.Product
	if err := s.fetchOne(ctx, "product_by_slug", productBySlugQuery(loc), slug, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) fetchOne(ctx context.Context, name, query, slug string, dest any) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return apperr.NotFound("not found")
	}
	found, err := s.fetch(ctx, name, query, map[string]any{"slug": slug}, dest)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("not found")
	}
	return nil
}

// fetch decodes the query result into dest and reports whether it was
// non-null.
func (s *Store) fetch(ctx context.Context, name, query string, params map[string]any, dest any) (bool, error) {
	key, err := cacheKey(query, params)
	if err != nil {
		return false, apperr.Upstream("content store unavailable", err)
	}

	if s.ttl > 0 {
		raw, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn("content cache get failed", zap.String("query", name), zap.Error(err))
		case ok:
			if found, err := decode(raw, dest); err == nil {
				s.rec.CacheHit()
				return found, nil
			}
			s.log.Warn("content cache entry unreadable", zap.String("query", name))
			if err := s.cache.Delete(ctx, key); err != nil {
				s.log.Warn("content cache delete failed", zap.String("query", name), zap.Error(err))
			}
		}
		s.rec.CacheMiss()
	}

	start := time.Now()
	raw, err := s.q.Query(ctx, query, params)
	s.rec.ObserveContentQuery(name, err, time.Since(start))
	if err != nil {
		return false, apperr.Upstream("content store unavailable", err)
	}

	found, err := decode(raw, dest)
	if err != nil {
		return false, apperr.Upstream("content store returned malformed data", err)
	}

	if s.ttl > 0 {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.Warn("content cache set failed", zap.String("query", name), zap.Error(err))
		}
	}
	return found, nil
}

func decode(raw []byte, dest any) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func cacheKey(query string, params map[string]any) (string, error) {
	p, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(append([]byte(query), p...))
	return "content:" + hex.EncodeToString(sum[:]), nil
}
