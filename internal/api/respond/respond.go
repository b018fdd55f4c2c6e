// Package respond renders handler errors as {"error": message}.
package respond

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/internal/apperr"
	"portfolio-site/internal/domain/i18n"
)

// Translator resolves UI strings for the generic messages.
type Translator interface {
	T(loc i18n.Locale, key string) string
}

// Error writes the status for err's kind. NotFound and Upstream bodies are
// localized; the underlying cause is logged and never sent.
func Error(c *gin.Context, log *zap.Logger, tr Translator, loc i18n.Locale, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	appErr := apperr.From(err)
	status := apperr.Status(appErr.Kind)

	msg := appErr.Message
	switch appErr.Kind {
	case apperr.KindNotFound:
		msg = translate(tr, loc, "errors.notFound", "Not found")
	case apperr.KindUpstream:
		msg = translate(tr, loc, "errors.internal", "Internal server error")
		log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(err),
		)
	case apperr.KindIntegrity:
		log.Warn("content integrity violation", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func translate(tr Translator, loc i18n.Locale, key, fallback string) string {
	if tr == nil {
		return fallback
	}
	if s := tr.T(loc, key); s != key {
		return s
	}
	return fallback
}
