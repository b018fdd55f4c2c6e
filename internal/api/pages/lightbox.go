package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-site/internal/apperr"
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/gallery"
	"portfolio-site/internal/domain/i18n"
)

type LightboxFrame struct {
	gallery.State
	Counter      string     `json:"counter,omitempty"`
	Image        *ImageView `json:"image,omitempty"`
	Caption      string     `json:"caption,omitempty"`
	Medium       string     `json:"medium,omitempty"`
	ProjectTitle string     `json:"projectTitle,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Print        string     `json:"print,omitempty"`
}

// Lightbox handles GET /{locale}/projects/:slug/lightbox.
func (h *Handler) Lightbox(c *gin.Context) {
	loc := locale(c)
	p, err := h.content.ProjectBySlug(c.Request.Context(), c.Param("slug"), loc)
	if err != nil {
		h.fail(c, loc, err)
		return
	}
	h.lightbox(c, loc, p.Images, i18n.String(&p.Title, loc))
}

// ArchiveLightbox handles GET /{locale}/archive/lightbox over the images the
// archive filter currently shows.
func (h *Handler) ArchiveLightbox(c *gin.Context) {
	loc := locale(c)
	images, err := h.content.AllImages(c.Request.Context())
	if err != nil {
		h.fail(c, loc, err)
		return
	}
	h.lightbox(c, loc, filterFromQuery(c).Apply(images), "")
}

// lightbox opens at ?index=, then applies ?info=, ?key= and ?target= in that
// order. Without an index the lightbox stays closed.
func (h *Handler) lightbox(c *gin.Context, loc i18n.Locale, images []content.ImageAsset, projectTitle string) {
	lb := gallery.New(len(images))

	if raw, ok := c.GetQuery("index"); ok {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, loc, apperr.Validation("index must be an integer"))
			return
		}
		if err := lb.OpenAt(idx); err != nil {
			h.fail(c, loc, apperr.Validation("image index out of range"))
			return
		}
	}
	if info, _ := strconv.ParseBool(c.Query("info")); info {
		lb.ToggleInfo()
	}
	if key := c.Query("key"); key != "" {
		lb.HandleKey(key)
	}
	if target := c.Query("target"); target != "" {
		lb.HandlePointer(gallery.Target(target))
	}

	c.JSON(http.StatusOK, h.lightboxFrame(loc, lb, images, projectTitle))
}

func (h *Handler) lightboxFrame(loc i18n.Locale, lb *gallery.Lightbox, images []content.ImageAsset, projectTitle string) LightboxFrame {
	st := lb.State()
	if !st.Open {
		return LightboxFrame{State: st}
	}
	a := &images[st.Index]
	caption := i18n.String(&a.Caption, loc)
	if a.Project != nil {
		projectTitle = i18n.String(&a.Project.Title, loc)
	}
	frame := LightboxFrame{
		State:        st,
		Counter:      lb.Counter(),
		Image:        h.imageView(a.Image, caption, lightboxWidth, 0),
		Caption:      caption,
		Medium:       content.Caption(a.Medium, a.FilmFormat),
		ProjectTitle: projectTitle,
	}
	if st.InfoVisible {
		frame.Tags = a.Tags
		if a.AvailableAsPrint {
			frame.Print = h.t(loc, "common.availableAsPrint")
		}
	}
	return frame
}
