package pages

import (
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/masonry"
	"portfolio-site/internal/domain/media"
)

// Image widths requested from the CDN per placement.
const (
	cardWidth     = 800
	heroWidth     = 1920
	galleryWidth  = 1600
	lightboxWidth = 2400
	productWidth  = 1200
	thumbWidth    = 400
	portraitWidth = 1000
)

type ImageView struct {
	URL         string  `json:"url"`
	Alt         string  `json:"alt"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
}

// Card is one tile in a masonry grid.
type Card struct {
	ID               string     `json:"id"`
	Image            *ImageView `json:"image,omitempty"`
	Caption          string     `json:"caption"`
	ProjectTitle     string     `json:"projectTitle,omitempty"`
	Location         string     `json:"location,omitempty"`
	Medium           string     `json:"medium,omitempty"`
	Href             string     `json:"href,omitempty"`
	AvailableAsPrint bool       `json:"availableAsPrint,omitempty"`
}

type ProjectLink struct {
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
}

func (h *Handler) imageView(img *media.Image, alt string, width, height int) *ImageView {
	if !img.Present() {
		return nil
	}
	u := h.images.URL(img, width, height)
	if u == "" {
		return nil
	}
	return &ImageView{
		URL:         u,
		Alt:         alt,
		AspectRatio: img.AspectRatio(),
		Placeholder: img.Placeholder(),
	}
}

func projectHref(loc i18n.Locale, slug string) string {
	if slug == "" {
		return ""
	}
	return "/" + loc.String() + "/projects/" + slug
}

func productHref(loc i18n.Locale, slug string) string {
	if slug == "" {
		return ""
	}
	return "/" + loc.String() + "/shop/" + slug
}

func summaryLink(loc i18n.Locale, p *content.ProjectSummary) *ProjectLink {
	if p == nil {
		return nil
	}
	title := i18n.String(&p.Title, loc)
	if title == "" {
		return nil
	}
	return &ProjectLink{Title: title, Href: projectHref(loc, i18n.SlugString(&p.Slug, loc))}
}

func (h *Handler) card(loc i18n.Locale, a *content.ImageAsset) Card {
	caption := i18n.String(&a.Caption, loc)
	c := Card{
		ID:               a.ID,
		Caption:          caption,
		Medium:           content.Caption(a.Medium, a.FilmFormat),
		Location:         content.FirstLocation(a.ProjectLocations()),
		AvailableAsPrint: a.AvailableAsPrint,
	}
	if a.Project != nil {
		c.ProjectTitle = i18n.String(&a.Project.Title, loc)
		c.Href = projectHref(loc, i18n.SlugString(&a.Project.Slug, loc))
	}
	alt := caption
	if alt == "" {
		alt = c.ProjectTitle
	}
	c.Image = h.imageView(a.Image, alt, cardWidth, 0)
	return c
}

// columns lays cards out over n masonry columns.
func columns(cards []Card, n int) [][]Card {
	aspects := make([]float64, len(cards))
	for i := range cards {
		if cards[i].Image != nil {
			aspects[i] = cards[i].Image.AspectRatio
		}
	}
	layout := masonry.Layout(aspects, n)
	out := make([][]Card, len(layout))
	for i, col := range layout {
		out[i] = make([]Card, 0, len(col.Items))
		for _, idx := range col.Items {
			out[i] = append(out[i], cards[idx])
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
