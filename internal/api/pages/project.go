package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/richtext"
)

type GalleryItem struct {
	Index   int        `json:"index"`
	ID      string     `json:"id"`
	Image   *ImageView `json:"image,omitempty"`
	Caption string     `json:"caption,omitempty"`
	Medium  string     `json:"medium,omitempty"`
}

type ProjectPage struct {
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Hero            *ImageView        `json:"hero,omitempty"`
	Years           string            `json:"years"`
	Locations       []string          `json:"locations"`
	Description     []string          `json:"description"`
	DescriptionHTML string            `json:"descriptionHtml"`
	Medium          string            `json:"medium,omitempty"`
	ImageCount      int               `json:"imageCount"`
	Collaborators   []string          `json:"collaborators"`
	Publications    []string          `json:"publications"`
	Gallery         []GalleryItem     `json:"gallery"`
	Next            *ProjectLink      `json:"next,omitempty"`
	Back            Link              `json:"back"`
	Labels          map[string]string `json:"labels"`
}

// Project handles GET /{locale}/projects/:slug.
func (h *Handler) Project(c *gin.Context) {
	loc := locale(c)
	slug := c.Param("slug")

	var (
		project *content.Project
		all     []content.Project
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		project, err = h.content.ProjectBySlug(ctx, slug, loc)
		return err
	})
	g.Go(func() (err error) {
		all, err = h.content.AllProjects(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, loc, err)
		return
	}

	c.JSON(http.StatusOK, h.projectPage(loc, project, all))
}

func (h *Handler) projectPage(loc i18n.Locale, p *content.Project, all []content.Project) ProjectPage {
	title := i18n.String(&p.Title, loc)
	desc := i18n.Text(&p.Description, loc)

	gallery := make([]GalleryItem, 0, len(p.Images))
	for i := range p.Images {
		a := &p.Images[i]
		caption := i18n.String(&a.Caption, loc)
		alt := caption
		if alt == "" {
			alt = title
		}
		gallery = append(gallery, GalleryItem{
			Index:   i,
			ID:      a.ID,
			Image:   h.imageView(a.Image, alt, galleryWidth, 0),
			Caption: caption,
			Medium:  content.Caption(a.Medium, a.FilmFormat),
		})
	}

	var next *ProjectLink
	if n := content.NextProject(all, p.ID); n != nil {
		next = &ProjectLink{
			Title: i18n.String(&n.Title, loc),
			Href:  projectHref(loc, i18n.SlugString(&n.Slug, loc)),
		}
	}

	medium := ""
	if p.PrimaryMedium != "" {
		medium = p.PrimaryMedium.Label(loc)
	}

	return ProjectPage{
		Title:           title,
		Slug:            i18n.SlugString(&p.Slug, loc),
		Hero:            h.imageView(p.FeaturedImage, title, heroWidth, 0),
		Years:           p.Years(loc),
		Locations:       nonNil(p.Locations),
		Description:     richtext.Paragraphs(desc),
		DescriptionHTML: richtext.HTML(desc),
		Medium:          medium,
		ImageCount:      len(p.Images),
		Collaborators:   nonNil(p.Collaborators),
		Publications:    i18n.List(&p.Publications, loc),
		Gallery:         gallery,
		Next:            next,
		Back:            Link{Label: h.t(loc, "common.backToArchive"), Href: "/" + loc.String() + "/archive"},
		Labels: map[string]string{
			"photographs":   strconv.Itoa(len(p.Images)) + " " + h.t(loc, "common.photographs"),
			"collaborators": h.t(loc, "common.collaborators"),
			"publications":  h.t(loc, "common.publications"),
			"nextProject":   h.t(loc, "common.nextProject"),
		},
	}
}
