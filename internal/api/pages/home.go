package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/masonry"
	"portfolio-site/internal/domain/richtext"
)

type FeaturedProject struct {
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Href     string     `json:"href,omitempty"`
	Location string     `json:"location,omitempty"`
	Years    string     `json:"years,omitempty"`
	Excerpt  string     `json:"excerpt,omitempty"`
	Image    *ImageView `json:"image,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type HomePage struct {
	Heading  string            `json:"heading"`
	Columns  [][]Card          `json:"columns"`
	Projects []FeaturedProject `json:"projects"`
	CTA      Link              `json:"cta"`
}

// Home handles GET /{locale}.
func (h *Handler) Home(c *gin.Context) {
	loc := locale(c)

	var (
		images   []content.ImageAsset
		settings *content.SiteSettings
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		images, err = h.content.FeaturedImages(ctx)
		return err
	})
	g.Go(func() (err error) {
		settings, err = h.content.SiteSettings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, loc, err)
		return
	}

	c.JSON(http.StatusOK, h.homePage(loc, images, settings, widthParam(c)))
}

func (h *Handler) homePage(loc i18n.Locale, images []content.ImageAsset, settings *content.SiteSettings, width int) HomePage {
	cards := make([]Card, 0, len(images))
	for i := range images {
		cards = append(cards, h.card(loc, &images[i]))
	}

	featured := settings.Featured()
	projects := make([]FeaturedProject, 0, len(featured))
	for i := range featured {
		projects = append(projects, h.featuredProject(loc, &featured[i]))
	}

	return HomePage{
		Heading:  h.t(loc, "common.featuredWork"),
		Columns:  columns(cards, masonry.ColumnsFor(width)),
		Projects: projects,
		CTA:      Link{Label: h.t(loc, "common.viewFullArchive"), Href: "/" + loc.String() + "/archive"},
	}
}

func (h *Handler) featuredProject(loc i18n.Locale, p *content.Project) FeaturedProject {
	title := i18n.String(&p.Title, loc)
	slug := i18n.SlugString(&p.Slug, loc)
	return FeaturedProject{
		Title:    title,
		Slug:     slug,
		Href:     projectHref(loc, slug),
		Location: content.FirstLocation(p.Locations),
		Years:    p.Years(loc),
		Excerpt:  richtext.Excerpt(i18n.Text(&p.Description, loc)),
		Image:    h.imageView(p.FeaturedImage, title, cardWidth, 0),
	}
}

// widthParam reads the viewport width hint; absent or invalid means unknown.
func widthParam(c *gin.Context) int {
	w, err := strconv.Atoi(c.Query("width"))
	if err != nil || w < 0 {
		return 0
	}
	return w
}
