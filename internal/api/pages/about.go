package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/richtext"
)

type TimelineEntry struct {
	Title    string `json:"title"`
	Href     string `json:"href,omitempty"`
	Years    string `json:"years"`
	Location string `json:"location,omitempty"`
}

type MilestoneView struct {
	Title string `json:"title"`
	Venue string `json:"venue,omitempty"`
	Year  int    `json:"year"`
}

type AboutPage struct {
	Bio          []string             `json:"bio"`
	BioHTML      string               `json:"bioHtml"`
	Portrait     *ImageView           `json:"portrait,omitempty"`
	ContactEmail string               `json:"contactEmail,omitempty"`
	SocialLinks  []content.SocialLink `json:"socialLinks"`
	Timeline     []TimelineEntry      `json:"timeline"`
	Exhibitions  []MilestoneView      `json:"exhibitions"`
	Awards       []MilestoneView      `json:"awards"`
	Labels       map[string]string    `json:"labels"`
}

// About handles GET /{locale}/about.
func (h *Handler) About(c *gin.Context) {
	loc := locale(c)

	var (
		settings *content.SiteSettings
		projects []content.Project
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		settings, err = h.content.SiteSettings(ctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = h.content.AllProjects(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, loc, err)
		return
	}

	c.JSON(http.StatusOK, h.aboutPage(loc, settings, projects))
}

func (h *Handler) aboutPage(loc i18n.Locale, s *content.SiteSettings, projects []content.Project) AboutPage {
	if s == nil {
		s = &content.SiteSettings{}
	}
	bio := i18n.Text(&s.AboutBio, loc)

	timeline := make([]TimelineEntry, 0, len(projects))
	for _, p := range content.Timeline(projects) {
		timeline = append(timeline, TimelineEntry{
			Title:    i18n.String(&p.Title, loc),
			Href:     projectHref(loc, i18n.SlugString(&p.Slug, loc)),
			Years:    p.Years(loc),
			Location: content.FirstLocation(p.Locations),
		})
	}

	social := s.SocialLinks
	if social == nil {
		social = []content.SocialLink{}
	}

	return AboutPage{
		Bio:          richtext.Paragraphs(bio),
		BioHTML:      richtext.HTML(bio),
		Portrait:     h.imageView(s.AboutImage, s.SiteName, portraitWidth, 0),
		ContactEmail: s.ContactEmail,
		SocialLinks:  social,
		Timeline:     timeline,
		Exhibitions:  milestones(loc, s.Exhibitions),
		Awards:       milestones(loc, s.Awards),
		Labels: map[string]string{
			"timeline":    h.t(loc, "common.projectsOverTime"),
			"contact":     h.t(loc, "common.contact"),
			"follow":      h.t(loc, "common.follow"),
			"exhibitions": h.t(loc, "common.exhibitions"),
			"awards":      h.t(loc, "common.awards"),
		},
	}
}

func milestones(loc i18n.Locale, items []content.Milestone) []MilestoneView {
	sorted := content.ByYearDesc(items)
	out := make([]MilestoneView, 0, len(sorted))
	for i := range sorted {
		m := &sorted[i]
		out = append(out, MilestoneView{
			Title: i18n.String(&m.Title, loc),
			Venue: i18n.String(&m.Venue, loc),
			Year:  m.Year,
		})
	}
	return out
}
