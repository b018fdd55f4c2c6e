package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-site/internal/domain/archive"
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/masonry"
)

type ProjectFacet struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Locations []string `json:"locations"`
	Selected  bool     `json:"selected"`
}

type StringFacet struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled,omitempty"`
}

type YearFacet struct {
	Value    int  `json:"value"`
	Selected bool `json:"selected"`
}

type ArchiveFacets struct {
	Projects  []ProjectFacet `json:"projects"`
	Locations []StringFacet  `json:"locations"`
	Years     []YearFacet    `json:"years"`
	Tags      []StringFacet  `json:"tags"`
}

type ArchivePage struct {
	Facets             ArchiveFacets     `json:"facets"`
	Selection          archive.State     `json:"selection"`
	EffectiveLocations []string          `json:"effectiveLocations"`
	LocationsLocked    bool              `json:"locationsLocked"`
	Active             bool              `json:"active"`
	Count              int               `json:"count"`
	Showing            string            `json:"showing"`
	NoResults          string            `json:"noResults,omitempty"`
	Columns            [][]Card          `json:"columns"`
	Labels             map[string]string `json:"labels"`
}

// Archive handles GET /{locale}/archive. Repeated project, location, year and
// tag parameters select filter values; location is ignored while a project
// is selected.
func (h *Handler) Archive(c *gin.Context) {
	loc := locale(c)
	images, err := h.content.AllImages(c.Request.Context())
	if err != nil {
		h.fail(c, loc, err)
		return
	}

	f := filterFromQuery(c)
	c.JSON(http.StatusOK, h.archivePage(loc, images, f, widthParam(c)))
}

func filterFromQuery(c *gin.Context) *archive.Filter {
	f := &archive.Filter{}
	for _, id := range c.QueryArray("project") {
		if id != "" && !f.HasProject(id) {
			f.ToggleProject(id)
		}
	}
	for _, l := range c.QueryArray("location") {
		if l != "" && !f.HasLocation(l) {
			f.ToggleLocation(l)
		}
	}
	for _, raw := range c.QueryArray("year") {
		if y, err := strconv.Atoi(raw); err == nil && y > 0 && !f.HasYear(y) {
			f.ToggleYear(y)
		}
	}
	for _, t := range c.QueryArray("tag") {
		if t != "" && !f.HasTag(t) {
			f.ToggleTag(t)
		}
	}
	return f
}

func (h *Handler) archivePage(loc i18n.Locale, images []content.ImageAsset, f *archive.Filter, width int) ArchivePage {
	visible := f.Apply(images)
	effective := f.EffectiveLocations(images)
	locked := f.LocationsLocked()
	facets := archive.Facets(images)

	view := ArchiveFacets{
		Projects:  make([]ProjectFacet, 0, len(facets.Projects)),
		Locations: make([]StringFacet, 0, len(facets.Locations)),
		Years:     make([]YearFacet, 0, len(facets.Years)),
		Tags:      make([]StringFacet, 0, len(facets.Tags)),
	}
	for _, p := range facets.Projects {
		view.Projects = append(view.Projects, ProjectFacet{
			ID:        p.ID,
			Title:     i18n.String(&p.Summary.Title, loc),
			Locations: p.Locations,
			Selected:  f.HasProject(p.ID),
		})
	}
	for _, l := range facets.Locations {
		selected := f.HasLocation(l)
		if locked {
			selected = containsString(effective, l)
		}
		view.Locations = append(view.Locations, StringFacet{Value: l, Selected: selected, Disabled: locked})
	}
	for _, y := range facets.Years {
		view.Years = append(view.Years, YearFacet{Value: y, Selected: f.HasYear(y)})
	}
	for _, t := range facets.Tags {
		view.Tags = append(view.Tags, StringFacet{Value: t, Selected: f.HasTag(t)})
	}

	cards := make([]Card, 0, len(visible))
	for i := range visible {
		cards = append(cards, h.card(loc, &visible[i]))
	}

	page := ArchivePage{
		Facets:             view,
		Selection:          f.State(),
		EffectiveLocations: nonNil(effective),
		LocationsLocked:    locked,
		Active:             f.State().Active(),
		Count:              len(visible),
		Showing:            h.bundle.Tf(loc, "common.showing", map[string]string{"count": strconv.Itoa(len(visible))}),
		Columns:            columns(cards, masonry.ColumnsFor(width)),
		Labels: map[string]string{
			"projects":     h.t(loc, "common.projects"),
			"location":     h.t(loc, "common.location"),
			"year":         h.t(loc, "common.year"),
			"tags":         h.t(loc, "common.tags"),
			"clearFilters": h.t(loc, "common.clearFilters"),
		},
	}
	if len(visible) == 0 {
		page.NoResults = h.t(loc, "common.noResults")
	}
	return page
}

func containsString(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
