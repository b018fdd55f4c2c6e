package pages

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/navigation"
)

type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type LanguageOption struct {
	Locale string `json:"locale"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type Footer struct {
	ContactEmail string               `json:"contactEmail,omitempty"`
	ContactLabel string               `json:"contactLabel"`
	FollowLabel  string               `json:"followLabel"`
	SocialLinks  []content.SocialLink `json:"socialLinks"`
	Copyright    string               `json:"copyright"`
}

type LayoutPage struct {
	SiteName   string           `json:"siteName,omitempty"`
	Home       string           `json:"home"`
	Navigation []NavLink        `json:"navigation"`
	NavVisible bool             `json:"navVisible"`
	Languages  []LanguageOption `json:"languages"`
	Footer     Footer           `json:"footer"`
}

// Layout handles GET /{locale}/layout?path=&scrollY=&lastScrollY=. The path
// marks the active link and is rewritten for the language toggle.
func (h *Handler) Layout(c *gin.Context) {
	loc := locale(c)
	settings, err := h.content.SiteSettings(c.Request.Context())
	if err != nil {
		h.fail(c, loc, err)
		return
	}

	base := "/" + loc.String()
	path := c.Query("path")
	if path != base && !strings.HasPrefix(path, base+"/") {
		path = base
	}

	visible := true
	if y, err := strconv.Atoi(c.Query("scrollY")); err == nil {
		last, _ := strconv.Atoi(c.Query("lastScrollY"))
		visible = navigation.VisibleAfter(last, y)
	}

	c.JSON(http.StatusOK, h.layoutPage(loc, path, settings, visible))
}

func (h *Handler) layoutPage(loc i18n.Locale, path string, s *content.SiteSettings, navVisible bool) LayoutPage {
	if s == nil {
		s = &content.SiteSettings{}
	}
	base := "/" + loc.String()

	nav := []NavLink{
		{Label: h.t(loc, "navigation.archive"), Href: base + "/archive"},
		{Label: h.t(loc, "navigation.shop"), Href: base + "/shop"},
		{Label: h.t(loc, "navigation.about"), Href: base + "/about"},
	}
	for i := range nav {
		nav[i].Active = path == nav[i].Href || strings.HasPrefix(path, nav[i].Href+"/")
	}

	langs := make([]LanguageOption, 0, len(i18n.Locales))
	for _, l := range i18n.Locales {
		langs = append(langs, LanguageOption{
			Locale: l.String(),
			Href:   i18n.SwitchPath(path, loc, l),
			Active: l == loc,
		})
	}

	social := s.SocialLinks
	if social == nil {
		social = []content.SocialLink{}
	}

	return LayoutPage{
		SiteName:   s.SiteName,
		Home:       base,
		Navigation: nav,
		NavVisible: navVisible,
		Languages:  langs,
		Footer: Footer{
			ContactEmail: s.ContactEmail,
			ContactLabel: h.t(loc, "common.contact"),
			FollowLabel:  h.t(loc, "common.follow"),
			SocialLinks:  social,
			Copyright:    h.bundle.Tf(loc, "common.copyright", map[string]string{"year": strconv.Itoa(h.now().Year())}),
		},
	}
}
