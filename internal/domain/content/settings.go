package content

import (
	"sort"

	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/media"
)

// MaxFeaturedProjects caps the homepage selection.
const MaxFeaturedProjects = 4

type SiteSettings struct {
	ID               string             `json:"_id"`
	SiteName         string             `json:"siteName"`
	AboutBio         i18n.LocalizedText `json:"aboutBio"`
	AboutImage       *media.Image       `json:"aboutImage,omitempty"`
	ContactEmail     string             `json:"contactEmail,omitempty"`
	SocialLinks      []SocialLink       `json:"socialLinks,omitempty"`
	FeaturedProjects []Project          `json:"featuredProjects,omitempty"`
	Exhibitions      []Milestone        `json:"exhibitions,omitempty"`
	Awards           []Milestone        `json:"awards,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Milestone is a dated exhibition or award line.
type Milestone struct {
	Title i18n.LocalizedString `json:"title"`
	Venue i18n.LocalizedString `json:"venue"`
	Year  int                  `json:"year"`
}

// Featured returns at most MaxFeaturedProjects projects.
func (s *SiteSettings) Featured() []Project {
	if s == nil {
		return nil
	}
	if len(s.FeaturedProjects) > MaxFeaturedProjects {
		return s.FeaturedProjects[:MaxFeaturedProjects]
	}
	return s.FeaturedProjects
}

// ByYearDesc returns a copy sorted newest first; equal years keep their order.
func ByYearDesc(items []Milestone) []Milestone {
	out := append([]Milestone(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

// Timeline orders projects by start year, newest first.
func Timeline(projects []Project) []Project {
	out := append([]Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartYear > out[j].StartYear })
	return out
}
