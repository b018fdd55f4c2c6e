package content

import (
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/media"
)

type Project struct {
	ID            string               `json:"_id"`
	Type          string               `json:"_type,omitempty"`
	Title         i18n.LocalizedString `json:"title"`
	Slug          i18n.LocalizedSlug   `json:"slug"`
	StartYear     int                  `json:"startYear"`
	EndYear       *int                 `json:"endYear,omitempty"`
	IsOngoing     bool                 `json:"isOngoing"`
	Locations     []string             `json:"locations,omitempty"`
	Description   i18n.LocalizedText   `json:"description"`
	FeaturedImage *media.Image         `json:"featuredImage,omitempty"`
	PrimaryMedium Medium               `json:"primaryMedium,omitempty"`
	Collaborators []string             `json:"collaborators,omitempty"`
	Publications  i18n.LocalizedList   `json:"publications"`
	IsFeatured    bool                 `json:"isFeatured"`
	Order         *float64             `json:"order,omitempty"`
	Images        []ImageAsset         `json:"images,omitempty"`
}

// ProjectSummary is the parent project embedded in image and product records.
type ProjectSummary struct {
	ID        string               `json:"_id"`
	Title     i18n.LocalizedString `json:"title"`
	Slug      i18n.LocalizedSlug   `json:"slug"`
	Locations []string             `json:"locations,omitempty"`
	StartYear int                  `json:"startYear,omitempty"`
	EndYear   *int                 `json:"endYear,omitempty"`
	IsOngoing bool                 `json:"isOngoing"`
}

func (p *Project) Years(loc i18n.Locale) string {
	return i18n.FormatYears(p.StartYear, p.EndYear, p.IsOngoing, loc)
}

func (p *ProjectSummary) Years(loc i18n.Locale) string {
	if p == nil {
		return ""
	}
	return i18n.FormatYears(p.StartYear, p.EndYear, p.IsOngoing, loc)
}

// FirstLocation returns the first location or "".
func FirstLocation(locations []string) string {
	if len(locations) == 0 {
		return ""
	}
	return locations[0]
}

// NextProject returns the project after the one with id, wrapping to the
// first. Nil when id is unknown or there is nothing else to show.
func NextProject(projects []Project, id string) *Project {
	if len(projects) < 2 {
		return nil
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[(i+1)%len(projects)]
		}
	}
	return nil
}
