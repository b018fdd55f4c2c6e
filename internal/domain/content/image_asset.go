package content

import (
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/media"
)

type ImageAsset struct {
	ID               string               `json:"_id"`
	Image            *media.Image         `json:"image,omitempty"`
	Caption          i18n.LocalizedString `json:"caption"`
	Medium           Medium               `json:"medium,omitempty"`
	FilmFormat       FilmFormat           `json:"filmFormat,omitempty"`
	IsFeatured       bool                 `json:"isFeatured"`
	Project          *ProjectSummary      `json:"project,omitempty"`
	Tags             []string             `json:"tags,omitempty"`
	AvailableAsPrint bool                 `json:"availableAsPrint"`
	Order            *float64             `json:"order,omitempty"`
}

func (a *ImageAsset) ProjectID() string {
	if a.Project == nil {
		return ""
	}
	return a.Project.ID
}

func (a *ImageAsset) ProjectLocations() []string {
	if a.Project == nil {
		return nil
	}
	return a.Project.Locations
}

func (a *ImageAsset) ProjectStartYear() int {
	if a.Project == nil {
		return 0
	}
	return a.Project.StartYear
}
