package archive

import (
	"sort"

	"portfolio-site/internal/domain/content"
)

// ProjectOption is a selectable project on the archive filter bar.
type ProjectOption struct {
	ID        string                  `json:"id"`
	Summary   *content.ProjectSummary `json:"-"`
	Locations []string                `json:"locations"`
}

type FacetSet struct {
	Projects  []ProjectOption
	Locations []string
	Years     []int
	Tags      []string
}

// Facets lists the filter values present in images: projects in first-seen
// order, locations and tags sorted, years newest first.
func Facets(images []content.ImageAsset) FacetSet {
	fs := FacetSet{Projects: []ProjectOption{}, Locations: []string{}, Years: []int{}, Tags: []string{}}
	projects := map[string]struct{}{}
	locations := map[string]struct{}{}
	years := map[int]struct{}{}
	tags := map[string]struct{}{}

	for i := range images {
		img := &images[i]
		if p := img.Project; p != nil {
			if _, ok := projects[p.ID]; !ok && p.ID != "" {
				projects[p.ID] = struct{}{}
				fs.Projects = append(fs.Projects, ProjectOption{ID: p.ID, Summary: p, Locations: append([]string{}, p.Locations...)})
			}
			for _, l := range p.Locations {
				if _, ok := locations[l]; !ok && l != "" {
					locations[l] = struct{}{}
					fs.Locations = append(fs.Locations, l)
				}
			}
			if _, ok := years[p.StartYear]; !ok && p.StartYear != 0 {
				years[p.StartYear] = struct{}{}
				fs.Years = append(fs.Years, p.StartYear)
			}
		}
		for _, t := range img.Tags {
			if _, ok := tags[t]; !ok && t != "" {
				tags[t] = struct{}{}
				fs.Tags = append(fs.Tags, t)
			}
		}
	}

	sort.Strings(fs.Locations)
	sort.Sort(sort.Reverse(sort.IntSlice(fs.Years)))
	sort.Strings(fs.Tags)
	return fs
}
