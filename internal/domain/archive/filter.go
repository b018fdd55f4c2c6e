// Package archive filters the photograph archive by project, location, year
// and tag. Selecting a project derives the location set from the selected
// projects and locks manual location toggling until no project is selected.
package archive

import "portfolio-site/internal/domain/content"

// State is a snapshot of the four selection sets in toggle order.
type State struct {
	Projects  []string `json:"projects"`
	Locations []string `json:"locations"`
	Years     []int    `json:"years"`
	Tags      []string `json:"tags"`
}

func (s State) Active() bool {
	return len(s.Projects) > 0 || len(s.Locations) > 0 || len(s.Years) > 0 || len(s.Tags) > 0
}

// Filter is owned by a single view; it is not safe for concurrent use.
type Filter struct {
	projects  selection[string]
	locations selection[string]
	years     selection[int]
	tags      selection[string]

	version uint64
	memo    memo
}

type memo struct {
	valid   bool
	version uint64
	first   *content.ImageAsset
	n       int
	result  []content.ImageAsset
}

func (f *Filter) ToggleProject(id string) {
	f.projects.toggle(id)
	f.version++
}

// ToggleLocation is a no-op returning false while any project is selected.
func (f *Filter) ToggleLocation(loc string) bool {
	if f.LocationsLocked() {
		return false
	}
	f.locations.toggle(loc)
	f.version++
	return true
}

func (f *Filter) ToggleYear(year int) {
	f.years.toggle(year)
	f.version++
}

func (f *Filter) ToggleTag(tag string) {
	f.tags.toggle(tag)
	f.version++
}

// Clear empties all four sets at once.
func (f *Filter) Clear() {
	f.projects.clear()
	f.locations.clear()
	f.years.clear()
	f.tags.clear()
	f.version++
}

func (f *Filter) HasProject(id string) bool { return f.projects.has(id) }
func (f *Filter) HasLocation(loc string) bool { return f.locations.has(loc) }
func (f *Filter) HasYear(year int) bool { return f.years.has(year) }
func (f *Filter) HasTag(tag string) bool { return f.tags.has(tag) }
func (f *Filter) LocationsLocked() bool { return f.projects.len() > 0 }

func (f *Filter) State() State {
	return State{
		Projects:  f.projects.values(),
		Locations: f.locations.values(),
		Years:     f.years.values(),
		Tags:      f.tags.values(),
	}
}

// EffectiveLocations is the location set the predicate applies.
func (f *Filter) EffectiveLocations(images []content.ImageAsset) []string {
	return EffectiveLocations(images, f.State())
}

// Apply returns the visible images. The result is reused until the filter
// changes or a different image slice is passed; callers must not modify it.
func (f *Filter) Apply(images []content.ImageAsset) []content.ImageAsset {
	var first *content.ImageAsset
	if len(images) > 0 {
		first = &images[0]
	}
	m := &f.memo
	if m.valid && m.version == f.version && m.first == first && m.n == len(images) {
		return m.result
	}
	*m = memo{
		valid:   true,
		version: f.version,
		first:   first,
		n:       len(images),
		result:  Visible(images, f.State()),
	}
	return m.result
}

// EffectiveLocations returns, when projects are selected, the deduplicated
// union of their locations in selection order; otherwise the selected
// locations as they are.
func EffectiveLocations(images []content.ImageAsset, s State) []string {
	if len(s.Projects) == 0 {
		return append([]string{}, s.Locations...)
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, id := range s.Projects {
		for _, loc := range projectLocations(images, id) {
			if _, ok := seen[loc]; ok {
				continue
			}
			seen[loc] = struct{}{}
			out = append(out, loc)
		}
	}
	return out
}

func projectLocations(images []content.ImageAsset, id string) []string {
	for i := range images {
		if images[i].ProjectID() == id {
			return images[i].ProjectLocations()
		}
	}
	return nil
}

// Visible applies the filter predicate to every image, preserving order.
// Empty dimensions impose no constraint; active ones are combined with AND.
func Visible(images []content.ImageAsset, s State) []content.ImageAsset {
	locations := EffectiveLocations(images, s)
	out := make([]content.ImageAsset, 0, len(images))
	for i := range images {
		if matches(&images[i], s, locations) {
			out = append(out, images[i])
		}
	}
	return out
}

func matches(img *content.ImageAsset, s State, locations []string) bool {
	if len(s.Projects) > 0 && !contains(s.Projects, img.ProjectID()) {
		return false
	}
	if len(locations) > 0 && !intersects(img.ProjectLocations(), locations) {
		return false
	}
	if len(s.Years) > 0 {
		year := img.ProjectStartYear()
		if year == 0 || !contains(s.Years, year) {
			return false
		}
	}
	if len(s.Tags) > 0 && !intersects(img.Tags, s.Tags) {
		return false
	}
	return true
}
