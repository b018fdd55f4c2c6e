package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/domain/content"
)

func fixture() []content.ImageAsset {
	andes := &content.ProjectSummary{ID: "andes", Locations: []string{"Lima", "Quito"}, StartYear: 2021}
	iberia := &content.ProjectSummary{ID: "iberia", Locations: []string{"Madrid", "Lima"}, StartYear: 2019}
	nowhere := &content.ProjectSummary{ID: "nowhere"}

	return []content.ImageAsset{
		{ID: "1", Project: andes, Tags: []string{"street"}},
		{ID: "2", Project: andes, Tags: []string{"portrait"}},
		{ID: "3", Project: iberia, Tags: []string{"street", "night"}},
		{ID: "4", Project: iberia},
		{ID: "5", Project: nowhere, Tags: []string{"night"}},
		{ID: "6"},
	}
}

func ids(images []content.ImageAsset) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.ID)
	}
	return out
}

func TestNoSelectionShowsEverything(t *testing.T) {
	var f Filter
	images := fixture()

	assert.Equal(t, ids(images), ids(f.Apply(images)))
	assert.False(t, f.State().Active())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	var f Filter
	before := f.State()

	f.ToggleTag("street")
	f.ToggleTag("street")
	f.ToggleYear(2021)
	f.ToggleYear(2021)
	require.True(t, f.ToggleLocation("Lima"))
	require.True(t, f.ToggleLocation("Lima"))
	f.ToggleProject("andes")
	f.ToggleProject("andes")

	assert.Equal(t, before, f.State())
}

func TestToggleOrderIrrelevantToMembership(t *testing.T) {
	var a, b Filter
	a.ToggleTag("x")
	a.ToggleTag("y")
	b.ToggleTag("y")
	b.ToggleTag("x")

	images := []content.ImageAsset{{ID: "1", Tags: []string{"x"}}, {ID: "2", Tags: []string{"y"}}, {ID: "3"}}
	assert.Equal(t, ids(a.Apply(images)), ids(b.Apply(images)))
	assert.True(t, a.HasTag("x") && b.HasTag("x"))
}

func TestAddingConstraintNeverGrowsResult(t *testing.T) {
	images := fixture()
	var f Filter
	prev := len(f.Apply(images))

	steps := []func(){
		func() { f.ToggleTag("street") },
		func() { f.ToggleYear(2021) },
		func() { f.ToggleProject("andes") },
	}
	for _, step := range steps {
		step()
		n := len(f.Apply(images))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
	assert.Equal(t, []string{"1"}, ids(f.Apply(images)))
}

func TestProjectSelectionLocksLocations(t *testing.T) {
	images := fixture()
	var f Filter
	f.ToggleProject("andes")

	assert.True(t, f.LocationsLocked())
	assert.Equal(t, []string{"Lima", "Quito"}, f.EffectiveLocations(images))

	assert.False(t, f.ToggleLocation("Madrid"))
	assert.Equal(t, []string{"Lima", "Quito"}, f.EffectiveLocations(images))
	assert.False(t, f.HasLocation("Madrid"))
}

func TestEffectiveLocationsUnionInSelectionOrder(t *testing.T) {
	images := fixture()
	var f Filter
	f.ToggleProject("iberia")
	f.ToggleProject("andes")

	assert.Equal(t, []string{"Madrid", "Lima", "Quito"}, f.EffectiveLocations(images))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(f.Apply(images)))

	f.ToggleProject("iberia")
	f.ToggleProject("andes")
	assert.False(t, f.LocationsLocked())
	assert.True(t, f.ToggleLocation("Madrid"))
	assert.Equal(t, []string{"Madrid"}, f.EffectiveLocations(images))
}

func TestMissingProjectDataFailsActiveDimensions(t *testing.T) {
	images := fixture()

	byLocation := Visible(images, State{Locations: []string{"Lima"}})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(byLocation))

	byYear := Visible(images, State{Years: []int{2019}})
	assert.Equal(t, []string{"3", "4"}, ids(byYear))

	byTag := Visible(images, State{Tags: []string{"night"}})
	assert.Equal(t, []string{"3", "5"}, ids(byTag))
}

func TestClearResetsAllSets(t *testing.T) {
	var f Filter
	f.ToggleProject("andes")
	f.ToggleYear(2021)
	f.ToggleTag("street")

	f.Clear()

	assert.Equal(t, State{Projects: []string{}, Locations: []string{}, Years: []int{}, Tags: []string{}}, f.State())
	assert.Len(t, f.Apply(fixture()), 6)
}

func TestApplyRecomputesAfterChange(t *testing.T) {
	images := fixture()
	var f Filter

	all := f.Apply(images)
	assert.Len(t, all, 6)
	f.ToggleTag("portrait")
	assert.Equal(t, []string{"2"}, ids(f.Apply(images)))

	other := images[:2]
	assert.Equal(t, []string{"2"}, ids(f.Apply(other)))
	assert.Empty(t, f.Apply(nil))
}

func TestFacets(t *testing.T) {
	fs := Facets(fixture())

	require.Len(t, fs.Projects, 3)
	assert.Equal(t, "andes", fs.Projects[0].ID)
	assert.Equal(t, []string{"Lima", "Madrid", "Quito"}, fs.Locations)
	assert.Equal(t, []int{2021, 2019}, fs.Years)
	assert.Equal(t, []string{"night", "portrait", "street"}, fs.Tags)
}
