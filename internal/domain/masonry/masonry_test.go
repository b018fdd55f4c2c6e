package masonry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsFor(t *testing.T) {
	cases := map[int]int{
		0:    4,
		320:  1,
		640:  1,
		700:  2,
		768:  2,
		1000: 3,
		1280: 3,
		1281: 4,
		1920: 4,
	}
	for width, want := range cases {
		assert.Equal(t, want, ColumnsFor(width), "width %d", width)
	}
}

func TestLayoutFillsShortestColumn(t *testing.T) {
	// portrait (h=2), square (h=1), square, landscape (h=0.5)
	cols := Layout([]float64{0.5, 1, 1, 2}, 2)

	require.Len(t, cols, 2)
	assert.Equal(t, []int{0, 3}, cols[0].Items)
	assert.Equal(t, []int{1, 2}, cols[1].Items)
	assert.InDelta(t, 2.5, cols[0].Height, 1e-9)
	assert.InDelta(t, 2.0, cols[1].Height, 1e-9)
}

func TestLayoutTiesGoLeftAndUnknownIsSquare(t *testing.T) {
	cols := Layout([]float64{0, 0, 0, 0}, 3)

	assert.Equal(t, []int{0, 3}, cols[0].Items)
	assert.Equal(t, []int{1}, cols[1].Items)
	assert.Equal(t, []int{2}, cols[2].Items)
}

func TestLayoutKeepsEveryItemOnce(t *testing.T) {
	aspects := []float64{1.5, 0.66, 1, 1.33, 0.75, 2, 1}
	seen := map[int]bool{}
	for _, c := range Layout(aspects, 4) {
		prev := -1
		for _, idx := range c.Items {
			assert.Greater(t, idx, prev)
			prev = idx
			seen[idx] = true
		}
	}
	assert.Len(t, seen, len(aspects))

	single := Layout(aspects, 0)
	require.Len(t, single, 1)
	assert.Len(t, single[0].Items, len(aspects))
}
