// Package masonry balances variable aspect-ratio items across columns.
package masonry

const DefaultColumns = 4

// Breakpoint maps a maximum viewport width to a column count.
type Breakpoint struct {
	MaxWidth int
	Columns  int
}

// Breakpoints in ascending width; wider viewports get DefaultColumns.
var Breakpoints = []Breakpoint{
	{MaxWidth: 640, Columns: 1},
	{MaxWidth: 768, Columns: 2},
	{MaxWidth: 1024, Columns: 3},
	{MaxWidth: 1280, Columns: 3},
}

// ColumnsFor returns the column count for a viewport width. Zero or negative
// widths mean unknown and get DefaultColumns.
func ColumnsFor(width int) int {
	if width <= 0 {
		return DefaultColumns
	}
	for _, bp := range Breakpoints {
		if width <= bp.MaxWidth {
			return bp.Columns
		}
	}
	return DefaultColumns
}

type Column struct {
	Items  []int   `json:"items"`
	Height float64 `json:"height"`
}

// Layout places items, given as aspect ratios (width/height), one by one on
// the shortest column so far; ties go to the leftmost. Each item contributes
// 1/aspect to its column height, and an unknown aspect counts as square.
func Layout(aspects []float64, columns int) []Column {
	if columns < 1 {
		columns = 1
	}
	out := make([]Column, columns)
	for i := range out {
		out[i].Items = []int{}
	}
	for idx, a := range aspects {
		if a <= 0 {
			a = 1
		}
		shortest := 0
		for c := 1; c < columns; c++ {
			if out[c].Height < out[shortest].Height {
				shortest = c
			}
		}
		out[shortest].Items = append(out[shortest].Items, idx)
		out[shortest].Height += 1 / a
	}
	return out
}
