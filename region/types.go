// SPDX-License-Identifier: MIT

package region

import "maps"

// Label identifies a region. Labels are unique among the live regions of a graph.
type Label uint32

// Run is a horizontal span of pixels on one row.
// It covers columns [Start, Start+Length).
type Run struct {
	Row    int // raster row
	Start  int // first column
	Length int // number of pixels, > 0 for any run produced by a scan
}

// End returns the first column after the run.
func (r Run) End() int { return r.Start + r.Length }

// Contains reports whether pixel (row, col) lies inside r.
func (r Run) Contains(row, col int) bool {
	return r.Row == row && col >= r.Start && col < r.End()
}

// Overlaps reports whether r and o share at least one pixel.
func (r Run) Overlaps(o Run) bool {
	return r.Row == o.Row && r.Start < o.End() && o.Start < r.End()
}

// Touches reports whether r and o share a pixel or abut on the same row.
func (r Run) Touches(o Run) bool {
	return r.Row == o.Row && r.Start <= o.End() && o.Start <= r.End()
}

// less orders runs by row, then start column.
func (r Run) less(o Run) bool {
	if r.Row != o.Row {
		return r.Row < o.Row
	}
	return r.Start < o.Start
}

// Region is a labelled set of pixels stored as runs.
//
// Runs of one region never overlap after MergeRuns or Coalesce; a scanner may
// hand them over in any order. Attributes holds caller-owned feature values
// (moments, band statistics, ...) and is carried along untouched.
type Region struct {
	Label      Label
	Runs       []Run
	Attributes map[string]float64
}

// Rect is an inclusive row/column bounding box.
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Area returns the number of pixels covered by the region.
// Overlapping runs are counted twice; coalesce first if that matters.
// Complexity: O(n).
func (r *Region) Area() int {
	n := 0
	for _, run := range r.Runs {
		n += run.Length
	}
	return n
}

// Bounds returns the bounding box of the region's runs and false when the
// region has no runs.
// Complexity: O(n).
func (r *Region) Bounds() (Rect, bool) {
	if len(r.Runs) == 0 {
		return Rect{}, false
	}
	first := r.Runs[0]
	b := Rect{MinRow: first.Row, MaxRow: first.Row, MinCol: first.Start, MaxCol: first.End() - 1}
	for _, run := range r.Runs[1:] {
		b.MinRow = min(b.MinRow, run.Row)
		b.MaxRow = max(b.MaxRow, run.Row)
		b.MinCol = min(b.MinCol, run.Start)
		b.MaxCol = max(b.MaxCol, run.End()-1)
	}
	return b, true
}

// Contains reports whether pixel (row, col) belongs to the region.
// Complexity: O(n).
func (r *Region) Contains(row, col int) bool {
	for _, run := range r.Runs {
		if run.Contains(row, col) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy: runs and attributes are not shared with r.
func (r *Region) Clone() Region {
	out := Region{Label: r.Label}
	if r.Runs != nil {
		out.Runs = make([]Run, len(r.Runs))
		copy(out.Runs, r.Runs)
	}
	out.Attributes = maps.Clone(r.Attributes)
	return out
}
