// SPDX-License-Identifier: MIT

package scan

import (
	"slices"

	"github.com/katalvlaran/regionmap/raster"
	"github.com/katalvlaran/regionmap/region"
)

// labeledRun is a run tagged with the label it was encoded from.
type labeledRun struct {
	label region.Label
	run   region.Run
}

// edge is an unordered label pair, smaller label first.
type edge struct {
	a, b region.Label
}

func makeEdge(x, y region.Label) edge {
	if x > y {
		x, y = y, x
	}
	return edge{a: x, b: y}
}

type edgeSet map[edge]struct{}

func (s edgeSet) add(x, y region.Label) {
	if x == y {
		return
	}
	s[makeEdge(x, y)] = struct{}{}
}

// partial is one worker's private result for rows [lo, hi).
type partial struct {
	lo, hi int
	runs   map[region.Label][]region.Run
	edges  edgeSet

	first []labeledRun // runs of row lo
	last  []labeledRun // runs of row hi-1
}

// scanBlock encodes rows [lo, hi) of r and records the contacts inside them.
// It reads only r and writes only the returned partial.
func scanBlock(r *raster.Raster, lo, hi int, background region.Label, strict bool) *partial {
	p := &partial{
		lo:    lo,
		hi:    hi,
		runs:  make(map[region.Label][]region.Run),
		edges: make(edgeSet),
	}

	var prev, cur []labeledRun
	for y := lo; y < hi; y++ {
		cur = encodeRow(r.Row(y), y, background, cur[:0])
		for i, lr := range cur {
			p.runs[lr.label] = append(p.runs[lr.label], lr.run)
			if i > 0 {
				rowContact(p.edges, cur[i-1], lr, strict)
			}
		}
		if y > lo {
			overlapContacts(p.edges, prev, cur)
		} else {
			p.first = slices.Clone(cur)
		}
		prev, cur = cur, prev
	}
	p.last = slices.Clone(prev)

	return p
}

// encodeRow appends the non-background runs of one row to dst.
func encodeRow(labels []region.Label, y int, background region.Label, dst []labeledRun) []labeledRun {
	for x := 0; x < len(labels); {
		l := labels[x]
		start := x
		for x < len(labels) && labels[x] == l {
			x++
		}
		if l == background {
			continue
		}
		dst = append(dst, labeledRun{label: l, run: region.Run{Row: y, Start: start, Length: x - start}})
	}
	return dst
}

// rowContact connects two consecutive runs of one row.
// Without strict, a background gap between them does not matter.
func rowContact(edges edgeSet, left, right labeledRun, strict bool) {
	if left.label == right.label {
		return
	}
	if strict && left.run.End() != right.run.Start {
		return
	}
	edges.add(left.label, right.label)
}

// overlapContacts connects runs of two consecutive rows whose columns overlap.
// Both slices are in column order; the sweep is linear in their lengths.
func overlapContacts(edges edgeSet, upper, lower []labeledRun) {
	i, j := 0, 0
	for i < len(upper) && j < len(lower) {
		u, l := upper[i].run, lower[j].run
		if u.Start < l.End() && l.Start < u.End() {
			edges.add(upper[i].label, lower[j].label)
		}
		switch {
		case u.End() < l.End():
			i++
		case u.End() > l.End():
			j++
		default:
			i++
			j++
		}
	}
}
