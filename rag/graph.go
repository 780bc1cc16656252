// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: region lifecycle and read-only queries.
// Determinism:
//   - Labels(), AdjacentLabels() and Regions() iterate in ascending label order.

package rag

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/regionmap/region"
)

// AddRegion inserts r as a new live region. The graph takes ownership of
// r.Runs and r.Attributes; callers must not modify them afterwards.
//
// Errors:
//   - ErrEmptyRegion if r has no runs.
//   - ErrDuplicateLabel if r.Label is already live.
//
// Complexity: O(1).
func (g *Graph) AddRegion(r region.Region) error {
	if len(r.Runs) == 0 {
		return fmt.Errorf("%w: label %d", ErrEmptyRegion, r.Label)
	}
	if _, ok := g.regions[r.Label]; ok {
		return fmt.Errorf("%w: label %d", ErrDuplicateLabel, r.Label)
	}
	g.regions[r.Label] = &r

	return nil
}

// Region returns the live region for label.
//
// The returned pointer aliases graph state. Attribute filters may write
// Attributes through it; Runs must be treated as read-only.
//
// Errors: ErrNotFound if label is not a live region.
// Complexity: O(1).
func (g *Graph) Region(label region.Label) (*region.Region, error) {
	r, ok := g.regions[label]
	if !ok {
		return nil, fmt.Errorf("%w: region %d", ErrNotFound, label)
	}

	return r, nil
}

// HasRegion reports whether label is a live region.
func (g *Graph) HasRegion(label region.Label) bool {
	_, ok := g.regions[label]
	return ok
}

// RegionCount returns the number of live regions.
func (g *Graph) RegionCount() int { return len(g.regions) }

// Labels returns all live labels in ascending order.
// Complexity: O(V log V).
func (g *Graph) Labels() []region.Label {
	out := make([]region.Label, 0, len(g.regions))
	for l := range g.regions {
		out = append(out, l)
	}
	sortLabels(out)

	return out
}

// Regions calls fn for every live region in ascending label order until fn
// returns false. fn must not add, remove or merge regions.
// Complexity: O(V log V).
func (g *Graph) Regions(fn func(r *region.Region) bool) {
	for _, l := range g.Labels() {
		if !fn(g.regions[l]) {
			return
		}
	}
}

// AdjacentLabels returns the labels adjacent to label, sorted ascending.
// The slice is a fresh copy.
//
// Errors: ErrNotFound if label has no adjacency entry (it never touched
// another region).
// Complexity: O(d log d).
func (g *Graph) AdjacentLabels(label region.Label) ([]region.Label, error) {
	nbrs, ok := g.adjacency[label]
	if !ok {
		return nil, fmt.Errorf("%w: adjacency of %d", ErrNotFound, label)
	}
	out := make([]region.Label, 0, len(nbrs))
	for l := range nbrs {
		out = append(out, l)
	}
	sortLabels(out)

	return out, nil
}

// Adjacent reports whether b is recorded as adjacent to a.
// Complexity: O(1).
func (g *Graph) Adjacent(a, b region.Label) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// EdgeCount returns the number of unordered adjacent pairs.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	n := 0
	for a, nbrs := range g.adjacency {
		for b := range nbrs {
			if a < b || !g.Adjacent(b, a) {
				n++
			}
		}
	}

	return n
}

// Stats returns a summary of the graph.
// Complexity: O(V + E + R).
func (g *Graph) Stats() Stats {
	s := Stats{Regions: len(g.regions), Edges: g.EdgeCount()}
	for _, r := range g.regions {
		s.Runs += len(r.Runs)
		s.Pixels += r.Area()
	}

	return s
}

// Clone returns a deep copy of the graph: regions, runs, attributes and
// adjacency are not shared. The merge hook is carried over.
// Complexity: O(V + E + R).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		regions:   make(map[region.Label]*region.Region, len(g.regions)),
		adjacency: make(map[region.Label]map[region.Label]struct{}, len(g.adjacency)),
		onMerge:   g.onMerge,
	}
	for l, r := range g.regions {
		cp := r.Clone()
		c.regions[l] = &cp
	}
	for a, nbrs := range g.adjacency {
		set := make(map[region.Label]struct{}, len(nbrs))
		for b := range nbrs {
			set[b] = struct{}{}
		}
		c.adjacency[a] = set
	}

	return c
}

func sortLabels(ls []region.Label) {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
}
