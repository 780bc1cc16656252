// SPDX-License-Identifier: MIT

package rag

import (
	"errors"

	"github.com/katalvlaran/regionmap/region"
)

// Sentinel errors for graph operations.
var (
	// ErrNotFound indicates a label with no region or no adjacency entry.
	ErrNotFound = errors.New("rag: label not found")

	// ErrNotAdjacent indicates a merge whose keep side does not list the drop side.
	ErrNotAdjacent = errors.New("rag: labels are not adjacent")

	// ErrDuplicateLabel indicates AddRegion was called with a live label.
	ErrDuplicateLabel = errors.New("rag: duplicate region label")

	// ErrEmptyRegion indicates AddRegion was called with a region without runs.
	ErrEmptyRegion = errors.New("rag: region has no runs")

	// ErrSelfLoop indicates an attempt to connect a label to itself.
	ErrSelfLoop = errors.New("rag: region cannot be adjacent to itself")

	// ErrAsymmetric indicates b ∈ adjacent(a) without a ∈ adjacent(b).
	ErrAsymmetric = errors.New("rag: adjacency is not symmetric")

	// ErrDangling indicates an adjacency entry naming a label with no region.
	ErrDangling = errors.New("rag: adjacency references a missing region")

	// ErrOverlap indicates two runs of one region cover the same pixel.
	ErrOverlap = errors.New("rag: region runs overlap")

	// ErrOwnerClosed indicates work submitted to a closed Owner.
	ErrOwnerClosed = errors.New("rag: owner is closed")
)

// Pair names one merge of a batch: Drop is folded into Keep.
type Pair struct {
	Keep region.Label
	Drop region.Label
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Regions int // live regions
	Edges   int // unordered adjacent pairs
	Runs    int // total runs over all regions
	Pixels  int // total pixels over all regions
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithMergeHook registers fn to run after every committed pairwise merge,
// with the surviving and the removed label. Attribute filters use it to
// recompute features of the grown region.
func WithMergeHook(fn func(keep, drop region.Label)) Option {
	return func(g *Graph) { g.onMerge = fn }
}

// Graph is the region adjacency graph.
//
// regions maps each live label to its region. adjacency[a] is the set of labels
// adjacent to a; the relation is kept symmetric by every exported mutator.
// There is no locking: one goroutine owns a Graph (see Owner).
type Graph struct {
	regions   map[region.Label]*region.Region
	adjacency map[region.Label]map[region.Label]struct{}

	onMerge func(keep, drop region.Label)
}

// New returns an empty graph.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		regions:   make(map[region.Label]*region.Region),
		adjacency: make(map[region.Label]map[region.Label]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
