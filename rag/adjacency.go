// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: adjacency editing.
// Policy:
//   - Exported mutators are symmetric.
//   - The directed primitives stay private; merge code pairs them itself.

package rag

import (
	"fmt"

	"github.com/katalvlaran/regionmap/region"
)

// Connect records a and b as adjacent in both directions. Idempotent.
//
// Errors:
//   - ErrSelfLoop if a == b.
//   - ErrNotFound if either label is not a live region.
//
// Complexity: O(1).
func (g *Graph) Connect(a, b region.Label) error {
	if a == b {
		return fmt.Errorf("%w: label %d", ErrSelfLoop, a)
	}
	if err := g.requireLive(a, b); err != nil {
		return err
	}
	g.addAdjacentLabel(a, b)
	g.addAdjacentLabel(b, a)

	return nil
}

// Disconnect removes the adjacency between a and b in both directions.
// Removing a missing edge is a no-op.
//
// Errors: ErrNotFound if either label is not a live region.
// Complexity: O(1).
func (g *Graph) Disconnect(a, b region.Label) error {
	if err := g.requireLive(a, b); err != nil {
		return err
	}
	g.removeAdjacentLabel(a, b)
	g.removeAdjacentLabel(b, a)

	return nil
}

// Isolate removes every edge touching label, on both sides. The label keeps
// an empty adjacency entry if it had one.
//
// Errors: ErrNotFound if label is not a live region.
// Complexity: O(d).
func (g *Graph) Isolate(label region.Label) error {
	if err := g.requireLive(label); err != nil {
		return err
	}
	for l := range g.adjacency[label] {
		g.removeAdjacentLabel(l, label)
	}
	g.clearAdjacentLabels(label)

	return nil
}

func (g *Graph) requireLive(labels ...region.Label) error {
	for _, l := range labels {
		if _, ok := g.regions[l]; !ok {
			return fmt.Errorf("%w: region %d", ErrNotFound, l)
		}
	}
	return nil
}

// addAdjacentLabel inserts b into adjacency[a] only.
func (g *Graph) addAdjacentLabel(a, b region.Label) {
	nbrs, ok := g.adjacency[a]
	if !ok {
		nbrs = make(map[region.Label]struct{})
		g.adjacency[a] = nbrs
	}
	nbrs[b] = struct{}{}
}

// removeAdjacentLabel deletes b from adjacency[a] only. It never creates an entry.
func (g *Graph) removeAdjacentLabel(a, b region.Label) {
	if nbrs, ok := g.adjacency[a]; ok {
		delete(nbrs, b)
	}
}

// clearAdjacentLabels drops all outgoing edges of label, keeping an empty entry.
func (g *Graph) clearAdjacentLabels(label region.Label) {
	if _, ok := g.adjacency[label]; ok {
		g.adjacency[label] = make(map[region.Label]struct{})
	}
}
