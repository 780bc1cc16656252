// SPDX-License-Identifier: MIT

package rag

import (
	"fmt"

	"github.com/katalvlaran/regionmap/region"
)

// MergeLabels folds region drop into region keep.
//
// Implementation:
//   - Stage 1: keep == drop returns nil without touching the graph.
//   - Stage 2: validate both labels and, if keep has an adjacency entry, that
//     it lists drop. Nothing is mutated before this stage passes.
//   - Stage 3: merged runs = region.Merge(keep, drop); keep's attributes survive.
//   - Stage 4: every neighbour L of drop other than keep loses drop and gains
//     keep, and keep gains L.
//   - Stage 5: drop's adjacency entry is deleted and drop is removed from keep's.
//   - Stage 6: keep takes the merged runs; drop's region is deleted.
//   - Stage 7: the merge hook, if any, runs.
//
// The merged geometry is not checked for connectivity.
//
// Errors:
//   - ErrNotFound if keep or drop is not a live region.
//   - ErrNotAdjacent if keep has an adjacency entry without drop.
//
// Complexity: O(n log n + d), n = runs of both regions, d = degree of drop.
func (g *Graph) MergeLabels(keep, drop region.Label) error {
	if keep == drop {
		return nil
	}
	kr, ok := g.regions[keep]
	if !ok {
		return fmt.Errorf("%w: keep region %d", ErrNotFound, keep)
	}
	dr, ok := g.regions[drop]
	if !ok {
		return fmt.Errorf("%w: drop region %d", ErrNotFound, drop)
	}
	if nbrs, ok := g.adjacency[keep]; ok {
		if _, ok := nbrs[drop]; !ok {
			return fmt.Errorf("%w: %d does not list %d", ErrNotAdjacent, keep, drop)
		}
	}

	merged := region.Merge(*kr, *dr)

	for l := range g.adjacency[drop] {
		if l == keep {
			continue
		}
		g.removeAdjacentLabel(l, drop)
		g.addAdjacentLabel(l, keep)
		g.addAdjacentLabel(keep, l)
	}
	delete(g.adjacency, drop)
	g.removeAdjacentLabel(keep, drop)

	kr.Runs = merged.Runs
	delete(g.regions, drop)

	if g.onMerge != nil {
		g.onMerge(keep, drop)
	}

	return nil
}

// MergePairs applies pairs in order.
//
// Before pair i runs, every later pair whose Keep or Drop equals pair i's Drop
// is rewritten to pair i's Keep. A chain 1←2, 2←3 therefore becomes 1←2, 1←3,
// and a cycle 1←2, 2←1 becomes 1←2, 1←1 where the second pair is a no-op.
// The caller's slice is not modified.
//
// There is no rollback: when pair i fails, pairs before it stay merged and the
// returned error names the failing pair and wraps its sentinel.
//
// Complexity: O(p²) for the rewrites plus the cost of each merge.
func (g *Graph) MergePairs(pairs []Pair) error {
	work := make([]Pair, len(pairs))
	copy(work, pairs)

	for i, p := range work {
		for j := i + 1; j < len(work); j++ {
			if work[j].Keep == p.Drop {
				work[j].Keep = p.Keep
			}
			if work[j].Drop == p.Drop {
				work[j].Drop = p.Keep
			}
		}
		if err := g.MergeLabels(p.Keep, p.Drop); err != nil {
			return fmt.Errorf("rag: merge pair %d (%d <- %d): %w", i, p.Keep, p.Drop, err)
		}
	}

	return nil
}
