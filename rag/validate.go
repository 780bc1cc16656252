// SPDX-License-Identifier: MIT

package rag

import (
	"fmt"

	"github.com/katalvlaran/regionmap/region"
)

// Validate checks the graph invariants and returns the first violation found,
// visiting labels in ascending order:
//
//   - every adjacency entry and member is a live region (ErrDangling);
//   - no label lists itself (ErrSelfLoop);
//   - b ∈ adjacent(a) implies a ∈ adjacent(b) (ErrAsymmetric);
//   - no two runs of one region cover the same pixel (ErrOverlap).
//
// Complexity: O(V log V + E + R log R).
func (g *Graph) Validate() error {
	owners := make([]region.Label, 0, len(g.adjacency))
	for a := range g.adjacency {
		owners = append(owners, a)
	}
	sortLabels(owners)

	for _, a := range owners {
		if !g.HasRegion(a) {
			return fmt.Errorf("%w: entry for %d", ErrDangling, a)
		}
		nbrs, _ := g.AdjacentLabels(a)
		for _, b := range nbrs {
			switch {
			case a == b:
				return fmt.Errorf("%w: label %d", ErrSelfLoop, a)
			case !g.HasRegion(b):
				return fmt.Errorf("%w: %d lists %d", ErrDangling, a, b)
			case !g.Adjacent(b, a):
				return fmt.Errorf("%w: %d lists %d but not the reverse", ErrAsymmetric, a, b)
			}
		}
	}

	for _, l := range g.Labels() {
		if err := checkOverlap(g.regions[l]); err != nil {
			return err
		}
	}

	return nil
}

func checkOverlap(r *region.Region) error {
	runs := make([]region.Run, len(r.Runs))
	copy(runs, r.Runs)
	region.SortRuns(runs)
	// reach is the furthest column end seen so far on the current row
	reach := 0
	for i, run := range runs {
		if i > 0 && run.Row == runs[i-1].Row && run.Start < reach {
			return fmt.Errorf("%w: region %d at row %d", ErrOverlap, r.Label, run.Row)
		}
		if i == 0 || run.Row != runs[i-1].Row {
			reach = run.End()
			continue
		}
		reach = max(reach, run.End())
	}
	return nil
}
