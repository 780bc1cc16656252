// SPDX-License-Identifier: MIT

package region

import (
	"maps"
	"sort"
)

// SortRuns stable-sorts runs in place by (Row asc, Start asc).
// Complexity: O(n log n).
func SortRuns(runs []Run) {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].less(runs[j]) })
}

// MergeRuns merges two run lists into one sorted, coalesced list.
// Neither input is modified. Either input may be empty.
//
// Runs on the same row that overlap or abut are fused. Runs on different rows
// are never fused, so the result may describe a disconnected pixel set.
//
// Complexity: O(n log n) time, O(n) memory, n = len(a)+len(b).
func MergeRuns(a, b []Run) []Run {
	sa := sortedCopy(a)
	sb := sortedCopy(b)

	merged := make([]Run, 0, len(sa)+len(sb))
	i, j := 0, 0
	for i < len(sa) && j < len(sb) {
		// ties take from a first, keeping the merge stable
		if sb[j].less(sa[i]) {
			merged = append(merged, sb[j])
			j++
			continue
		}
		merged = append(merged, sa[i])
		i++
	}
	merged = append(merged, sa[i:]...)
	merged = append(merged, sb[j:]...)

	return coalesceSorted(merged)
}

// Coalesce sorts a copy of runs and fuses overlapping or abutting runs on the
// same row. It is MergeRuns with an empty second list.
func Coalesce(runs []Run) []Run {
	return coalesceSorted(sortedCopy(runs))
}

// Merge combines primary and secondary into a region labelled like primary.
// The result carries a copy of primary's attributes; secondary's attributes are
// dropped. Callers keeping one side of a merge pass that side as primary.
func Merge(primary, secondary Region) Region {
	return Region{
		Label:      primary.Label,
		Runs:       MergeRuns(primary.Runs, secondary.Runs),
		Attributes: maps.Clone(primary.Attributes),
	}
}

func sortedCopy(runs []Run) []Run {
	out := make([]Run, len(runs))
	copy(out, runs)
	SortRuns(out)
	return out
}

// coalesceSorted fuses runs of an already sorted slice, reusing its backing array.
func coalesceSorted(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	out := runs[:0]
	cur := runs[0]
	for _, next := range runs[1:] {
		if next.Row == cur.Row && next.Start >= cur.Start && next.Start <= cur.End() {
			cur.Length = max(cur.Length, next.End()-cur.Start)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}
