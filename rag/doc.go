// SPDX-License-Identifier: MIT

// Package rag provides the region adjacency graph: the set of labelled regions
// produced by a scan, the relation recording which regions touch, and the merge
// operations that keep both consistent.
//
// What:
//
//   - Graph owns label → *region.Region and label → set of adjacent labels.
//   - Connect / Disconnect / Isolate edit the relation symmetrically.
//   - MergeLabels(keep, drop) folds drop's geometry into keep and rewires every
//     edge of drop onto keep.
//   - MergePairs applies an ordered batch of merges, rewriting later pairs that
//     name an already removed label so chains such as 1←2, 2←3 resolve to one region.
//   - ToGonum / Components expose the relation to gonum's graph algorithms.
//   - Owner serializes access to a Graph from many goroutines.
//
// Adjacency entries:
//
// A label gets an adjacency entry the first time it is connected to another
// label. Regions that never touched anything have no entry, and AdjacentLabels
// reports ErrNotFound for them. An entry emptied by Disconnect, Isolate or a
// merge stays present with no members.
//
// Merge preconditions:
//
//   - keep == drop is a no-op.
//   - Both labels must be live regions, otherwise ErrNotFound.
//   - If keep has an adjacency entry, it must list drop, otherwise ErrNotAdjacent.
//     A keep side without any entry is accepted.
//
// All checks run before the first mutation, so a failed MergeLabels leaves the
// graph untouched. MergePairs is not transactional: pairs committed before a
// failing pair stay committed.
//
// Batch cycles:
//
// MergePairs resolves cycles deterministically. Before pair i is applied, every
// later reference to pair i's Drop becomes pair i's Keep, so the pair closing a
// cycle (1←2 followed by 2←1) turns into a self-merge and is skipped.
//
// Concurrency:
//
// Graph has no internal locking; it is meant to be owned by a single goroutine.
// Wrap it in an Owner to submit work from several goroutines; closures run one at
// a time in submission order.
//
// Complexity:
//
//   - Region, HasRegion, Adjacent: O(1).
//   - AdjacentLabels, Labels: O(k log k) for the sorted copy.
//   - MergeLabels: O(n log n + d), n = runs of both regions, d = degree of drop.
//   - MergePairs: O(p² + Σ merge) for p pairs.
//   - Validate, Clone, ToGonum: O(V + E + R), R = total runs.
//
// Errors:
//
//   - ErrNotFound       - no region or adjacency entry for a label.
//   - ErrNotAdjacent    - keep's adjacency entry does not list drop.
//   - ErrDuplicateLabel - AddRegion with a label already present.
//   - ErrEmptyRegion    - AddRegion with no runs.
//   - ErrSelfLoop       - Connect(a, a).
//   - ErrAsymmetric, ErrDangling, ErrOverlap - reported by Validate.
//   - ErrOwnerClosed    - Owner.Do after Close.
package rag
