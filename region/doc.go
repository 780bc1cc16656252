// SPDX-License-Identifier: MIT

// Package region describes labelled image regions as collections of horizontal
// pixel runs and merges them.
//
// What:
//
//   - Run is a maximal horizontal span (Row, Start, Length) of same-label pixels,
//     covering the half-open column interval [Start, Start+Length).
//   - Region pairs a Label with its Runs and an opaque Attributes map owned by the
//     region but never interpreted by this package.
//   - MergeRuns / Merge combine two run lists into one sorted, coalesced list.
//
// Why:
//
//   - Run-length geometry is compact for segmentation output and cheap to merge.
//   - Attribute filters only need to walk Runs; paint-back only needs Runs.
//
// Merge algorithm:
//
//  1. Stable-sort copies of both run lists by (Row asc, Start asc).
//  2. Two-pointer merge of the sorted lists.
//  3. One coalescing pass: a run on the current row whose Start falls inside
//     [cur.Start, cur.Start+cur.Length] extends cur to
//     max(cur.Length, next.Start+next.Length-cur.Start); otherwise cur is emitted.
//  4. Emit the final accumulated run.
//
// Runs on disjoint rows are kept as they are, so a merged region may be
// geometrically disconnected. Connectivity is never validated.
//
// Complexity:
//
//   - MergeRuns: O(n log n) time for the sorts, O(n) for merge+coalesce, O(n) memory.
//   - Region.Area, Region.Bounds: O(n).
//
// Concurrency:
//
//   - Every function is pure. Inputs are copied before sorting, so callers may
//     merge independent regions from any number of goroutines.
package region
