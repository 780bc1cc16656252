// SPDX-License-Identifier: MIT

// Package scan turns a label raster into a region adjacency graph in one
// parallel pass.
//
// What:
//
//   - Scan(r, background, opts...) run-length encodes every row into region
//     runs and records which differently labelled regions touch.
//   - The result is a *rag.Graph ready for merging and attribute computation.
//
// Algorithm:
//
//  1. Rows are split into contiguous blocks, one per worker goroutine.
//  2. Each worker, with private state only:
//     • encodes each row into runs of constant non-background label;
//     • connects consecutive runs of a row whose labels differ, whatever the
//     gap between them (WithStrictRowContact requires them to abut);
//     • connects runs of adjacent rows whose column ranges overlap and whose
//     labels differ, comparing each row with the previous one;
//     • keeps its first and last row for the boundary check.
//  3. After all workers return, the last row of each block is compared with
//     the first row of the next block.
//  4. A single goroutine folds the partial results, in block order, into the
//     graph: runs are appended per label, edges are connected symmetrically.
//
// Guarantees:
//
//   - Every non-background pixel belongs to exactly one region's runs, and each
//     region's runs come out in ascending row order.
//   - Every pair of differently labelled, 4-adjacent regions has an edge.
//   - The graph is the same for any worker count.
//
// Invalid input:
//
// A nil raster, a zero dimension or a label buffer of the wrong size is
// absorbed: Scan logs the ErrInvalidRegion condition and returns an empty graph.
// Use Validate to check a raster up front.
//
// N-D rasters:
//
// Higher-dimensional label volumes can be scanned by flattening the outer
// dimensions into rows; adjacency across slices is then not recorded.
//
// Options:
//
//   - WithWorkers(n):          number of row blocks (default GOMAXPROCS, clamped to Height).
//   - WithStrictRowContact():  only abutting runs on a row are connected.
//   - WithLogger(fn):          diagnostic sink for this call (default: package Logf).
//   - WithGraphOptions(...):   options passed to rag.New for the result.
//
// Complexity:
//
//   - Time:   O(W×H / workers) per worker + O(R + E) for the serial fold.
//   - Memory: O(R + E), R = runs, E = edges.
package scan
