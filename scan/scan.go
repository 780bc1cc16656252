// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/regionmap/rag"
	"github.com/katalvlaran/regionmap/raster"
	"github.com/katalvlaran/regionmap/region"
)

// Validate reports ErrInvalidRegion, wrapping the raster error, when r cannot
// be scanned.
func Validate(r *raster.Raster) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, err)
	}
	return nil
}

// Scan builds the region adjacency graph of r. Pixels equal to background
// belong to no region.
//
// Scan never fails: a raster rejected by Validate yields an empty graph and a
// diagnostic on the configured logger.
func Scan(r *raster.Raster, background region.Label, opts ...Option) *rag.Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logf := o.Logf
	if logf == nil {
		logf = Logf
	}

	g := rag.New(o.GraphOptions...)
	if err := Validate(r); err != nil {
		logf("scan: %v; returning empty graph", err)
		return g
	}

	blocks := partition(r.Height, o.Workers)

	// Phase 1: workers scan disjoint row blocks into private partials.
	parts := make([]*partial, len(blocks))
	var eg errgroup.Group
	for i, b := range blocks {
		i, b := i, b // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			parts[i] = scanBlock(r, b[0], b[1], background, o.StrictRowContact)
			return nil
		})
	}
	_ = eg.Wait()

	// Rows shared by two neighbouring blocks were never compared by either worker.
	seams := make(edgeSet)
	for k := 1; k < len(parts); k++ {
		overlapContacts(seams, parts[k-1].last, parts[k].first)
	}

	// Phase 2: serial fold into the graph.
	fold(g, parts, seams, logf)

	return g
}

// partition splits [0, height) into n contiguous non-empty blocks, n clamped
// to [1, height].
func partition(height, n int) [][2]int {
	n = max(1, min(n, height))
	blocks := make([][2]int, n)
	for k := 0; k < n; k++ {
		blocks[k] = [2]int{k * height / n, (k + 1) * height / n}
	}
	return blocks
}

// fold merges worker partials in block order, so each label's runs stay in
// ascending row order, then connects every edge symmetrically.
func fold(g *rag.Graph, parts []*partial, seams edgeSet, logf func(string, ...any)) {
	runs := make(map[region.Label][]region.Run)
	for _, p := range parts {
		for l, rs := range p.runs {
			runs[l] = append(runs[l], rs...)
		}
	}
	for l, rs := range runs {
		if err := g.AddRegion(region.Region{Label: l, Runs: rs}); err != nil {
			logf("scan: dropping region %d: %v", l, err)
		}
	}

	connect := func(edges edgeSet) {
		for e := range edges {
			if err := g.Connect(e.a, e.b); err != nil {
				logf("scan: dropping edge %d-%d: %v", e.a, e.b, err)
			}
		}
	}
	for _, p := range parts {
		connect(p.edges)
	}
	connect(seams)
}
