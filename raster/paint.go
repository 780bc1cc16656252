// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/katalvlaran/regionmap/rag"
	"github.com/katalvlaran/regionmap/region"
)

// Paint renders g into a new width×height raster: pixels covered by a
// region's runs get the region's label, everything else gets background.
// Regions are painted in ascending label order, so if two regions overlap the
// larger label wins.
//
// Returns ErrEmptyRaster for non-positive dimensions and ErrOutOfBounds,
// naming the offending region, when a run does not fit.
// Complexity: O(W×H + P).
func Paint(g *rag.Graph, width, height int, background region.Label) (*Raster, error) {
	return PaintFunc(g, width, height, background, func(r *region.Region) region.Label { return r.Label })
}

// PaintFunc is Paint with the written value chosen per region by classify,
// e.g. a class label derived from the region's attributes.
func PaintFunc(g *rag.Graph, width, height int, background region.Label, classify func(*region.Region) region.Label) (*Raster, error) {
	out, err := New(width, height, background)
	if err != nil {
		return nil, err
	}

	g.Regions(func(r *region.Region) bool {
		value := classify(r)
		for _, run := range r.Runs {
			if run.Length < 0 || !out.InBounds(run.Row, run.Start) || run.End() > out.Width {
				err = fmt.Errorf("%w: region %d run %+v", ErrOutOfBounds, r.Label, run)
				return false
			}
			row := out.Row(run.Row)
			for x := run.Start; x < run.End(); x++ {
				row[x] = value
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
