// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regionmap/region"
)

// Sentinel errors for raster construction and painting.
var (
	// ErrEmptyRaster indicates a raster with no rows or no columns.
	ErrEmptyRaster = errors.New("raster: raster must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrSizeMismatch indicates a label buffer that does not match Width×Height.
	ErrSizeMismatch = errors.New("raster: label count does not match dimensions")
	// ErrOutOfBounds indicates a run outside the raster.
	ErrOutOfBounds = errors.New("raster: run outside raster bounds")
)

// Raster is a row-major grid of labels.
type Raster struct {
	Width, Height int
	Labels        []region.Label
}

// New allocates a Width×Height raster filled with fill.
// Returns ErrEmptyRaster if either dimension is not positive.
func New(width, height int, fill region.Label) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRaster
	}
	labels := make([]region.Label, width*height)
	if fill != 0 {
		for i := range labels {
			labels[i] = fill
		}
	}

	return &Raster{Width: width, Height: height, Labels: labels}, nil
}

// From2D builds a raster from rows of labels, values[y][x].
// The input is deep-copied.
// Returns ErrEmptyRaster if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func From2D(values [][]region.Label) (*Raster, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyRaster
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	labels := make([]region.Label, 0, w*h)
	for _, row := range values {
		labels = append(labels, row...)
	}

	return &Raster{Width: w, Height: h, Labels: labels}, nil
}

// FromLabels wraps an existing row-major buffer without copying it.
// Returns ErrEmptyRaster for non-positive dimensions and ErrSizeMismatch when
// len(labels) != width*height.
func FromLabels(width, height int, labels []region.Label) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRaster
	}
	if len(labels) != width*height {
		return nil, fmt.Errorf("%w: %d labels for %d×%d", ErrSizeMismatch, len(labels), width, height)
	}

	return &Raster{Width: width, Height: height, Labels: labels}, nil
}

// Validate reports whether r is usable: non-nil, positive dimensions, and a
// label buffer of exactly Width×Height entries.
func (r *Raster) Validate() error {
	if r == nil || r.Width <= 0 || r.Height <= 0 {
		return ErrEmptyRaster
	}
	if len(r.Labels) != r.Width*r.Height {
		return fmt.Errorf("%w: %d labels for %d×%d", ErrSizeMismatch, len(r.Labels), r.Width, r.Height)
	}
	return nil
}

// InBounds reports whether (row, col) lies inside the raster.
func (r *Raster) InBounds(row, col int) bool {
	return col >= 0 && col < r.Width && row >= 0 && row < r.Height
}

// At returns the label at (row, col). It panics when out of bounds, like a
// slice index would.
func (r *Raster) At(row, col int) region.Label {
	return r.Labels[r.index(row, col)]
}

// Set writes label at (row, col).
func (r *Raster) Set(row, col int, label region.Label) {
	r.Labels[r.index(row, col)] = label
}

// Row returns the labels of one row. The slice aliases the raster.
func (r *Raster) Row(row int) []region.Label {
	start := row * r.Width
	return r.Labels[start : start+r.Width : start+r.Width]
}

// index maps (row, col) to the row-major offset.
func (r *Raster) index(row, col int) int {
	return row*r.Width + col
}

// Coordinate converts a row-major offset back to (row, col).
func (r *Raster) Coordinate(idx int) (row, col int) {
	return idx / r.Width, idx % r.Width
}
