// SPDX-License-Identifier: MIT

// Package raster holds the in-memory label image handed over by a segmentation
// stage and paints region graphs back into label images.
//
// What:
//
//   - Raster is a row-major Width×Height grid of region.Label values.
//   - New, From2D and FromLabels build and validate rasters.
//   - Paint / PaintFunc write every region's runs into a fresh raster, with the
//     region's own label or a derived class label.
//
// Layout:
//
//	Labels[y*Width + x] is the label at row y, column x.
//
// Complexity:
//
//   - From2D: O(W×H) time and memory (deep copy).
//   - Paint:  O(W×H + P), P = painted pixels.
//
// Errors:
//
//   - ErrEmptyRaster: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrSizeMismatch: label slice length differs from Width×Height.
//   - ErrOutOfBounds: a run lies outside the target raster.
package raster
