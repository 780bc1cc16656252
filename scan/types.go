// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"log"
	"runtime"

	"github.com/katalvlaran/regionmap/rag"
)

// ErrInvalidRegion indicates a malformed or degenerate raster.
// Scan absorbs it; Validate returns it.
var ErrInvalidRegion = errors.New("scan: invalid raster")

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced with SetLogger.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Option configures a single Scan call.
type Option func(*Options)

// Options holds the scan parameters.
type Options struct {
	// Workers is the number of row blocks scanned in parallel.
	// Values above the raster height are clamped to it; values below 1 mean 1.
	Workers int

	// StrictRowContact connects consecutive runs of a row only when they abut.
	// By default any two consecutive non-background runs with different labels
	// are connected, even across a background gap.
	StrictRowContact bool

	// Logf receives diagnostics. Nil means the package-level Logf.
	Logf func(format string, v ...any)

	// GraphOptions are passed to rag.New for the returned graph.
	GraphOptions []rag.Option
}

// DefaultOptions returns Options with:
//   - Workers = runtime.GOMAXPROCS(0)
//   - gap-tolerant row contact
//   - the package logger
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel row blocks.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrictRowContact restricts intra-row adjacency to abutting runs.
func WithStrictRowContact() Option {
	return func(o *Options) { o.StrictRowContact = true }
}

// WithLogger sets the diagnostic sink for this call.
func WithLogger(fn func(format string, v ...any)) Option {
	return func(o *Options) { o.Logf = fn }
}

// WithGraphOptions forwards options to the graph constructor.
func WithGraphOptions(opts ...rag.Option) Option {
	return func(o *Options) { o.GraphOptions = append(o.GraphOptions, opts...) }
}
