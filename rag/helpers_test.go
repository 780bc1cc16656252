// SPDX-License-Identifier: MIT

package rag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionmap/rag"
	"github.com/katalvlaran/regionmap/region"
)

// fixture describes a graph by region runs and undirected edges.
type fixture struct {
	regions map[region.Label][]region.Run
	edges   [][2]region.Label
}

func build(t testing.TB, f fixture, opts ...rag.Option) *rag.Graph {
	t.Helper()
	g := rag.New(opts...)
	for l, runs := range f.regions {
		require.NoError(t, g.AddRegion(region.Region{Label: l, Runs: runs}))
	}
	for _, e := range f.edges {
		require.NoError(t, g.Connect(e[0], e[1]))
	}
	return g
}

// scenario is the 3×3 raster (background 0)
//
//	1 1 0
//	1 2 2
//	0 2 0
//
// extended with a region 3 on a fourth row touching only region 2:
//
//	0 3 0
func scenario(t testing.TB, opts ...rag.Option) *rag.Graph {
	return build(t, fixture{
		regions: map[region.Label][]region.Run{
			1: {{Row: 0, Start: 0, Length: 2}, {Row: 1, Start: 0, Length: 1}},
			2: {{Row: 1, Start: 1, Length: 2}, {Row: 2, Start: 1, Length: 1}},
			3: {{Row: 3, Start: 1, Length: 1}},
		},
		edges: [][2]region.Label{{1, 2}, {2, 3}},
	}, opts...)
}

// references reports whether any adjacency entry mentions label.
func references(g *rag.Graph, label region.Label) bool {
	for _, l := range g.Labels() {
		if l == label {
			return true
		}
		nbrs, err := g.AdjacentLabels(l)
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if n == label {
				return true
			}
		}
	}
	return false
}
