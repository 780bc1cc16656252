// SPDX-License-Identifier: MIT

package rag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionmap/region"
)

func TestToGonum(t *testing.T) {
	g := scenario(t)
	require.NoError(t, g.AddRegion(region.Region{Label: 8, Runs: []region.Run{{Row: 8, Start: 0, Length: 1}}}))

	ug := g.ToGonum()

	assert.Equal(t, 4, ug.Nodes().Len())
	assert.Equal(t, 2, ug.Edges().Len())
	assert.True(t, ug.HasEdgeBetween(1, 2))
	assert.True(t, ug.HasEdgeBetween(3, 2))
	assert.False(t, ug.HasEdgeBetween(1, 3))
	assert.NotNil(t, ug.Node(8), "isolated regions are kept as nodes")
}

func TestComponents(t *testing.T) {
	g := build(t, fixture{
		regions: map[region.Label][]region.Run{
			10: {{Row: 0, Start: 0, Length: 1}},
			4:  {{Row: 0, Start: 1, Length: 1}},
			7:  {{Row: 5, Start: 0, Length: 1}},
			2:  {{Row: 5, Start: 1, Length: 1}},
			9:  {{Row: 9, Start: 9, Length: 1}},
		},
		edges: [][2]region.Label{{10, 4}, {7, 2}},
	})

	got := g.Components()
	assert.Equal(t, [][]region.Label{{2, 7}, {4, 10}, {9}}, got)

	require.NoError(t, g.Connect(4, 7))
	assert.Equal(t, [][]region.Label{{2, 4, 7, 10}, {9}}, g.Components())
}
