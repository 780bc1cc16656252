// SPDX-License-Identifier: MIT

package rag

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/regionmap/region"
)

// ToGonum converts the graph into an undirected gonum graph. Every live region
// becomes a node whose ID is its label; every adjacent pair becomes one edge.
// Isolated regions are included as edgeless nodes.
//
// Complexity: O(V + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, l := range g.Labels() {
		ug.AddNode(simple.Node(int64(l)))
	}
	for a, nbrs := range g.adjacency {
		for b := range nbrs {
			if a == b || !g.HasRegion(a) || !g.HasRegion(b) {
				continue
			}
			if ug.HasEdgeBetween(int64(a), int64(b)) {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(int64(a)), T: simple.Node(int64(b))})
		}
	}

	return ug
}

// Components groups live regions into sets that are mutually reachable
// through adjacency. Labels inside a group are ascending; groups are ordered
// by their smallest label.
//
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]region.Label {
	comps := topo.ConnectedComponents(g.ToGonum())
	out := make([][]region.Label, 0, len(comps))
	for _, c := range comps {
		group := make([]region.Label, 0, len(c))
		for _, n := range c {
			group = append(group, region.Label(n.ID()))
		}
		sortLabels(group)
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
