// SPDX-License-Identifier: MIT

package rag_test

import (
	"testing"

	"github.com/katalvlaran/regionmap/rag"
	"github.com/katalvlaran/regionmap/region"
)

// stripeGraph builds n one-row regions side by side, each adjacent to the next.
func stripeGraph(b *testing.B, n int) *rag.Graph {
	b.Helper()
	g := rag.New()
	for i := 0; i < n; i++ {
		l := region.Label(i + 1)
		if err := g.AddRegion(region.Region{Label: l, Runs: []region.Run{{Row: 0, Start: i * 4, Length: 4}, {Row: 1, Start: i * 4, Length: 4}}}); err != nil {
			b.Fatal(err)
		}
		if i > 0 {
			if err := g.Connect(l-1, l); err != nil {
				b.Fatal(err)
			}
		}
	}
	return g
}

// BenchmarkMergePairs_Chain folds a 1000-region stripe into its first region
// through a fully chained batch (i ← i+1).
func BenchmarkMergePairs_Chain(b *testing.B) {
	const n = 1000
	pairs := make([]rag.Pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, rag.Pair{Keep: region.Label(i), Drop: region.Label(i + 1)})
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := stripeGraph(b, n)
		b.StartTimer()
		if err := g.MergePairs(pairs); err != nil {
			b.Fatal(err)
		}
	}
}
