// SPDX-License-Identifier: MIT

package region_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionmap/region"
)

func TestMergeRuns_Coalesce(t *testing.T) {
	got := region.MergeRuns(
		[]region.Run{{Row: 0, Start: 0, Length: 5}},
		[]region.Run{{Row: 0, Start: 3, Length: 5}},
	)
	want := []region.Run{{Row: 0, Start: 0, Length: 8}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeRuns mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeRuns_DisjointRowsKept(t *testing.T) {
	got := region.MergeRuns(
		[]region.Run{{Row: 0, Start: 0, Length: 3}},
		[]region.Run{{Row: 5, Start: 0, Length: 3}},
	)
	want := []region.Run{{Row: 0, Start: 0, Length: 3}, {Row: 5, Start: 0, Length: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeRuns mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeRuns_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b []region.Run
		want []region.Run
	}{
		{
			name: "both empty",
			want: []region.Run{},
		},
		{
			name: "left empty sorts and coalesces right",
			b:    []region.Run{{Row: 1, Start: 4, Length: 2}, {Row: 1, Start: 0, Length: 4}, {Row: 0, Start: 9, Length: 1}},
			want: []region.Run{{Row: 0, Start: 9, Length: 1}, {Row: 1, Start: 0, Length: 6}},
		},
		{
			name: "abutting runs fuse",
			a:    []region.Run{{Row: 2, Start: 0, Length: 3}},
			b:    []region.Run{{Row: 2, Start: 3, Length: 2}},
			want: []region.Run{{Row: 2, Start: 0, Length: 5}},
		},
		{
			name: "gap of one column stays split",
			a:    []region.Run{{Row: 2, Start: 0, Length: 3}},
			b:    []region.Run{{Row: 2, Start: 4, Length: 2}},
			want: []region.Run{{Row: 2, Start: 0, Length: 3}, {Row: 2, Start: 4, Length: 2}},
		},
		{
			name: "contained run absorbed",
			a:    []region.Run{{Row: 0, Start: 0, Length: 10}},
			b:    []region.Run{{Row: 0, Start: 2, Length: 3}},
			want: []region.Run{{Row: 0, Start: 0, Length: 10}},
		},
		{
			name: "interleaved rows",
			a:    []region.Run{{Row: 3, Start: 0, Length: 1}, {Row: 1, Start: 0, Length: 2}},
			b:    []region.Run{{Row: 2, Start: 5, Length: 1}, {Row: 1, Start: 2, Length: 1}},
			want: []region.Run{
				{Row: 1, Start: 0, Length: 3},
				{Row: 2, Start: 5, Length: 1},
				{Row: 3, Start: 0, Length: 1},
			},
		},
		{
			name: "chain of overlaps collapses",
			a:    []region.Run{{Row: 0, Start: 0, Length: 2}, {Row: 0, Start: 4, Length: 2}},
			b:    []region.Run{{Row: 0, Start: 1, Length: 4}},
			want: []region.Run{{Row: 0, Start: 0, Length: 6}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := region.MergeRuns(tc.a, tc.b)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeRuns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeRuns_InputsUntouched(t *testing.T) {
	a := []region.Run{{Row: 4, Start: 0, Length: 1}, {Row: 0, Start: 0, Length: 1}}
	b := []region.Run{{Row: 2, Start: 0, Length: 1}}
	aCopy := append([]region.Run(nil), a...)
	bCopy := append([]region.Run(nil), b...)

	_ = region.MergeRuns(a, b)

	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

func TestMerge_AttributesFromPrimary(t *testing.T) {
	primary := region.Region{
		Label:      7,
		Runs:       []region.Run{{Row: 0, Start: 0, Length: 2}},
		Attributes: map[string]float64{"mean": 1.5},
	}
	secondary := region.Region{
		Label:      9,
		Runs:       []region.Run{{Row: 1, Start: 0, Length: 2}},
		Attributes: map[string]float64{"mean": 99, "extra": 1},
	}

	got := region.Merge(primary, secondary)

	assert.Equal(t, region.Label(7), got.Label)
	assert.Equal(t, map[string]float64{"mean": 1.5}, got.Attributes)
	assert.Equal(t, 4, got.Area())

	// the result must not alias primary's attribute map
	got.Attributes["mean"] = 0
	assert.Equal(t, 1.5, primary.Attributes["mean"])
}

func TestCoalesce(t *testing.T) {
	got := region.Coalesce([]region.Run{
		{Row: 0, Start: 3, Length: 3},
		{Row: 0, Start: 0, Length: 3},
		{Row: 1, Start: 0, Length: 1},
	})
	want := []region.Run{{Row: 0, Start: 0, Length: 6}, {Row: 1, Start: 0, Length: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
	}
}

func TestSortRuns_Stable(t *testing.T) {
	runs := []region.Run{
		{Row: 1, Start: 0, Length: 1},
		{Row: 0, Start: 5, Length: 2},
		{Row: 0, Start: 5, Length: 1},
		{Row: 0, Start: 1, Length: 1},
	}
	region.SortRuns(runs)
	want := []region.Run{
		{Row: 0, Start: 1, Length: 1},
		{Row: 0, Start: 5, Length: 2},
		{Row: 0, Start: 5, Length: 1},
		{Row: 1, Start: 0, Length: 1},
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("SortRuns mismatch (-want +got):\n%s", diff)
	}
}

// TestMergeRuns_Concurrent merges independent inputs from many goroutines.
// Run with -race to catch hidden shared state.
func TestMergeRuns_Concurrent(t *testing.T) {
	const workers = 32
	shared := []region.Run{{Row: 0, Start: 0, Length: 4}, {Row: 2, Start: 0, Length: 4}}

	var wg sync.WaitGroup
	wg.Add(workers)
	results := make([][]region.Run, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = region.MergeRuns(shared, []region.Run{{Row: 1, Start: id, Length: 1}})
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.Len(t, res, 3, "worker %d", i)
		assert.Equal(t, region.Run{Row: 1, Start: i, Length: 1}, res[1])
	}
}
