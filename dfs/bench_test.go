package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cavepaths/builder"
	"github.com/katalvlaran/cavepaths/dfs"
	"github.com/katalvlaran/cavepaths/visit"
)

// BenchmarkAllPaths_LargeCave measures both policies on the 18-edge sample
// (226 and 3,509 paths). The graph is built once outside the timer.
func BenchmarkAllPaths_LargeCave(b *testing.B) {
	g := buildCave(b, largeCave)
	for _, p := range visit.Policies() {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = dfs.AllPaths(g, p)
			}
		})
	}
}

// BenchmarkAllPaths_Star measures a generated star whose large hub joins
// seven small leaves. Every leaf-to-leaf detour goes through the hub.
func BenchmarkAllPaths_Star(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithLargeEvery(8)},
		builder.Star(8), builder.Entrance(1), builder.Exit(2),
	)
	if err != nil {
		b.Fatal(err)
	}
	for _, p := range visit.Policies() {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = dfs.Count(g, p)
			}
		})
	}
}
