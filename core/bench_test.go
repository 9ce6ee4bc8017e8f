// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/cavepaths/builder"
	"github.com/katalvlaran/cavepaths/core"
)

// corridorLines returns edge lines for a 2,000-node corridor alternating
// large and small caves, so both classes are exercised.
func corridorLines(b *testing.B) []string {
	lines, err := builder.BuildLines(
		[]builder.BuilderOption{builder.WithLargeEvery(2)},
		builder.Path(2000),
	)
	if err != nil {
		b.Fatal(err)
	}

	return lines
}

// BenchmarkBuild measures graph construction for a 1,999-edge corridor.
func BenchmarkBuild(b *testing.B) {
	lines := corridorLines(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Build(lines)
	}
}

// BenchmarkNeighbors measures a neighbor query on the same corridor.
func BenchmarkNeighbors(b *testing.B) {
	g, err := core.Build(corridorLines(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("b")
	}
}
