package walk_test

import (
	"testing"

	"github.com/katalvlaran/pangraph/builder"
	"github.com/katalvlaran/pangraph/walk"
)

// BenchmarkExtractWalk_RandomPangenome measures auto mode on a spine of N
// nodes decorated with N/10 bubbles.
func BenchmarkExtractWalk_RandomPangenome(b *testing.B) {
	const N = 2000
	g := builder.MustGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithAssembly("ref")},
		builder.RandomPangenome(N, N/10),
	)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = walk.ExtractWalk(g, "ref", walk.ModeAuto)
	}
}

// BenchmarkExtractAllWalks dispatches several assemblies in parallel.
func BenchmarkExtractAllWalks(b *testing.B) {
	const N = 2000
	g := builder.MustGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithAssembly("ref", "hap1", "hap2", "hap3")},
		builder.RandomPangenome(N, N/10),
	)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = walk.ExtractAllWalks(g, nil, walk.ModeAuto)
	}
}
