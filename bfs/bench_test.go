package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pangraph/bfs"
	"github.com/katalvlaran/pangraph/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N segments.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := builder.MustGraph(nil, builder.Path(N))

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1+")
	}
}

// BenchmarkBFS_RandomPangenome runs a targeted strict-port search on a
// seeded spine decorated with bubbles.
func BenchmarkBFS_RandomPangenome(b *testing.B) {
	const N = 5000
	g := builder.MustGraph(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomPangenome(N, N/10),
	)
	target := g.Nodes()[g.NodeCount()-1]

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1+", bfs.WithTarget(target), bfs.WithPortPolicy(bfs.PortsStrict))
	}
}
