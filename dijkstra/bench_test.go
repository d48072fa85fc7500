package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridwalk/dijkstra"
)

func BenchmarkShortestPath_Crucible(b *testing.B) {
	g := costs(b, crucible...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, dijkstra.WithMinRun(4), dijkstra.WithMaxRun(10)); err != nil {
			b.Fatal(err)
		}
	}
}
