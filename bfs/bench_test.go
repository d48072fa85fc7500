package bfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
)

// BenchmarkWalk_Open measures a full flood of an open 100×100 board.
func BenchmarkWalk_Open(b *testing.B) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = strings.Repeat(".", 100)
	}
	g := maze(b, lines...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Walk(g, grid.Point{}); err != nil {
			b.Fatal(err)
		}
	}
}
