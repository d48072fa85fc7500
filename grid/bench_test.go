package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
)

// BenchmarkBuild measures Build on a random 500×500 board.
// Complexity: O(W×H)
func BenchmarkBuild(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	lines := make([]string, n)
	for r := range lines {
		var sb strings.Builder
		for c := 0; c < n; c++ {
			if rng.Intn(3) == 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[r] = sb.String()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Build(lines, binary); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkNeighbor measures one step in every direction from every cell.
// Complexity: O(W×H×4)
func BenchmarkNeighbor(b *testing.B) {
	const n = 500
	rows := make([][]bool, n)
	for r := range rows {
		rows[r] = make([]bool, n)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	points := g.Points()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range points {
			for _, d := range grid.Directions {
				_, _ = g.Neighbor(p, d)
			}
		}
	}
}
