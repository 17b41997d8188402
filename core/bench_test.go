package core_test

import (
	"fmt"
	"testing"

	"github.com/catty-project/catgraph/core"
)

// buildLayered creates a layered DAG with `layers` ranks of `width` nodes and
// full bipartite wiring between consecutive ranks, so path counts grow as
// width^(layers-1) between the pinch nodes.
func buildLayered(b *testing.B, layers, width int) *core.Structure[int] {
	b.Helper()
	s := core.New[int]("layered")
	id := func(l, i int) string { return fmt.Sprintf("L%d-%d", l, i) }
	for l := 0; l < layers; l++ {
		for i := 0; i < width; i++ {
			if err := s.AddNode(id(l, i), l*width+i); err != nil {
				b.Fatal(err)
			}
		}
	}
	inc := func(v int) int { return v + 1 }
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				mid := fmt.Sprintf("%s_to_%s", id(l, i), id(l+1, j))
				if err := s.AddMorphism(mid, id(l, i), id(l+1, j), inc, mid); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	return s
}

func BenchmarkFindAllPaths_Layered(b *testing.B) {
	s := buildLayered(b, 5, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.FindAllPaths("L0-0", "L4-0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsCommutative_Layered(b *testing.B) {
	s := buildLayered(b, 4, 3)
	sp := core.NewSampler(0, 1, 41)
	eq := sp.Equivalence()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.IsCommutative("L0-0", "L3-0", eq); err != nil {
			b.Fatal(err)
		}
	}
}
