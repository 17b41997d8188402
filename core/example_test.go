package core_test

import (
	"fmt"
	"strings"

	"github.com/catty-project/catgraph/core"
)

// ExampleStructure_FindAllPaths builds the classic commutative triangle and
// enumerates both routes from PPSC to CPL.
func ExampleStructure_FindAllPaths() {
	s := core.New[string]("logics")
	s.AddNode("PPSC", "ppsc")
	s.AddNode("INT", "int")
	s.AddNode("CPL", "cpl")

	upper := func(v string) string { return strings.ToUpper(v) }
	bang := func(v string) string { return v + "!" }
	s.AddMorphism("interp", "PPSC", "INT", upper, "interpret")
	s.AddMorphism("extend", "INT", "CPL", bang, "extend")
	s.AddMorphism("direct", "PPSC", "CPL", func(v string) string { return strings.ToUpper(v) + "!" }, "direct")

	paths, _ := s.FindAllPaths("PPSC", "CPL")
	for _, p := range paths {
		fmt.Println(p)
	}

	sp := core.NewSampler("logic")
	ok, _ := s.IsCommutative("PPSC", "CPL", sp.Equivalence())
	fmt.Println("commutes:", ok)

	// Output:
	// Path(PPSC → INT → CPL) with 2 morphisms
	// Path(PPSC → CPL) with 1 morphisms
	// commutes: true
}

// ExampleStructure_ComposePath shows diagram-order composition.
func ExampleStructure_ComposePath() {
	s := core.New[int]("arith")
	s.AddNode("A", 0)
	s.AddNode("B", 0)
	s.AddNode("C", 0)
	s.AddMorphism("inc", "A", "B", func(v int) int { return v + 1 }, "inc")
	s.AddMorphism("dbl", "B", "C", func(v int) int { return v * 2 }, "dbl")

	tf, _ := s.ComposePath([]string{"inc", "dbl"})
	fmt.Println(tf(3)) // (3+1)*2

	// Output:
	// 8
}
