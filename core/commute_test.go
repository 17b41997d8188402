package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catty-project/catgraph/core"
)

func TestSampler_DistinctClosuresSameFunction(t *testing.T) {
	// Two closures computing the same function are never equal as Go
	// function values; the sampler must still judge them equivalent.
	f := core.Transform[string](func(s string) string { return strings.ToUpper(s) })
	g := core.Transform[string](func(s string) string { return strings.ToUpper(s) })

	sp := core.NewSampler("alpha", "Beta", "")
	assert.True(t, sp.TransformsEqual(f, g))
}

func TestSampler_Disagreement(t *testing.T) {
	sp := core.NewSampler("alpha")
	assert.False(t, sp.TransformsEqual(
		func(s string) string { return s },
		func(s string) string { return s + "!" },
	))
}

func TestIsCommutative_TriangleAgrees(t *testing.T) {
	s := buildTriangle(t)
	sp := core.NewSampler("logic", "law")

	ok, err := s.IsCommutative("PPSC", "CPL", sp.Equivalence())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsCommutative_TriangleDisagrees(t *testing.T) {
	s := core.New[string]("skew")
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, s.AddNode(id, id))
	}
	require.NoError(t, s.AddMorphism("ab", "A", "B", upper, "ab"))
	require.NoError(t, s.AddMorphism("bc", "B", "C", exclaim, "bc"))
	// The shortcut drops the exclamation mark, breaking the square.
	require.NoError(t, s.AddMorphism("ac", "A", "C", upper, "ac"))

	sp := core.NewSampler("probe")
	ok, err := s.IsCommutative("A", "C", sp.Equivalence())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsCommutative_TrivialCases(t *testing.T) {
	s := buildTriangle(t)
	sp := core.NewSampler("x")

	// No path at all: trivially commutative.
	ok, err := s.IsCommutative("CPL", "PPSC", sp.Equivalence())
	require.NoError(t, err)
	assert.True(t, ok)

	// Exactly one path: trivially commutative.
	ok, err = s.IsCommutative("INT", "CPL", sp.Equivalence())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLabelEquivalence(t *testing.T) {
	s := buildTriangle(t)

	a, err := s.NewPath([]string{"interp", "extend"})
	require.NoError(t, err)
	b, err := s.NewPath([]string{"direct"})
	require.NoError(t, err)

	eq := core.LabelEquivalence[string]()
	// Same transforms, different descriptions: the label policy says no.
	assert.False(t, eq(a, b))
	assert.True(t, eq(a, a))
}

func TestPathsCommute_Empty(t *testing.T) {
	assert.True(t, core.PathsCommute(nil, core.LabelEquivalence[string]()))
}
