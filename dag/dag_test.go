package dag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catty-project/catgraph/core"
	"github.com/catty-project/catgraph/dag"
)

func upper(s string) string   { return strings.ToUpper(s) }
func exclaim(s string) string { return s + "!" }

// buildDiamond stages A→B→D and A→C→D with equal composite transforms.
func buildDiamond(t *testing.T) *dag.Builder[string] {
	t.Helper()
	b := dag.NewBuilder[string]("diamond")
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, b.AddNode(id, strings.ToLower(id)))
	}
	require.NoError(t, b.AddDependency("A", "B", upper, "left-up"))
	require.NoError(t, b.AddDependency("B", "D", exclaim, "left-down"))
	// Distinct closures, same math as the left branch.
	require.NoError(t, b.AddDependency("A", "C", func(s string) string { return strings.ToUpper(s) }, "right-up"))
	require.NoError(t, b.AddDependency("C", "D", func(s string) string { return s + "!" }, "right-down"))
	return b
}

func TestAddDependency_CycleRejectedNoStateChange(t *testing.T) {
	b := dag.NewBuilder[string]("chain")
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, b.AddNode(id, id))
	}
	require.NoError(t, b.AddDependency("A", "B", upper, "ab"))
	require.NoError(t, b.AddDependency("B", "C", upper, "bc"))

	err := b.AddDependency("C", "A", upper, "ca")
	assert.ErrorIs(t, err, dag.ErrCycle)

	// The failed insertion left no trace.
	d, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, d.Structure().NodeCount())
	assert.Equal(t, 2, d.Structure().MorphismCount())
	assert.Equal(t, []string{"A"}, d.Sources())
	assert.Equal(t, []string{"C"}, d.Sinks())
}

func TestAddDependency_SelfLoopRejected(t *testing.T) {
	b := dag.NewBuilder[string]("loop")
	require.NoError(t, b.AddNode("A", "a"))
	assert.ErrorIs(t, b.AddDependency("A", "A", upper, "self"), dag.ErrCycle)
}

func TestAddDependency_UnknownNode(t *testing.T) {
	b := dag.NewBuilder[string]("d")
	require.NoError(t, b.AddNode("A", "a"))
	assert.ErrorIs(t, b.AddDependency("A", "ghost", upper, "x"), core.ErrNodeNotFound)
}

func TestAddDependency_Duplicate(t *testing.T) {
	b := dag.NewBuilder[string]("d")
	require.NoError(t, b.AddNode("A", "a"))
	require.NoError(t, b.AddNode("B", "b"))
	require.NoError(t, b.AddDependency("A", "B", upper, "ab"))
	assert.ErrorIs(t, b.AddDependency("A", "B", upper, "again"), core.ErrDuplicateMorphism)
}

func TestBuild_TopologicalOrderAndDepth(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)

	order := d.TopologicalOrder()
	require.Len(t, order, 4)
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	// Every dependency points forward in the order.
	for _, m := range d.Structure().Morphisms() {
		assert.Less(t, pos[m.Source], pos[m.Target], "%s before %s", m.Source, m.Target)
	}

	for id, want := range map[string]int{"A": 0, "B": 1, "C": 1, "D": 2} {
		depth, err := d.Depth(id)
		require.NoError(t, err)
		assert.Equal(t, want, depth, "depth of %s", id)
	}
	assert.Equal(t, 2, d.Dimension())
}

func TestBuild_Closures(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)

	anc, err := d.Ancestors("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, anc)

	desc, err := d.Descendants("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, desc)

	assert.True(t, d.IsAncestor("A", "D"))
	assert.True(t, d.IsDescendant("D", "A"))
	assert.False(t, d.IsAncestor("B", "C"))
	assert.True(t, d.HasPath("A", "D"))
	assert.True(t, d.HasPath("B", "B"))
	assert.False(t, d.HasPath("D", "A"))

	_, err = d.Ancestors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestBuild_SourcesAndSinks(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, d.Sources())
	assert.Equal(t, []string{"D"}, d.Sinks())
}

func TestSourceToSinkPaths(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)

	paths := d.SourceToSinkPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"A", "B", "D"}, paths[0].NodeIDs)
	assert.Equal(t, []string{"A", "C", "D"}, paths[1].NodeIDs)
}

func TestBuild_PatternSatisfied(t *testing.T) {
	b := buildDiamond(t)
	b.AddPattern("diamond_commutes", "A", "D", [][]string{
		{dag.DependencyID("A", "B"), dag.DependencyID("B", "D")},
		{dag.DependencyID("A", "C"), dag.DependencyID("C", "D")},
	}, "Both branches agree")

	d, err := b.Build()
	require.NoError(t, err)
	require.Len(t, d.Patterns(), 1)
	assert.Equal(t, "diamond_commutes", d.Patterns()[0].ID)

	ok, err := d.IsCommutative("A", "D")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_PatternViolationIsFatal(t *testing.T) {
	b := dag.NewBuilder[string]("skew")
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, b.AddNode(id, strings.ToLower(id)))
	}
	require.NoError(t, b.AddDependency("A", "B", upper, "ab"))
	require.NoError(t, b.AddDependency("B", "D", exclaim, "bd"))
	require.NoError(t, b.AddDependency("A", "C", upper, "ac"))
	// Right branch drops the exclamation mark.
	require.NoError(t, b.AddDependency("C", "D", upper, "cd"))
	b.AddPattern("skewed", "A", "D", [][]string{
		{"A_to_B", "B_to_D"},
		{"A_to_C", "C_to_D"},
	}, "Expected to agree, does not")

	_, err := b.Build()
	assert.ErrorIs(t, err, dag.ErrCommutativityViolation)
}

func TestBuild_PatternBadPath(t *testing.T) {
	b := buildDiamond(t)
	b.AddPattern("broken", "A", "D", [][]string{{"no_such_morphism"}}, "")
	_, err := b.Build()
	assert.ErrorIs(t, err, dag.ErrPatternPath)
}

func TestBuild_PatternWrongAnchor(t *testing.T) {
	b := buildDiamond(t)
	b.AddPattern("misanchored", "A", "D", [][]string{{dag.DependencyID("A", "B")}}, "")
	_, err := b.Build()
	assert.ErrorIs(t, err, dag.ErrPatternPath)
}

func TestSubDAG_Recomputes(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)

	sub, err := d.SubDAG("left", []string{"B", "D"})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Structure().NodeCount())
	assert.Equal(t, 1, sub.Structure().MorphismCount())

	// B is a source inside the subset even though it is not one in the parent.
	assert.Equal(t, []string{"B"}, sub.Sources())
	depth, err := sub.Depth("D")
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestInfo(t *testing.T) {
	d, err := buildDiamond(t).Build()
	require.NoError(t, err)

	info, err := d.Info("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, info.Predecessors)
	assert.Empty(t, info.Successors)
	assert.Equal(t, 2, info.Depth)

	_, err = d.Info("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
