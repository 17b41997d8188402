package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catty-project/catgraph/core"
	"github.com/catty-project/catgraph/notation"
)

func TestParse_ChainAndShortcut(t *testing.T) {
	expr, err := notation.Parse("PPSC -interpret-> INT -extend-> CPL ; PPSC -direct-> CPL")
	require.NoError(t, err)
	require.Len(t, expr.Chains, 2)
	assert.Equal(t, "PPSC", expr.Chains[0].Start)
	require.Len(t, expr.Chains[0].Hops, 2)
	assert.Equal(t, "interpret", expr.Chains[0].Hops[0].Label)
	assert.Equal(t, "INT", expr.Chains[0].Hops[0].End)
}

func TestParse_UnlabeledHop(t *testing.T) {
	expr, err := notation.Parse("A --> B")
	require.NoError(t, err)
	require.Len(t, expr.Chains, 1)
	require.Len(t, expr.Chains[0].Hops, 1)
	assert.Equal(t, "", expr.Chains[0].Hops[0].Label)
}

func TestParse_Malformed(t *testing.T) {
	_, err := notation.Parse("A -> -> B")
	assert.ErrorIs(t, err, notation.ErrParse)
}

func TestBuild_Structure(t *testing.T) {
	s, err := notation.Build("logics", "PPSC -interpret-> INT -extend-> CPL ; PPSC -direct-> CPL")
	require.NoError(t, err)

	assert.Equal(t, 3, s.NodeCount())
	assert.Equal(t, 3, s.MorphismCount())

	m, ok := s.Morphism("PPSC_to_INT")
	require.True(t, ok)
	assert.Equal(t, "interpret", m.Label)

	// Nodes are created on first mention, in reading order.
	assert.Equal(t, []string{"PPSC", "INT", "CPL"}, s.NodeIDs())

	paths, err := s.FindAllPaths("PPSC", "CPL")
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestBuild_DefaultLabelAndDuplicate(t *testing.T) {
	s, err := notation.Build("pair", "A --> B")
	require.NoError(t, err)
	m, ok := s.Morphism("A_to_B")
	require.True(t, ok)
	assert.Equal(t, "A_to_B", m.Label)

	_, err = notation.Build("dup", "A --> B ; A --> B")
	assert.ErrorIs(t, err, core.ErrDuplicateMorphism)
}
