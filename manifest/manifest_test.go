package manifest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catty-project/catgraph/dag"
	"github.com/catty-project/catgraph/manifest"
)

const categoryYAML = `
name: logics
kind: category
nodes:
  - id: PPSC
  - id: INT
  - id: CPL
    data: classical
morphisms:
  - id: interp
    source: PPSC
    target: INT
    transform: upper
    label: interpret
    kind: interpretation
  - id: extend
    source: INT
    target: CPL
    transform: exclaim
    label: extend
    kind: extension
  - id: direct
    source: PPSC
    target: CPL
    transform: lower
    label: embed
    kind: embedding
`

const polytopeYAML = `
name: triangle
kind: polytope
dimension: 2
polytope_type: triangle
nodes:
  - id: A
  - id: B
  - id: C
morphisms:
  - id: f
    source: A
    target: B
    label: f
  - id: g
    source: B
    target: C
    label: g
  - id: h
    source: A
    target: C
    label: h
faces:
  - id: cell
    dimension: 2
    nodes: [A, B, C]
    type: facet
constraints:
  - id: comm_cell
    faces: [cell]
    scope: local
`

const dagYAML = `
name: pipeline
kind: dag
nodes:
  - id: A
  - id: B
  - id: C
  - id: D
morphisms:
  - source: A
    target: B
  - source: B
    target: D
  - source: A
    target: C
  - source: C
    target: D
patterns:
  - id: diamond
    source: A
    target: D
    alternatives:
      - [A_to_B, B_to_D]
      - [A_to_C, C_to_D]
`

func TestLoad_Category(t *testing.T) {
	doc, err := manifest.Load(strings.NewReader(categoryYAML))
	require.NoError(t, err)
	assert.Equal(t, "logics", doc.Name)
	assert.Equal(t, manifest.KindCategory, doc.Kind)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, "classical", doc.Nodes[2].Data)

	cat, err := doc.Category(manifest.DefaultRegistry())
	require.NoError(t, err)
	var ids []string
	for _, obj := range cat.Objects() {
		ids = append(ids, obj.ID)
	}
	assert.Equal(t, []string{"PPSC", "INT", "CPL"}, ids)
	// 3 declared morphisms plus 3 synthesized identities.
	assert.Equal(t, 6, cat.Structure().MorphismCount())

	info, ok := cat.MorphismInfo("interp")
	require.True(t, ok)
	assert.Equal(t, "interpretation", info.Kind)
}

func TestLoad_Polytope(t *testing.T) {
	doc, err := manifest.Load(strings.NewReader(polytopeYAML))
	require.NoError(t, err)

	p, err := doc.Polytope(manifest.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dimension())
	require.Len(t, p.Faces(), 1)
	assert.True(t, p.ConstraintSatisfied("comm_cell"))
}

func TestLoad_DAG(t *testing.T) {
	doc, err := manifest.Load(strings.NewReader(dagYAML))
	require.NoError(t, err)

	d, err := doc.DAG(manifest.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, d.Sources())
	assert.Equal(t, []string{"D"}, d.Sinks())
	depth, err := d.Depth("D")
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
	require.Len(t, d.Patterns(), 1)
}

func TestLoad_DAGCycleRejected(t *testing.T) {
	cyclic := strings.Replace(dagYAML, "patterns:", `  - source: D
    target: A
patterns:`, 1)
	doc, err := manifest.Load(strings.NewReader(cyclic))
	require.NoError(t, err)

	_, err = doc.DAG(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, dag.ErrCycle)
}

func TestLoad_WrongKind(t *testing.T) {
	doc, err := manifest.Load(strings.NewReader(categoryYAML))
	require.NoError(t, err)

	_, err = doc.DAG(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, manifest.ErrKind)
	_, err = doc.Polytope(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, manifest.ErrKind)
}

func TestLoad_UnknownTransform(t *testing.T) {
	src := strings.Replace(categoryYAML, "transform: upper", "transform: frobnicate", 1)
	doc, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	_, err = doc.Category(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, manifest.ErrUnknownTransform)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := manifest.Load(strings.NewReader("kind: [unterminated"))
	assert.ErrorIs(t, err, manifest.ErrDecode)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := manifest.Load(strings.NewReader("name: x\nbogus: 1\n"))
	assert.ErrorIs(t, err, manifest.ErrDecode)
}

func TestLoad_BadEnums(t *testing.T) {
	src := strings.Replace(polytopeYAML, "polytope_type: triangle", "polytope_type: dodecahedron", 1)
	doc, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)
	_, err = doc.Polytope(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, manifest.ErrDecode)

	src = strings.Replace(polytopeYAML, "scope: local", "scope: everywhere", 1)
	doc, err = manifest.Load(strings.NewReader(src))
	require.NoError(t, err)
	_, err = doc.Polytope(manifest.DefaultRegistry())
	assert.ErrorIs(t, err, manifest.ErrDecode)
}

func TestRegistry_Transforms(t *testing.T) {
	reg := manifest.DefaultRegistry()
	assert.Equal(t, "ABC", reg["upper"]("abc"))
	assert.Equal(t, "cba", reg["reverse"]("abc"))
	assert.Equal(t, "hi!", reg["exclaim"]("hi"))
	assert.Equal(t, "x", reg["identity"]("x"))
}

func TestRegistry_AnnotatePrefixer(t *testing.T) {
	src := strings.Replace(categoryYAML, "transform: upper", "transform: annotate:neg", 1)
	doc, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	cat, err := doc.Category(manifest.DefaultRegistry())
	require.NoError(t, err)
	m, ok := cat.Structure().Morphism("interp")
	require.True(t, ok)
	assert.Equal(t, "neg:p", m.Transform("p"))
}

func TestDocument_Structure(t *testing.T) {
	doc, err := manifest.Load(strings.NewReader(dagYAML))
	require.NoError(t, err)

	s, err := doc.Structure(manifest.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, 4, s.NodeCount())
	assert.Equal(t, 4, s.MorphismCount())
	_, ok := s.Morphism("A_to_B")
	assert.True(t, ok)
}
