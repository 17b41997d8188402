package rdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catty-project/catgraph/core"
	"github.com/catty-project/catgraph/rdf"
)

func buildTriangle(t *testing.T) *core.Structure[string] {
	t.Helper()
	s := core.New[string]("triangle")
	require.NoError(t, s.AddNode("A", "alpha"))
	require.NoError(t, s.AddNode("B", "beta"))
	require.NoError(t, s.AddNode("C", "gamma"))
	id := core.Identity[string]()
	require.NoError(t, s.AddMorphism("f", "A", "B", id, "f"))
	require.NoError(t, s.AddMorphism("g", "B", "C", id, "g"))
	require.NoError(t, s.AddMorphism("h", "A", "C", id, "h"))
	return s
}

func TestExportTurtle_Golden(t *testing.T) {
	s := buildTriangle(t)

	var buf bytes.Buffer
	err := rdf.ExportTurtle(&buf, s, rdf.WithBaseIRI("https://example.org/diagrams/triangle"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "triangle", buf.Bytes())
}

func TestExportTurtle_Deterministic(t *testing.T) {
	s := buildTriangle(t)

	var a, b bytes.Buffer
	require.NoError(t, rdf.ExportTurtle(&a, s, rdf.WithBaseIRI("urn:x:fixed")))
	require.NoError(t, rdf.ExportTurtle(&b, s, rdf.WithBaseIRI("urn:x:fixed")))
	assert.Equal(t, a.String(), b.String())
}

func TestExportTurtle_DefaultBaseIsUUID(t *testing.T) {
	s := buildTriangle(t)

	var buf bytes.Buffer
	require.NoError(t, rdf.ExportTurtle(&buf, s))
	assert.Contains(t, buf.String(), "<urn:uuid:")
}

func TestExportTurtle_EscapesIDsAndLiterals(t *testing.T) {
	s := core.New[string]("odd \"name\"")
	require.NoError(t, s.AddNode("left node", "line\nbreak"))
	require.NoError(t, s.AddNode("right", "plain"))
	require.NoError(t, s.AddMorphism("a/b", "left node", "right", core.Identity[string](), "lbl"))

	var buf bytes.Buffer
	require.NoError(t, rdf.ExportTurtle(&buf, s, rdf.WithBaseIRI("urn:x:esc")))
	out := buf.String()

	assert.Contains(t, out, `rdfs:label "odd \"name\""`)
	assert.Contains(t, out, "<urn:x:esc#node/left%20node>")
	assert.Contains(t, out, "<urn:x:esc#morphism/a%2Fb>")
	assert.Contains(t, out, `cat:data "line\nbreak"`)
	assert.False(t, strings.Contains(out, "line\nbreak"))
}
