// Package manifest loads declarative YAML documents describing string-payload
// categorical structures and feeds them through the specialization builders,
// so every construction-time invariant of category/, polytope/ and dag/
// applies to declarative input unchanged.
//
// Transforms cannot be expressed in YAML; morphisms reference them by name
// and a Registry maps names to core transforms. DefaultRegistry covers the
// common string transforms; callers merge their own on top.
//
// Errors:
//
//	ErrDecode           - malformed YAML or an unknown enum value.
//	ErrKind             - document kind does not match the requested build.
//	ErrUnknownTransform - a morphism references an unregistered transform.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/catty-project/catgraph/category"
	"github.com/catty-project/catgraph/core"
	"github.com/catty-project/catgraph/dag"
	"github.com/catty-project/catgraph/polytope"
)

// Sentinel errors for manifest loading.
var (
	// ErrDecode indicates malformed YAML or an unrecognized enum value.
	ErrDecode = errors.New("manifest: decode error")

	// ErrKind indicates a build call that does not match the document kind.
	ErrKind = errors.New("manifest: wrong document kind")

	// ErrUnknownTransform indicates an unregistered transform name.
	ErrUnknownTransform = errors.New("manifest: unknown transform")
)

// Document kinds.
const (
	KindCategory = "category"
	KindPolytope = "polytope"
	KindDAG      = "dag"
)

// Document is the root of a manifest file.
type Document struct {
	Name         string       `yaml:"name"`
	Kind         string       `yaml:"kind"`
	Dimension    int          `yaml:"dimension,omitempty"`
	PolytopeType string       `yaml:"polytope_type,omitempty"`
	Nodes        []Node       `yaml:"nodes"`
	Morphisms    []MorphismD  `yaml:"morphisms"`
	Faces        []FaceD      `yaml:"faces,omitempty"`
	Constraints  []Constraint `yaml:"constraints,omitempty"`
	Patterns     []PatternD   `yaml:"patterns,omitempty"`
}

// Node declares one node; Data defaults to the ID.
type Node struct {
	ID   string `yaml:"id"`
	Data string `yaml:"data,omitempty"`
}

// MorphismD declares one morphism (or DAG dependency; the ID is then derived
// from the endpoints). Transform defaults to "identity".
type MorphismD struct {
	ID          string `yaml:"id,omitempty"`
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
	Transform   string `yaml:"transform,omitempty"`
	Label       string `yaml:"label,omitempty"`
	Kind        string `yaml:"kind,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// FaceD declares one polytope face.
type FaceD struct {
	ID        string   `yaml:"id"`
	Dimension int      `yaml:"dimension"`
	Nodes     []string `yaml:"nodes"`
	Type      string   `yaml:"type,omitempty"`
}

// Constraint declares one polytope commutativity constraint.
type Constraint struct {
	ID          string   `yaml:"id"`
	Faces       []string `yaml:"faces,omitempty"`
	Scope       string   `yaml:"scope"`
	Description string   `yaml:"description,omitempty"`
}

// PatternD declares one DAG commutativity pattern.
type PatternD struct {
	ID           string     `yaml:"id"`
	Source       string     `yaml:"source"`
	Target       string     `yaml:"target"`
	Alternatives [][]string `yaml:"alternatives"`
	Description  string     `yaml:"description,omitempty"`
}

// Registry maps transform names to string transforms.
type Registry map[string]core.Transform[string]

// DefaultRegistry returns the built-in string transforms.
func DefaultRegistry() Registry {
	return Registry{
		"identity": core.Identity[string](),
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"exclaim":  func(s string) string { return s + "!" },
		"reverse": func(s string) string {
			runes := []rune(s)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes)
		},
	}
}

// resolve looks a transform name up; "" means identity. Names of the form
// "annotate:<tag>" resolve to a prefixer without needing registration.
func (r Registry) resolve(name string) (core.Transform[string], error) {
	if name == "" {
		name = "identity"
	}
	if tag, ok := strings.CutPrefix(name, "annotate:"); ok {
		return func(s string) string { return tag + ":" + s }, nil
	}
	tf, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("manifest: transform %q: %w", name, ErrUnknownTransform)
	}
	return tf, nil
}

// Load decodes a manifest document from r.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("manifest: %v: %w", err, ErrDecode)
	}
	return &doc, nil
}

// LoadFile decodes a manifest document from a file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Category builds the document as a finite category.
func (d *Document) Category(reg Registry) (*category.Category[string], error) {
	if d.Kind != KindCategory {
		return nil, fmt.Errorf("manifest: kind %q: %w", d.Kind, ErrKind)
	}
	b := category.NewBuilder[string](d.Name)
	for _, n := range d.Nodes {
		if err := b.AddObject(n.ID, nodeData(n)); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Morphisms {
		tf, err := reg.resolve(m.Transform)
		if err != nil {
			return nil, err
		}
		if err := b.AddMorphism(m.ID, m.Source, m.Target, tf, m.Label, m.Kind, m.Description); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Polytope builds the document as a commutative n-polytope.
func (d *Document) Polytope(reg Registry) (*polytope.Polytope[string], error) {
	if d.Kind != KindPolytope {
		return nil, fmt.Errorf("manifest: kind %q: %w", d.Kind, ErrKind)
	}
	ptype, err := parsePolytopeType(d.PolytopeType)
	if err != nil {
		return nil, err
	}
	b := polytope.NewBuilder[string](d.Name, d.Dimension, ptype)
	for _, n := range d.Nodes {
		if err := b.AddNode(n.ID, nodeData(n)); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Morphisms {
		tf, err := reg.resolve(m.Transform)
		if err != nil {
			return nil, err
		}
		if err := b.AddMorphism(m.ID, m.Source, m.Target, tf, m.Label); err != nil {
			return nil, err
		}
	}
	for _, f := range d.Faces {
		ftype, err := parseFaceType(f.Type)
		if err != nil {
			return nil, err
		}
		if err := b.AddFace(f.ID, f.Dimension, f.Nodes, ftype); err != nil {
			return nil, err
		}
	}
	for _, c := range d.Constraints {
		scope, err := parseScope(c.Scope)
		if err != nil {
			return nil, err
		}
		b.AddConstraint(c.ID, c.Faces, c.Description, scope)
	}
	return b.Build()
}

// DAG builds the document as a directed acyclic graph; morphism IDs are
// derived from the endpoints per the dependency scheme.
func (d *Document) DAG(reg Registry) (*dag.DAG[string], error) {
	if d.Kind != KindDAG {
		return nil, fmt.Errorf("manifest: kind %q: %w", d.Kind, ErrKind)
	}
	b := dag.NewBuilder[string](d.Name)
	for _, n := range d.Nodes {
		if err := b.AddNode(n.ID, nodeData(n)); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Morphisms {
		tf, err := reg.resolve(m.Transform)
		if err != nil {
			return nil, err
		}
		if err := b.AddDependency(m.Source, m.Target, tf, m.Label); err != nil {
			return nil, err
		}
	}
	for _, p := range d.Patterns {
		b.AddPattern(p.ID, p.Source, p.Target, p.Alternatives, p.Description)
	}
	return b.Build()
}

// Structure builds the document's nodes and morphisms as a bare core
// structure regardless of kind, for collaborators that only need the shape.
func (d *Document) Structure(reg Registry) (*core.Structure[string], error) {
	s := core.New[string](d.Name)
	for _, n := range d.Nodes {
		if err := s.AddNode(n.ID, nodeData(n)); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Morphisms {
		tf, err := reg.resolve(m.Transform)
		if err != nil {
			return nil, err
		}
		id := m.ID
		if id == "" {
			id = m.Source + "_to_" + m.Target
		}
		if err := s.AddMorphism(id, m.Source, m.Target, tf, m.Label); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func nodeData(n Node) string {
	if n.Data != "" {
		return n.Data
	}
	return n.ID
}

func parsePolytopeType(s string) (polytope.Type, error) {
	switch strings.ToLower(s) {
	case "", "arbitrary":
		return polytope.Arbitrary, nil
	case "point":
		return polytope.Point, nil
	case "line_segment", "line":
		return polytope.LineSegment, nil
	case "triangle":
		return polytope.Triangle, nil
	case "square":
		return polytope.Square, nil
	case "tetrahedron":
		return polytope.Tetrahedron, nil
	case "cube":
		return polytope.Cube, nil
	case "simplex":
		return polytope.Simplex, nil
	case "hypercube":
		return polytope.Hypercube, nil
	default:
		return 0, fmt.Errorf("manifest: polytope type %q: %w", s, ErrDecode)
	}
}

func parseFaceType(s string) (polytope.FaceType, error) {
	switch strings.ToLower(s) {
	case "", "arbitrary":
		return polytope.FaceArbitrary, nil
	case "vertex":
		return polytope.FaceVertex, nil
	case "edge":
		return polytope.FaceEdge, nil
	case "facet", "face":
		return polytope.FaceFacet, nil
	case "cell":
		return polytope.FaceCell, nil
	case "hyperface":
		return polytope.FaceHyperface, nil
	default:
		return 0, fmt.Errorf("manifest: face type %q: %w", s, ErrDecode)
	}
}

func parseScope(s string) (polytope.Scope, error) {
	switch strings.ToLower(s) {
	case "", "local":
		return polytope.ScopeLocal, nil
	case "global":
		return polytope.ScopeGlobal, nil
	case "boundary":
		return polytope.ScopeBoundary, nil
	case "interior":
		return polytope.ScopeInterior, nil
	case "multidimensional":
		return polytope.ScopeMultidimensional, nil
	default:
		return 0, fmt.Errorf("manifest: constraint scope %q: %w", s, ErrDecode)
	}
}
