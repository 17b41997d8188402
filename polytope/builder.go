// builder.go - incremental polytope assembly and build-time validation.
//
// Build validates structure first (face nodes exist, dimensions bounded),
// then every declared commutativity constraint. Violations abort the build.

package polytope

import (
	"fmt"

	"github.com/catty-project/catgraph/category"
	"github.com/catty-project/catgraph/core"
)

// Builder assembles a Polytope. Single-threaded, one-shot.
type Builder[T any] struct {
	p *Polytope[T]
}

// NewBuilder creates a polytope builder with the declared dimension and
// geometry type.
func NewBuilder[T any](name string, dimension int, ptype Type, opts ...Option[T]) *Builder[T] {
	o := options[T]{}
	for _, fn := range opts {
		fn(&o)
	}
	return &Builder[T]{
		p: &Polytope[T]{
			s:         core.New[T](name),
			dimension: dimension,
			ptype:     ptype,
			faces:     make(map[string]Face),
			eq:        o.eq,
		},
	}
}

// AddNode inserts a node; core sentinels surface unchanged.
func (b *Builder[T]) AddNode(id string, data T) error {
	return b.p.s.AddNode(id, data)
}

// AddMorphism inserts a morphism; core sentinels surface unchanged.
func (b *Builder[T]) AddMorphism(id, source, target string, tf core.Transform[T], label string) error {
	return b.p.s.AddMorphism(id, source, target, tf, label)
}

// AddFace declares a face. Node existence and the dimension bound are
// validated at Build so faces may be declared ahead of their nodes;
// duplicate IDs are rejected immediately.
func (b *Builder[T]) AddFace(id string, dimension int, nodeIDs []string, ftype FaceType) error {
	if _, exists := b.p.faces[id]; exists {
		return fmt.Errorf("polytope: AddFace(%q): %w", id, ErrDuplicateFace)
	}
	b.p.faces[id] = Face{
		ID:        id,
		Dimension: dimension,
		NodeIDs:   append([]string(nil), nodeIDs...),
		Type:      ftype,
	}
	b.p.faceOrder = append(b.p.faceOrder, id)
	return nil
}

// AddConstraint declares a commutativity constraint over the given faces.
func (b *Builder[T]) AddConstraint(id string, faceIDs []string, description string, scope Scope) {
	b.p.constraints = append(b.p.constraints, Constraint{
		ID:          id,
		FaceIDs:     append([]string(nil), faceIDs...),
		Description: description,
		Scope:       scope,
	})
}

// AddFaceConstraint declares a single-face constraint with the conventional
// comm_<faceID> naming. Returns ErrFaceNotFound for an unknown face.
func (b *Builder[T]) AddFaceConstraint(faceID string, scope Scope) error {
	if _, ok := b.p.faces[faceID]; !ok {
		return fmt.Errorf("polytope: AddFaceConstraint(%q): %w", faceID, ErrFaceNotFound)
	}
	b.AddConstraint("comm_"+faceID, []string{faceID}, "Commutativity on face "+faceID, scope)
	return nil
}

// Build validates the polytope and returns it. Error order: dimension,
// face structure, then constraints (ErrCommutativityViolation is fatal).
func (b *Builder[T]) Build() (*Polytope[T], error) {
	p := b.p

	// 1. Declared dimension must be non-negative.
	if p.dimension < 0 {
		return nil, fmt.Errorf("polytope: Build: dimension %d: %w", p.dimension, ErrDimension)
	}

	// 2. Structural face validation: membership and dimension bound.
	for _, id := range p.faceOrder {
		face := p.faces[id]
		for _, nodeID := range face.NodeIDs {
			if !p.s.HasNode(nodeID) {
				return nil, fmt.Errorf("polytope: Build: face %q: node %q: %w", id, nodeID, ErrFaceNode)
			}
		}
		if face.Dimension > p.dimension {
			return nil, fmt.Errorf("polytope: Build: face %q has dimension %d > %d: %w",
				id, face.Dimension, p.dimension, ErrFaceDimension)
		}
	}

	// 3. Constraints may only reference declared faces.
	for _, c := range p.constraints {
		for _, faceID := range c.FaceIDs {
			if _, ok := p.faces[faceID]; !ok {
				return nil, fmt.Errorf("polytope: Build: constraint %q: face %q: %w", c.ID, faceID, ErrFaceNotFound)
			}
		}
	}

	// 4. Default equivalence: sampler over the node payloads.
	if p.eq == nil {
		probes := make([]T, 0, p.s.NodeCount())
		for _, n := range p.s.Nodes() {
			probes = append(probes, n.Data)
		}
		p.eq = core.NewSampler(probes...).Equivalence()
	}

	// 5. Every declared constraint must hold.
	for _, c := range p.constraints {
		if err := p.checkConstraint(c); err != nil {
			return nil, fmt.Errorf("polytope: Build: constraint %q: %w", c.ID, err)
		}
	}

	return p, nil
}

// FromCategory primes a polytope builder with a category's objects and
// non-identity morphisms, so faces and constraints can be layered over an
// already validated diagram.
func FromCategory[T any](name string, cat *category.Category[T], dimension int, ptype Type, opts ...Option[T]) (*Builder[T], error) {
	b := NewBuilder[T](name, dimension, ptype, opts...)
	for _, obj := range cat.Objects() {
		if err := b.AddNode(obj.ID, obj.Data); err != nil {
			return nil, fmt.Errorf("polytope: FromCategory: %w", err)
		}
	}
	for _, m := range cat.Morphisms() {
		if info, ok := cat.MorphismInfo(m.ID); ok && info.Kind == category.KindIdentity {
			continue
		}
		if err := b.AddMorphism(m.ID, m.Source, m.Target, m.Transform, m.Label); err != nil {
			return nil, fmt.Errorf("polytope: FromCategory: %w", err)
		}
	}
	return b, nil
}
