// polytope.go - read-only query surface: faces, constraint evaluation,
// boundary/interior classification, and sub-polytope extraction.

package polytope

import (
	"fmt"
	"sort"

	"github.com/catty-project/catgraph/core"
)

// Name returns the polytope's name.
func (p *Polytope[T]) Name() string { return p.s.Name() }

// Dimension returns the declared polytope dimension.
func (p *Polytope[T]) Dimension() int { return p.dimension }

// Type returns the declared geometry type.
func (p *Polytope[T]) Type() Type { return p.ptype }

// Structure exposes the underlying core structure for read-only collaborators.
func (p *Polytope[T]) Structure() *core.Structure[T] { return p.s }

// Faces returns all faces in declaration order.
func (p *Polytope[T]) Faces() []Face {
	out := make([]Face, 0, len(p.faceOrder))
	for _, id := range p.faceOrder {
		out = append(out, p.faces[id])
	}
	return out
}

// Face returns a face by ID, or (zero, false) when absent.
func (p *Polytope[T]) Face(id string) (Face, bool) {
	f, ok := p.faces[id]
	return f, ok
}

// FacesOfDimension filters faces by dimension, declaration order.
func (p *Polytope[T]) FacesOfDimension(dimension int) []Face {
	var out []Face
	for _, id := range p.faceOrder {
		if f := p.faces[id]; f.Dimension == dimension {
			out = append(out, f)
		}
	}
	return out
}

// Constraints returns the declared constraints in declaration order.
func (p *Polytope[T]) Constraints() []Constraint {
	return append([]Constraint(nil), p.constraints...)
}

// ConstraintSatisfied re-evaluates a declared constraint by ID. Unknown
// IDs report false. Query-time use only: failures here are data, not errors.
func (p *Polytope[T]) ConstraintSatisfied(id string) bool {
	for _, c := range p.constraints {
		if c.ID == id {
			return p.checkConstraint(c) == nil
		}
	}
	return false
}

// BoundaryNodes returns the union of node IDs appearing in any face of
// dimension strictly less than the polytope's, sorted for determinism.
func (p *Polytope[T]) BoundaryNodes() []string {
	seen := make(map[string]struct{})
	for _, id := range p.faceOrder {
		face := p.faces[id]
		if face.Dimension >= p.dimension {
			continue
		}
		for _, nodeID := range face.NodeIDs {
			seen[nodeID] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// InteriorNodes returns the complement of BoundaryNodes, sorted.
func (p *Polytope[T]) InteriorNodes() []string {
	boundary := make(map[string]struct{})
	for _, id := range p.BoundaryNodes() {
		boundary[id] = struct{}{}
	}
	var out []string
	for _, id := range p.s.NodeIDs() {
		if _, ok := boundary[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// FindAllPaths delegates to the core path engine.
func (p *Polytope[T]) FindAllPaths(source, target string) ([]core.Path[T], error) {
	return p.s.FindAllPaths(source, target)
}

// PathsWithinFace enumerates, for every ordered pair of distinct face nodes,
// the simple paths confined to the face (every visited node a member).
// Returns ErrFaceNotFound for unknown faces.
func (p *Polytope[T]) PathsWithinFace(faceID string) ([]core.Path[T], error) {
	face, ok := p.faces[faceID]
	if !ok {
		return nil, fmt.Errorf("polytope: PathsWithinFace(%q): %w", faceID, ErrFaceNotFound)
	}
	var out []core.Path[T]
	for _, src := range face.NodeIDs {
		for _, dst := range face.NodeIDs {
			if src == dst {
				continue
			}
			paths, err := p.confinedPaths(face, src, dst)
			if err != nil {
				return nil, err
			}
			out = append(out, paths...)
		}
	}
	return out, nil
}

// confinedPaths filters the simple paths from src to dst down to those whose
// every node belongs to the face.
func (p *Polytope[T]) confinedPaths(face Face, src, dst string) ([]core.Path[T], error) {
	paths, err := p.s.FindAllPaths(src, dst)
	if err != nil {
		return nil, err
	}
	var out []core.Path[T]
	for _, path := range paths {
		inside := true
		for _, nodeID := range path.NodeIDs {
			if !face.Contains(nodeID) {
				inside = false
				break
			}
		}
		if inside {
			out = append(out, path)
		}
	}
	return out, nil
}

// IsCommutative checks global path agreement between the endpoints, plus
// local agreement within every face containing both. A "false" answer is
// valid data; the only error case is an unknown endpoint.
func (p *Polytope[T]) IsCommutative(source, target string) (bool, error) {
	ok, err := p.s.IsCommutative(source, target, p.eq)
	if err != nil || !ok {
		return ok, err
	}
	for _, id := range p.faceOrder {
		face := p.faces[id]
		if !face.Contains(source) || !face.Contains(target) {
			continue
		}
		paths, err := p.confinedPaths(face, source, target)
		if err != nil {
			return false, err
		}
		if !core.PathsCommute(paths, p.eq) {
			return false, nil
		}
	}
	return true, nil
}

// checkConstraint evaluates one constraint; nil means satisfied. The scope
// picks the node range; every ordered pair inside it must commute.
func (p *Polytope[T]) checkConstraint(c Constraint) error {
	switch c.Scope {
	case ScopeLocal:
		// Each referenced face separately, paths confined to the face.
		for _, faceID := range c.FaceIDs {
			face, ok := p.faces[faceID]
			if !ok {
				return fmt.Errorf("face %q: %w", faceID, ErrFaceNotFound)
			}
			for _, src := range face.NodeIDs {
				for _, dst := range face.NodeIDs {
					if src == dst {
						continue
					}
					paths, err := p.confinedPaths(face, src, dst)
					if err != nil {
						return err
					}
					if !core.PathsCommute(paths, p.eq) {
						return fmt.Errorf("face %q: %s ⇒ %s: %w", faceID, src, dst, ErrCommutativityViolation)
					}
				}
			}
		}
		return nil

	case ScopeMultidimensional:
		return p.checkPairs(c, unionNodes(p, c.FaceIDs))

	case ScopeBoundary:
		return p.checkPairs(c, p.BoundaryNodes())

	case ScopeInterior:
		return p.checkPairs(c, p.InteriorNodes())

	case ScopeGlobal:
		return p.checkPairs(c, p.s.NodeIDs())

	default:
		return fmt.Errorf("scope %d: %w", c.Scope, ErrCommutativityViolation)
	}
}

// checkPairs requires unrestricted path agreement for every ordered pair of
// distinct nodes in scope.
func (p *Polytope[T]) checkPairs(c Constraint, scope []string) error {
	for _, src := range scope {
		for _, dst := range scope {
			if src == dst {
				continue
			}
			ok, err := p.s.IsCommutative(src, dst, p.eq)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s ⇒ %s: %w", src, dst, ErrCommutativityViolation)
			}
		}
	}
	return nil
}

// unionNodes collects the referenced faces' nodes in first-seen order.
func unionNodes[T any](p *Polytope[T], faceIDs []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, faceID := range faceIDs {
		face, ok := p.faces[faceID]
		if !ok {
			continue
		}
		for _, nodeID := range face.NodeIDs {
			if _, dup := seen[nodeID]; dup {
				continue
			}
			seen[nodeID] = struct{}{}
			out = append(out, nodeID)
		}
	}
	return out
}

// SubPolytope extracts the induced sub-structure over nodeIDs: the listed
// nodes (parent insertion order) and every morphism with both endpoints
// inside. The result is independently owned, one dimension lower, of
// Arbitrary type, and carries no faces or constraints.
// Returns ErrDimension when the parent is 0-dimensional.
func (p *Polytope[T]) SubPolytope(name string, nodeIDs []string) (*Polytope[T], error) {
	if p.dimension == 0 {
		return nil, fmt.Errorf("polytope: SubPolytope(%q): parent is 0-dimensional: %w", name, ErrDimension)
	}

	keep := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		keep[id] = struct{}{}
	}

	sub := NewBuilder[T](name, p.dimension-1, Arbitrary, WithEquivalence(p.eq))
	// Parent insertion order keeps the extraction deterministic.
	for _, n := range p.s.Nodes() {
		if _, ok := keep[n.ID]; !ok {
			continue
		}
		if err := sub.AddNode(n.ID, n.Data); err != nil {
			return nil, fmt.Errorf("polytope: SubPolytope(%q): %w", name, err)
		}
	}
	for _, m := range p.s.Morphisms() {
		if _, ok := keep[m.Source]; !ok {
			continue
		}
		if _, ok := keep[m.Target]; !ok {
			continue
		}
		if err := sub.AddMorphism(m.ID, m.Source, m.Target, m.Transform, m.Label); err != nil {
			return nil, fmt.Errorf("polytope: SubPolytope(%q): %w", name, err)
		}
	}

	return sub.Build()
}

// String renders a short diagnostic summary.
func (p *Polytope[T]) String() string {
	return fmt.Sprintf("Polytope(%s, dim=%d, %s) with %d nodes, %d morphisms, %d faces",
		p.s.Name(), p.dimension, p.ptype, p.s.NodeCount(), p.s.MorphismCount(), len(p.faces))
}
