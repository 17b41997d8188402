// Package polytope implements the commutative n-polytope specialization:
// the core node/morphism model enriched with named, dimension-tagged faces,
// scoped commutativity constraints, boundary/interior classification, and
// induced sub-polytope extraction.
//
// All constraints are checked while building: a violated constraint aborts
// construction with ErrCommutativityViolation. The same constraint can be
// re-evaluated later through ConstraintSatisfied, which reports a boolean
// and never fails the structure.
//
// Errors:
//
//	ErrDimension                - negative polytope dimension, or sub-polytope
//	                              extraction from a 0-dimensional polytope.
//	ErrDuplicateFace            - face ID already registered.
//	ErrFaceNotFound             - operation referenced an unknown face.
//	ErrFaceNode                 - face references a node absent from the polytope.
//	ErrFaceDimension            - face dimension exceeds the polytope dimension.
//	ErrCommutativityViolation   - a declared constraint does not hold.
package polytope

import (
	"errors"

	"github.com/catty-project/catgraph/core"
)

// Sentinel errors for polytope construction and queries.
var (
	// ErrDimension indicates an invalid polytope dimension.
	ErrDimension = errors.New("polytope: invalid dimension")

	// ErrDuplicateFace indicates a face ID collision.
	ErrDuplicateFace = errors.New("polytope: duplicate face ID")

	// ErrFaceNotFound indicates an operation referenced an unknown face.
	ErrFaceNotFound = errors.New("polytope: face not found")

	// ErrFaceNode indicates a face referencing a node absent from the polytope.
	ErrFaceNode = errors.New("polytope: face references unknown node")

	// ErrFaceDimension indicates a face whose dimension exceeds the polytope's.
	ErrFaceDimension = errors.New("polytope: face dimension exceeds polytope dimension")

	// ErrCommutativityViolation indicates a declared constraint that does not
	// hold; fatal at build time.
	ErrCommutativityViolation = errors.New("polytope: commutativity constraint violated")
)

// Type classifies the overall polytope geometry.
type Type int

// Polytope geometries.
const (
	Point Type = iota
	LineSegment
	Triangle
	Square
	Tetrahedron
	Cube
	Simplex
	Hypercube
	Arbitrary
)

var typeNames = [...]string{
	"Point", "LineSegment", "Triangle", "Square",
	"Tetrahedron", "Cube", "Simplex", "Hypercube", "Arbitrary",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// FaceType classifies a single face by its geometric role.
type FaceType int

// Face roles, by ascending dimension.
const (
	FaceVertex FaceType = iota
	FaceEdge
	FaceFacet
	FaceCell
	FaceHyperface
	FaceArbitrary
)

var faceTypeNames = [...]string{"Vertex", "Edge", "Facet", "Cell", "Hyperface", "Arbitrary"}

func (t FaceType) String() string {
	if t < 0 || int(t) >= len(faceTypeNames) {
		return "Unknown"
	}
	return faceTypeNames[t]
}

// Face is a named, ordered subset of polytope nodes with a declared
// dimension (0 = vertex … bounded above by the polytope's dimension).
type Face struct {
	// ID uniquely identifies the face within its polytope.
	ID string

	// Dimension is the face's geometric dimension.
	Dimension int

	// NodeIDs lists the member nodes in declaration order.
	NodeIDs []string

	// Type is the face's geometric role.
	Type FaceType
}

// Contains reports membership of a node in the face.
func (f Face) Contains(nodeID string) bool {
	for _, id := range f.NodeIDs {
		if id == nodeID {
			return true
		}
	}
	return false
}

// Scope selects the node range over which a commutativity constraint is
// evaluated.
type Scope int

// Constraint scopes.
const (
	// ScopeLocal checks each referenced face separately, with paths confined
	// to that face's nodes.
	ScopeLocal Scope = iota

	// ScopeGlobal checks every node pair of the whole polytope.
	ScopeGlobal

	// ScopeBoundary checks pairs of boundary nodes.
	ScopeBoundary

	// ScopeInterior checks pairs of interior nodes.
	ScopeInterior

	// ScopeMultidimensional checks pairs across the union of the referenced
	// faces' nodes, paths unrestricted.
	ScopeMultidimensional
)

var scopeNames = [...]string{"Local", "Global", "Boundary", "Interior", "Multidimensional"}

func (s Scope) String() string {
	if s < 0 || int(s) >= len(scopeNames) {
		return "Unknown"
	}
	return scopeNames[s]
}

// Constraint declares that all alternative paths inside its scope must
// compose equivalently. Checked, never stored as a boolean.
type Constraint struct {
	// ID uniquely identifies the constraint.
	ID string

	// FaceIDs are the referenced faces (used by Local and Multidimensional
	// scopes; must exist in the polytope regardless of scope).
	FaceIDs []string

	// Description is free-form documentation text.
	Description string

	// Scope selects the evaluation range.
	Scope Scope
}

// Option configures a Builder.
type Option[T any] func(*options[T])

type options[T any] struct {
	eq core.Equivalence[T]
}

// WithEquivalence sets the path equivalence used for constraint checking
// and commutativity queries; the default is a sampler over the node
// payloads.
func WithEquivalence[T any](eq core.Equivalence[T]) Option[T] {
	return func(o *options[T]) { o.eq = eq }
}

// Polytope is a validated commutative n-polytope. Produced by a Builder,
// immutable afterwards, safe for concurrent readers.
type Polytope[T any] struct {
	s           *core.Structure[T]
	dimension   int
	ptype       Type
	faces       map[string]Face
	faceOrder   []string
	constraints []Constraint
	eq          core.Equivalence[T]
}
