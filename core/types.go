// Package core defines the shared categorical vocabulary (Structure, Node,
// Morphism, Path and Transform) plus deterministic path enumeration,
// transform composition, and equivalence-based commutativity checking.
//
// A Structure exclusively owns its nodes and morphisms. Adjacency and
// registry iteration follow insertion order, so for a fixed build sequence
// every query (FindAllPaths above all) is reproducible call after call.
// The specializations in category/, polytope/ and dag/ are layered strictly
// on top of this package and never bypass it.
//
// This file declares Transform, Node, Morphism, Structure, the sentinel
// errors, and the New constructor.
//
// Errors:
//
//	ErrEmptyNodeID       - node ID is the empty string.
//	ErrDuplicateNode     - node ID already present in the structure.
//	ErrNodeNotFound      - operation referenced a non-existent node.
//	ErrDuplicateMorphism - morphism ID already present in the structure.
//	ErrMorphismNotFound  - operation referenced a non-existent morphism.
//	ErrNilTransform      - morphism supplied without a transform.
//	ErrPathDisconnected  - morphism sequence does not chain end to end.
package core

import (
	"errors"
)

// Sentinel errors for core structure operations.
var (
	// ErrEmptyNodeID indicates an empty string was supplied as a node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates a node ID collision within one structure.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateMorphism indicates a morphism ID collision within one structure.
	ErrDuplicateMorphism = errors.New("core: duplicate morphism ID")

	// ErrMorphismNotFound indicates an operation referenced a non-existent morphism.
	ErrMorphismNotFound = errors.New("core: morphism not found")

	// ErrNilTransform indicates a morphism was supplied without a transform.
	ErrNilTransform = errors.New("core: nil transform")

	// ErrPathDisconnected indicates a morphism sequence whose consecutive
	// endpoints do not chain (target of one ≠ source of the next).
	ErrPathDisconnected = errors.New("core: morphism sequence is not a connected path")
)

// Transform is the payload transformation carried by a morphism.
type Transform[T any] func(T) T

// Identity returns the transform that maps every payload to itself.
// It is the composition of the empty path.
func Identity[T any]() Transform[T] {
	return func(v T) T { return v }
}

// Compose returns g∘f in diagram order: the result applies f first, then g.
func Compose[T any](f, g Transform[T]) Transform[T] {
	return func(v T) T { return g(f(v)) }
}

// Node is an identified vertex of a Structure carrying an opaque payload.
//
// A Node records the morphisms incident to it in insertion order; that
// order drives deterministic path enumeration and must not be re-sorted.
type Node[T any] struct {
	// ID uniquely identifies this node within its Structure.
	ID string

	// Data is the opaque payload attached at insertion time.
	Data T

	in  []string // incoming morphism IDs, insertion order
	out []string // outgoing morphism IDs, insertion order
}

// Incoming returns the IDs of morphisms targeting this node, in insertion order.
func (n *Node[T]) Incoming() []string {
	return append([]string(nil), n.in...)
}

// Outgoing returns the IDs of morphisms leaving this node, in insertion order.
func (n *Node[T]) Outgoing() []string {
	return append([]string(nil), n.out...)
}

// Morphism is a directed, labeled edge between two nodes of one Structure,
// carrying a payload transform. Immutable once added.
type Morphism[T any] struct {
	// ID uniquely identifies this morphism within its Structure.
	ID string

	// Source is the ID of the domain node.
	Source string

	// Target is the ID of the codomain node.
	Target string

	// Transform maps a payload across this morphism.
	Transform Transform[T]

	// Label is the human-readable description used in diagnostics and
	// by the label-based equivalence policy.
	Label string
}

// Structure is the primitive categorical graph: a named, exclusive owner of
// nodes and morphisms with insertion-order registries.
//
// A Structure is mutable while being populated and treated as logically
// immutable afterwards; concurrent readers of a finished Structure need no
// synchronization. Populating one Structure from several goroutines is the
// caller's responsibility to prevent.
type Structure[T any] struct {
	name string

	nodes     map[string]*Node[T]
	morphisms map[string]*Morphism[T]

	nodeOrder     []string // node IDs in insertion order
	morphismOrder []string // morphism IDs in insertion order
}

// New creates an empty Structure with the given name.
// Complexity: O(1)
func New[T any](name string) *Structure[T] {
	return &Structure[T]{
		name:      name,
		nodes:     make(map[string]*Node[T]),
		morphisms: make(map[string]*Morphism[T]),
	}
}
