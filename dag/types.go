// Package dag implements the directed-acyclic-graph specialization:
// cycle-rejecting dependency insertion, topological ordering with per-node
// depth, materialized ancestor/descendant closures, and named commutativity
// patterns over alternative dependency paths.
//
// Acyclicity is enforced twice: every AddDependency checks for a reverse
// path before inserting (a rejected edge leaves no trace), and Build runs a
// full three-color DFS as a safety net. A built DAG is frozen; all derived
// data (indices, depths, closures) is computed once at Build.
//
// Ancestor, descendant, source and sink sets are kept in ordered sets
// (emirpasic/gods treeset), so every query returns sorted, reproducible
// slices.
//
// Errors:
//
//	ErrCycle                  - the edge or graph would close a cycle.
//	ErrPatternPath            - a commutativity pattern names an invalid path.
//	ErrCommutativityViolation - a pattern's alternative paths disagree.
package dag

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/catty-project/catgraph/core"
)

// Sentinel errors for DAG construction.
var (
	// ErrCycle indicates an insertion or validation that would close a cycle.
	ErrCycle = errors.New("dag: cycle detected")

	// ErrPatternPath indicates a commutativity pattern referencing a morphism
	// sequence that is unknown, disconnected, or anchored at the wrong nodes.
	ErrPatternPath = errors.New("dag: invalid pattern path")

	// ErrCommutativityViolation indicates a pattern whose alternative paths
	// do not compose equivalently; fatal at build time.
	ErrCommutativityViolation = errors.New("dag: commutativity pattern violated")
)

// Pattern names a set of alternative dependency paths between two nodes
// that are expected to compose equivalently. Validated at Build.
type Pattern struct {
	// ID uniquely identifies the pattern.
	ID string

	// Source and Target anchor every alternative path.
	Source string
	Target string

	// Alternatives lists the competing paths, each a morphism-ID sequence.
	Alternatives [][]string

	// Description is free-form documentation text.
	Description string
}

// Info is the derived per-node DAG bookkeeping, frozen at Build.
type Info struct {
	// TopologicalIndex is the node's position in the topological order.
	TopologicalIndex int

	// Depth is 0 for sources, otherwise 1 + the maximum predecessor depth.
	Depth int

	// Predecessors and Successors list direct neighbors in insertion order.
	Predecessors []string
	Successors   []string
}

// Option configures a Builder.
type Option[T any] func(*options[T])

type options[T any] struct {
	eq core.Equivalence[T]
}

// WithEquivalence sets the path equivalence used for pattern validation and
// commutativity queries; the default is a sampler over the node payloads.
func WithEquivalence[T any](eq core.Equivalence[T]) Option[T] {
	return func(o *options[T]) { o.eq = eq }
}

// DAG is a frozen directed acyclic graph over the core structure.
// Safe for concurrent readers.
type DAG[T any] struct {
	s        *core.Structure[T]
	nodes    map[string]*nodeState
	order    []string // topological order
	sources  *treeset.Set
	sinks    *treeset.Set
	patterns []Pattern
	eq       core.Equivalence[T]
}

// nodeState carries mutable bookkeeping during construction and the frozen
// results afterwards.
type nodeState struct {
	preds       []string // insertion order
	succs       []string // insertion order
	topoIndex   int
	depth       int
	ancestors   *treeset.Set
	descendants *treeset.Set
}

// setValues flattens an ordered set into a sorted string slice.
func setValues(s *treeset.Set) []string {
	vals := s.Values()
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(string))
	}
	return out
}
