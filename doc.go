// Package catgraph is an in-memory toolkit for building, validating and
// querying categorical graph structures: finite categories, commutative
// n-polytopes and directed acyclic graphs over one shared node/morphism model.
//
// 🚀 What is catgraph?
//
//	A small, construction-time-validated library that brings together:
//		• Core primitives: identified nodes, labeled morphisms carrying transforms
//		• Path engine: deterministic simple-path enumeration + transform composition
//		• Commutativity: explicit equivalence policies (sample- or label-based)
//		• Finite categories: identities, hom-sets, initial/terminal objects, law checks
//		• N-polytopes: dimension-tagged faces, scoped commutativity constraints
//		• DAGs: cycle-rejecting insertion, topological order, depth, ancestry closures
//
// ✨ Why choose catgraph?
//
//   - Fail-fast – every structural defect is caught while building, never later
//   - Deterministic – insertion-order traversal, reproducible path lists
//   - Immutable once built – share freely across goroutines without locks
//   - Composable – YAML manifests, a compact diagram notation, Turtle export
//
// Under the hood, everything is organized per concern:
//
//	core/     — Structure, Node, Morphism, Path, equivalence policies
//	category/ — finite-category specialization
//	polytope/ — commutative n-polytope specialization
//	dag/      — directed-acyclic-graph specialization
//	notation/ — "A -f-> B -g-> C" diagram expressions
//	manifest/ — declarative YAML documents for all three specializations
//	rdf/      — read-only Turtle export of built structures
//
// Quick ASCII example:
//
//	    PPSC ──interpret──▶ INT
//	      │                  │
//	      │               extend
//	      │                  ▼
//	      └─────direct────▶ CPL
//
//	two paths PPSC→CPL; the diagram commutes iff their composed
//	transforms agree on a probe value.
//
// Dive into the package docs for builder APIs, error taxonomies and the
// equivalence-policy discussion.
//
//	go get github.com/catty-project/catgraph
package catgraph
