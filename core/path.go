// path.go - Path views, transform composition, and deterministic
// simple-path enumeration.
//
// FindAllPaths performs a depth-first traversal over outgoing morphisms in
// insertion order with a per-call visited set, so it terminates on cyclic
// graphs and returns only simple paths (no repeated nodes). For a fixed
// structure and insertion order the returned path list is identical on every
// call; commutativity diagnostics rely on that reproducibility.
//
// Complexity:
//
//   - FindAllPaths: O(V + E) per emitted path in the worst case; the number
//     of simple paths itself may be exponential in V.
//   - ComposePath/NewPath: O(k) for a k-morphism sequence.

package core

import (
	"fmt"
	"strings"
)

// Path is a derived, non-owning view of a morphism sequence: the ordered
// morphism IDs, the induced node sequence, the morphism labels in traversal
// order, and the composed transform (first morphism applied first).
//
// Paths are computed on demand and never stored back into a Structure.
type Path[T any] struct {
	// MorphismIDs lists the traversed morphisms in order.
	MorphismIDs []string

	// NodeIDs lists the visited nodes in order; always one longer than
	// MorphismIDs (a zero-morphism path holds just the anchor node).
	NodeIDs []string

	// Labels lists the traversed morphisms' labels in order.
	Labels []string

	// Composed is the left-fold composition of the traversed transforms;
	// the identity transform for an empty path.
	Composed Transform[T]
}

// IsEmpty reports whether the path traverses no morphisms.
func (p Path[T]) IsEmpty() bool { return len(p.MorphismIDs) == 0 }

// Len returns the number of traversed morphisms.
func (p Path[T]) Len() int { return len(p.MorphismIDs) }

// Source returns the starting node ID ("" for a malformed empty view).
func (p Path[T]) Source() string {
	if len(p.NodeIDs) == 0 {
		return ""
	}
	return p.NodeIDs[0]
}

// Target returns the final node ID ("" for a malformed empty view).
func (p Path[T]) Target() string {
	if len(p.NodeIDs) == 0 {
		return ""
	}
	return p.NodeIDs[len(p.NodeIDs)-1]
}

// String renders the node sequence, e.g. "PPSC → INT → CPL".
func (p Path[T]) String() string {
	return fmt.Sprintf("Path(%s) with %d morphisms",
		strings.Join(p.NodeIDs, " → "), len(p.MorphismIDs))
}

// ComposePath folds the transforms of the given morphism sequence into one:
// the first morphism's transform is applied first. An empty sequence
// composes to the identity. Returns ErrMorphismNotFound for unknown IDs.
func (s *Structure[T]) ComposePath(morphismIDs []string) (Transform[T], error) {
	if len(morphismIDs) == 0 {
		return Identity[T](), nil
	}
	tfs := make([]Transform[T], len(morphismIDs))
	for i, id := range morphismIDs {
		m, ok := s.morphisms[id]
		if !ok {
			return nil, fmt.Errorf("core: ComposePath: %q: %w", id, ErrMorphismNotFound)
		}
		tfs[i] = m.Transform
	}
	return func(v T) T {
		for _, tf := range tfs {
			v = tf(v)
		}
		return v
	}, nil
}

// NewPath materializes a Path view over the given morphism sequence,
// validating that consecutive morphisms chain end to end.
// Returns ErrMorphismNotFound for unknown IDs and ErrPathDisconnected when
// the target of one morphism is not the source of the next. An empty
// sequence is rejected here because it carries no anchor node; use
// EmptyPath for the zero-morphism path at a node.
func (s *Structure[T]) NewPath(morphismIDs []string) (Path[T], error) {
	if len(morphismIDs) == 0 {
		return Path[T]{}, fmt.Errorf("core: NewPath: empty sequence has no anchor node: %w", ErrPathDisconnected)
	}

	nodeIDs := make([]string, 0, len(morphismIDs)+1)
	labels := make([]string, 0, len(morphismIDs))
	for i, id := range morphismIDs {
		m, ok := s.morphisms[id]
		if !ok {
			return Path[T]{}, fmt.Errorf("core: NewPath: %q: %w", id, ErrMorphismNotFound)
		}
		if i == 0 {
			nodeIDs = append(nodeIDs, m.Source)
		} else if nodeIDs[len(nodeIDs)-1] != m.Source {
			return Path[T]{}, fmt.Errorf("core: NewPath: %q does not chain from %q: %w",
				id, nodeIDs[len(nodeIDs)-1], ErrPathDisconnected)
		}
		nodeIDs = append(nodeIDs, m.Target)
		labels = append(labels, m.Label)
	}

	composed, err := s.ComposePath(morphismIDs)
	if err != nil {
		return Path[T]{}, err
	}

	return Path[T]{
		MorphismIDs: append([]string(nil), morphismIDs...),
		NodeIDs:     nodeIDs,
		Labels:      labels,
		Composed:    composed,
	}, nil
}

// EmptyPath returns the zero-morphism path anchored at nodeID; its composed
// transform is the identity. Returns ErrNodeNotFound for an unknown node.
func (s *Structure[T]) EmptyPath(nodeID string) (Path[T], error) {
	if _, ok := s.nodes[nodeID]; !ok {
		return Path[T]{}, fmt.Errorf("core: EmptyPath(%q): %w", nodeID, ErrNodeNotFound)
	}
	return Path[T]{
		NodeIDs:  []string{nodeID},
		Composed: Identity[T](),
	}, nil
}

// pathFinder carries the per-call traversal state of FindAllPaths.
type pathFinder[T any] struct {
	s       *Structure[T]
	target  string
	visited map[string]struct{} // nodes on the current stack
	stack   []string            // morphism IDs of the current partial path
	found   []Path[T]
	err     error
}

// FindAllPaths enumerates every simple path from source to target:
// depth-first, outgoing morphisms in insertion order, a path emitted each
// time the traversal reaches target. When source == target the result is
// exactly the empty path. Returns ErrNodeNotFound when either endpoint is
// absent.
func (s *Structure[T]) FindAllPaths(source, target string) ([]Path[T], error) {
	// 1. Validate endpoints up front; traversal assumes they exist.
	if _, ok := s.nodes[source]; !ok {
		return nil, fmt.Errorf("core: FindAllPaths: source %q: %w", source, ErrNodeNotFound)
	}
	if _, ok := s.nodes[target]; !ok {
		return nil, fmt.Errorf("core: FindAllPaths: target %q: %w", target, ErrNodeNotFound)
	}

	// 2. Drive the DFS with fresh per-call state.
	pf := &pathFinder[T]{
		s:       s,
		target:  target,
		visited: make(map[string]struct{}, len(s.nodes)),
	}
	pf.walk(source)
	if pf.err != nil {
		return nil, pf.err
	}

	return pf.found, nil
}

// walk recurses from current, emitting a path whenever target is reached.
// The visited set prunes repeated nodes, so cyclic graphs neither loop
// forever nor report cycle-unrolled variants.
func (pf *pathFinder[T]) walk(current string) {
	if pf.err != nil {
		return
	}
	// Target check precedes the visited check: reaching target ends this
	// branch, and target itself is never expanded further.
	if current == pf.target {
		pf.emit()
		return
	}
	if _, seen := pf.visited[current]; seen {
		return
	}
	pf.visited[current] = struct{}{}

	for _, mid := range pf.s.nodes[current].out {
		m := pf.s.morphisms[mid]
		pf.stack = append(pf.stack, mid)
		pf.walk(m.Target)
		pf.stack = pf.stack[:len(pf.stack)-1]
	}

	delete(pf.visited, current)
}

// emit materializes the current stack as a Path and records it.
func (pf *pathFinder[T]) emit() {
	if len(pf.stack) == 0 {
		p, err := pf.s.EmptyPath(pf.target)
		if err != nil {
			pf.err = err
			return
		}
		pf.found = append(pf.found, p)
		return
	}
	p, err := pf.s.NewPath(pf.stack)
	if err != nil {
		pf.err = err
		return
	}
	pf.found = append(pf.found, p)
}

// HasPath reports whether at least one simple path connects source to target.
// Returns ErrNodeNotFound when either endpoint is absent.
func (s *Structure[T]) HasPath(source, target string) (bool, error) {
	paths, err := s.FindAllPaths(source, target)
	if err != nil {
		return false, err
	}
	return len(paths) > 0, nil
}
