// structure.go - mutation and read-only accessor methods of Structure.
//
// Mutations (AddNode, AddMorphism) validate eagerly and return sentinel
// errors; a failed call leaves the Structure untouched. Accessors never
// expose internal slices or maps directly.

package core

import "fmt"

// Name returns the structure's name.
func (s *Structure[T]) Name() string { return s.name }

// AddNode inserts a node with the given ID and payload.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when the ID
// is already present.
// Complexity: O(1)
func (s *Structure[T]) AddNode(id string, data T) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := s.nodes[id]; exists {
		return fmt.Errorf("core: AddNode(%q): %w", id, ErrDuplicateNode)
	}
	s.nodes[id] = &Node[T]{ID: id, Data: data}
	s.nodeOrder = append(s.nodeOrder, id)

	return nil
}

// AddMorphism inserts a directed morphism between two existing nodes.
// Returns ErrNodeNotFound when either endpoint is absent, ErrDuplicateMorphism
// on an ID collision, and ErrNilTransform when tf is nil. On success both
// endpoints' adjacency lists are extended, preserving insertion order.
// Complexity: O(1)
func (s *Structure[T]) AddMorphism(id, source, target string, tf Transform[T], label string) error {
	if id == "" {
		return fmt.Errorf("core: AddMorphism: empty morphism ID: %w", ErrMorphismNotFound)
	}
	if tf == nil {
		return fmt.Errorf("core: AddMorphism(%q): %w", id, ErrNilTransform)
	}
	if _, exists := s.morphisms[id]; exists {
		return fmt.Errorf("core: AddMorphism(%q): %w", id, ErrDuplicateMorphism)
	}
	src, ok := s.nodes[source]
	if !ok {
		return fmt.Errorf("core: AddMorphism(%q): source %q: %w", id, source, ErrNodeNotFound)
	}
	dst, ok := s.nodes[target]
	if !ok {
		return fmt.Errorf("core: AddMorphism(%q): target %q: %w", id, target, ErrNodeNotFound)
	}

	s.morphisms[id] = &Morphism[T]{
		ID:        id,
		Source:    source,
		Target:    target,
		Transform: tf,
		Label:     label,
	}
	s.morphismOrder = append(s.morphismOrder, id)
	src.out = append(src.out, id)
	dst.in = append(dst.in, id)

	return nil
}

// Node returns the node with the given ID, or (nil, false) when absent.
func (s *Structure[T]) Node(id string) (*Node[T], bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Morphism returns the morphism with the given ID, or (nil, false) when absent.
func (s *Structure[T]) Morphism(id string) (*Morphism[T], bool) {
	m, ok := s.morphisms[id]
	return m, ok
}

// HasNode reports whether a node with the given ID exists.
func (s *Structure[T]) HasNode(id string) bool {
	_, ok := s.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V)
func (s *Structure[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		out = append(out, s.nodes[id])
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (s *Structure[T]) NodeIDs() []string {
	return append([]string(nil), s.nodeOrder...)
}

// Morphisms returns all morphisms in insertion order.
// Complexity: O(E)
func (s *Structure[T]) Morphisms() []*Morphism[T] {
	out := make([]*Morphism[T], 0, len(s.morphismOrder))
	for _, id := range s.morphismOrder {
		out = append(out, s.morphisms[id])
	}
	return out
}

// NodeCount returns the number of nodes.
func (s *Structure[T]) NodeCount() int { return len(s.nodes) }

// MorphismCount returns the number of morphisms.
func (s *Structure[T]) MorphismCount() int { return len(s.morphisms) }

// Outgoing returns the IDs of morphisms leaving nodeID in insertion order.
// Returns ErrNodeNotFound when the node is absent.
func (s *Structure[T]) Outgoing(nodeID string) ([]string, error) {
	n, ok := s.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("core: Outgoing(%q): %w", nodeID, ErrNodeNotFound)
	}
	return n.Outgoing(), nil
}

// Incoming returns the IDs of morphisms targeting nodeID in insertion order.
// Returns ErrNodeNotFound when the node is absent.
func (s *Structure[T]) Incoming(nodeID string) ([]string, error) {
	n, ok := s.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("core: Incoming(%q): %w", nodeID, ErrNodeNotFound)
	}
	return n.Incoming(), nil
}

// Clone returns an independently owned copy of the structure: fresh node and
// morphism records, same payloads and transform values. Sub-structure
// extraction in the specializations is built on copies so parent and child
// never alias state.
// Complexity: O(V + E)
func (s *Structure[T]) Clone() *Structure[T] {
	c := New[T](s.name)
	for _, id := range s.nodeOrder {
		n := s.nodes[id]
		// Error is impossible: IDs were already unique in the source.
		_ = c.AddNode(n.ID, n.Data)
	}
	for _, id := range s.morphismOrder {
		m := s.morphisms[id]
		_ = c.AddMorphism(m.ID, m.Source, m.Target, m.Transform, m.Label)
	}
	return c
}

// String renders a short diagnostic summary.
func (s *Structure[T]) String() string {
	return fmt.Sprintf("Structure(%s) with %d nodes and %d morphisms",
		s.name, len(s.nodes), len(s.morphisms))
}
