// builder.go - cycle-rejecting DAG assembly and the Build freeze:
// topological sort, depths, ancestor/descendant closures, pattern checks.

package dag

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/catty-project/catgraph/category"
	"github.com/catty-project/catgraph/core"
)

// Builder assembles a DAG. Single-threaded, one-shot.
type Builder[T any] struct {
	s        *core.Structure[T]
	nodes    map[string]*nodeState
	sources  *treeset.Set
	sinks    *treeset.Set
	patterns []Pattern
	opts     options[T]
}

// NewBuilder creates an empty DAG builder with the given name.
func NewBuilder[T any](name string, opts ...Option[T]) *Builder[T] {
	o := options[T]{}
	for _, fn := range opts {
		fn(&o)
	}
	return &Builder[T]{
		s:       core.New[T](name),
		nodes:   make(map[string]*nodeState),
		sources: treeset.NewWithStringComparator(),
		sinks:   treeset.NewWithStringComparator(),
		opts:    o,
	}
}

// AddNode inserts a node; until an edge touches it, it counts as both a
// source and a sink.
func (b *Builder[T]) AddNode(id string, data T) error {
	if err := b.s.AddNode(id, data); err != nil {
		return err
	}
	b.nodes[id] = &nodeState{
		ancestors:   treeset.NewWithStringComparator(),
		descendants: treeset.NewWithStringComparator(),
	}
	b.sources.Add(id)
	b.sinks.Add(id)
	return nil
}

// DependencyID returns the conventional morphism ID of a dependency edge.
func DependencyID(source, target string) string { return source + "_to_" + target }

// AddDependency inserts the edge source→target carrying tf. The morphism ID
// follows DependencyID. Before any mutation the reverse reachability check
// runs: an existing path target⇒source (including target == source) fails
// the call with ErrCycle and leaves every count unchanged. Unknown nodes
// surface core.ErrNodeNotFound; a repeated edge core.ErrDuplicateMorphism.
func (b *Builder[T]) AddDependency(source, target string, tf core.Transform[T], label string) error {
	// 1. Cycle gate first; HasPath validates both endpoints.
	back, err := b.s.HasPath(target, source)
	if err != nil {
		return fmt.Errorf("dag: AddDependency: %w", err)
	}
	if back {
		return fmt.Errorf("dag: AddDependency: %s → %s would close a cycle: %w", source, target, ErrCycle)
	}

	// 2. Insert; remaining validation (duplicates, nil transform) is core's.
	if err := b.s.AddMorphism(DependencyID(source, target), source, target, tf, label); err != nil {
		return err
	}

	// 3. Incremental bookkeeping: adjacency plus source/sink status.
	b.nodes[source].succs = append(b.nodes[source].succs, target)
	b.nodes[target].preds = append(b.nodes[target].preds, source)
	b.sources.Remove(target)
	b.sinks.Remove(source)

	return nil
}

// AddPattern declares a commutativity pattern; it is validated at Build.
func (b *Builder[T]) AddPattern(id, source, target string, alternatives [][]string, description string) {
	alts := make([][]string, 0, len(alternatives))
	for _, a := range alternatives {
		alts = append(alts, append([]string(nil), a...))
	}
	b.patterns = append(b.patterns, Pattern{
		ID:           id,
		Source:       source,
		Target:       target,
		Alternatives: alts,
		Description:  description,
	})
}

// visitation colors for the topological DFS.
const (
	white = iota
	gray
	black
)

// Build freezes the DAG: safety-net topological sort, indices, depths,
// transitive closures, and pattern validation. Returns ErrCycle,
// ErrPatternPath or ErrCommutativityViolation on structural defects.
func (b *Builder[T]) Build() (*DAG[T], error) {
	// 1. Topological sort via three-color DFS over insertion order.
	//    Incremental checks should have prevented cycles; this is the net.
	state := make(map[string]int, len(b.nodes))
	postorder := make([]string, 0, len(b.nodes))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case gray:
			return fmt.Errorf("dag: Build: back-edge at %q: %w", id, ErrCycle)
		case black:
			return nil
		}
		state[id] = gray
		for _, succ := range b.nodes[id].succs {
			if err := visit(succ); err != nil {
				return err
			}
		}
		state[id] = black
		postorder = append(postorder, id)
		return nil
	}
	for _, id := range b.s.NodeIDs() {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	// 2. Reverse post-order is the topological order.
	order := make([]string, len(postorder))
	for i, id := range postorder {
		order[len(postorder)-1-i] = id
	}
	for i, id := range order {
		b.nodes[id].topoIndex = i
	}

	// 3. Depths in topological order: sources sit at 0.
	for _, id := range order {
		depth := 0
		for _, pred := range b.nodes[id].preds {
			if d := b.nodes[pred].depth + 1; d > depth {
				depth = d
			}
		}
		b.nodes[id].depth = depth
	}

	// 4. Ancestor closures forward, descendant closures backward.
	for _, id := range order {
		ns := b.nodes[id]
		for _, pred := range ns.preds {
			ns.ancestors.Add(pred)
			for _, anc := range b.nodes[pred].ancestors.Values() {
				ns.ancestors.Add(anc)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		ns := b.nodes[order[i]]
		for _, succ := range ns.succs {
			ns.descendants.Add(succ)
			for _, desc := range b.nodes[succ].descendants.Values() {
				ns.descendants.Add(desc)
			}
		}
	}

	// 5. Resolve the equivalence policy before pattern validation.
	eq := b.opts.eq
	if eq == nil {
		probes := make([]T, 0, b.s.NodeCount())
		for _, n := range b.s.Nodes() {
			probes = append(probes, n.Data)
		}
		eq = core.NewSampler(probes...).Equivalence()
	}

	// 6. Every declared pattern must name real paths that agree.
	for _, p := range b.patterns {
		if err := b.validatePattern(p, eq); err != nil {
			return nil, err
		}
	}

	return &DAG[T]{
		s:        b.s,
		nodes:    b.nodes,
		order:    order,
		sources:  b.sources,
		sinks:    b.sinks,
		patterns: b.patterns,
		eq:       eq,
	}, nil
}

// validatePattern resolves each alternative into a path anchored at the
// pattern's endpoints and requires pairwise agreement.
func (b *Builder[T]) validatePattern(p Pattern, eq core.Equivalence[T]) error {
	paths := make([]core.Path[T], 0, len(p.Alternatives))
	for _, alt := range p.Alternatives {
		path, err := b.s.NewPath(alt)
		if err != nil {
			return fmt.Errorf("dag: Build: pattern %q: %v: %w", p.ID, err, ErrPatternPath)
		}
		if path.Source() != p.Source || path.Target() != p.Target {
			return fmt.Errorf("dag: Build: pattern %q: path %s⇒%s not anchored at %s⇒%s: %w",
				p.ID, path.Source(), path.Target(), p.Source, p.Target, ErrPatternPath)
		}
		paths = append(paths, path)
	}
	if !core.PathsCommute(paths, eq) {
		return fmt.Errorf("dag: Build: pattern %q: %w", p.ID, ErrCommutativityViolation)
	}
	return nil
}

// FromCategory primes a DAG builder with a category's objects and
// non-identity morphisms as dependencies. A morphism that would close a
// cycle fails the priming with ErrCycle.
func FromCategory[T any](name string, cat *category.Category[T], opts ...Option[T]) (*Builder[T], error) {
	b := NewBuilder[T](name, opts...)
	for _, obj := range cat.Objects() {
		if err := b.AddNode(obj.ID, obj.Data); err != nil {
			return nil, fmt.Errorf("dag: FromCategory: %w", err)
		}
	}
	for _, m := range cat.Morphisms() {
		if info, ok := cat.MorphismInfo(m.ID); ok && info.Kind == category.KindIdentity {
			continue
		}
		if err := b.AddDependency(m.Source, m.Target, m.Transform, m.Label); err != nil {
			return nil, fmt.Errorf("dag: FromCategory: %w", err)
		}
	}
	return b, nil
}
