// dag.go - read-only query surface of a frozen DAG.

package dag

import (
	"fmt"

	"github.com/catty-project/catgraph/core"
)

// Name returns the DAG's name.
func (d *DAG[T]) Name() string { return d.s.Name() }

// Structure exposes the underlying core structure for read-only collaborators.
func (d *DAG[T]) Structure() *core.Structure[T] { return d.s }

// TopologicalOrder returns all node IDs in topological order.
func (d *DAG[T]) TopologicalOrder() []string {
	return append([]string(nil), d.order...)
}

// Info returns the frozen bookkeeping of a node.
// Returns core.ErrNodeNotFound for unknown IDs.
func (d *DAG[T]) Info(id string) (Info, error) {
	ns, ok := d.nodes[id]
	if !ok {
		return Info{}, fmt.Errorf("dag: Info(%q): %w", id, core.ErrNodeNotFound)
	}
	return Info{
		TopologicalIndex: ns.topoIndex,
		Depth:            ns.depth,
		Predecessors:     append([]string(nil), ns.preds...),
		Successors:       append([]string(nil), ns.succs...),
	}, nil
}

// TopologicalIndex returns a node's position in the topological order.
func (d *DAG[T]) TopologicalIndex(id string) (int, error) {
	ns, ok := d.nodes[id]
	if !ok {
		return 0, fmt.Errorf("dag: TopologicalIndex(%q): %w", id, core.ErrNodeNotFound)
	}
	return ns.topoIndex, nil
}

// Depth returns a node's depth: 0 for sources, 1 + max predecessor depth
// otherwise.
func (d *DAG[T]) Depth(id string) (int, error) {
	ns, ok := d.nodes[id]
	if !ok {
		return 0, fmt.Errorf("dag: Depth(%q): %w", id, core.ErrNodeNotFound)
	}
	return ns.depth, nil
}

// Sources returns the nodes without predecessors, sorted.
func (d *DAG[T]) Sources() []string { return setValues(d.sources) }

// Sinks returns the nodes without successors, sorted.
func (d *DAG[T]) Sinks() []string { return setValues(d.sinks) }

// Ancestors returns the transitive predecessor closure of a node, sorted.
func (d *DAG[T]) Ancestors(id string) ([]string, error) {
	ns, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("dag: Ancestors(%q): %w", id, core.ErrNodeNotFound)
	}
	return setValues(ns.ancestors), nil
}

// Descendants returns the transitive successor closure of a node, sorted.
func (d *DAG[T]) Descendants(id string) ([]string, error) {
	ns, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("dag: Descendants(%q): %w", id, core.ErrNodeNotFound)
	}
	return setValues(ns.descendants), nil
}

// IsAncestor reports whether ancestor precedes descendant along some
// dependency chain. Unknown IDs report false.
func (d *DAG[T]) IsAncestor(ancestor, descendant string) bool {
	ns, ok := d.nodes[ancestor]
	return ok && ns.descendants.Contains(descendant)
}

// IsDescendant is the converse of IsAncestor.
func (d *DAG[T]) IsDescendant(descendant, ancestor string) bool {
	ns, ok := d.nodes[descendant]
	return ok && ns.ancestors.Contains(ancestor)
}

// HasPath reports reachability in O(log V) via the materialized closure.
// A node reaches itself.
func (d *DAG[T]) HasPath(source, target string) bool {
	if source == target {
		_, ok := d.nodes[source]
		return ok
	}
	return d.IsAncestor(source, target)
}

// FindAllPaths delegates to the core path engine.
func (d *DAG[T]) FindAllPaths(source, target string) ([]core.Path[T], error) {
	return d.s.FindAllPaths(source, target)
}

// IsCommutative checks path agreement under the DAG's equivalence policy.
// Declared patterns were already enforced at Build; this is the ad-hoc
// query-time form and never fails the structure.
func (d *DAG[T]) IsCommutative(source, target string) (bool, error) {
	return d.s.IsCommutative(source, target, d.eq)
}

// SourceToSinkPaths enumerates every simple path from every source to every
// sink, sources and sinks in sorted order, paths in DFS order per pair.
func (d *DAG[T]) SourceToSinkPaths() []core.Path[T] {
	var out []core.Path[T]
	for _, src := range d.Sources() {
		for _, sink := range d.Sinks() {
			if src == sink {
				continue
			}
			// Endpoints are known to exist; the error path is unreachable.
			paths, _ := d.s.FindAllPaths(src, sink)
			out = append(out, paths...)
		}
	}
	return out
}

// Patterns returns the declared commutativity patterns.
func (d *DAG[T]) Patterns() []Pattern {
	return append([]Pattern(nil), d.patterns...)
}

// Dimension returns the maximum node depth.
func (d *DAG[T]) Dimension() int {
	maxDepth := 0
	for _, ns := range d.nodes {
		if ns.depth > maxDepth {
			maxDepth = ns.depth
		}
	}
	return maxDepth
}

// SubDAG extracts the induced DAG over nodeIDs: listed nodes in the parent's
// insertion order plus every dependency with both endpoints inside. The
// result is rebuilt through a fresh builder, so indices, depths and closures
// are recomputed for the subset; patterns are not carried over.
func (d *DAG[T]) SubDAG(name string, nodeIDs []string) (*DAG[T], error) {
	keep := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		keep[id] = struct{}{}
	}

	b := NewBuilder[T](name, WithEquivalence[T](d.eq))
	for _, n := range d.s.Nodes() {
		if _, ok := keep[n.ID]; !ok {
			continue
		}
		if err := b.AddNode(n.ID, n.Data); err != nil {
			return nil, fmt.Errorf("dag: SubDAG(%q): %w", name, err)
		}
	}
	for _, m := range d.s.Morphisms() {
		if _, ok := keep[m.Source]; !ok {
			continue
		}
		if _, ok := keep[m.Target]; !ok {
			continue
		}
		if err := b.AddDependency(m.Source, m.Target, m.Transform, m.Label); err != nil {
			return nil, fmt.Errorf("dag: SubDAG(%q): %w", name, err)
		}
	}
	return b.Build()
}

// String renders a short diagnostic summary.
func (d *DAG[T]) String() string {
	return fmt.Sprintf("DAG(%s) with %d nodes, %d dependencies, %d sources, %d sinks",
		d.s.Name(), d.s.NodeCount(), d.s.MorphismCount(), d.sources.Size(), d.sinks.Size())
}
