// category.go - read-only query surface of a built Category: hom-sets,
// initial/terminal object detection, path and commutativity delegation.

package category

import (
	"fmt"

	"github.com/catty-project/catgraph/core"
)

// Name returns the category's name.
func (c *Category[T]) Name() string { return c.s.Name() }

// Structure exposes the underlying core structure for read-only collaborators
// such as exporters. Mutating it after Build voids the validated laws.
func (c *Category[T]) Structure() *core.Structure[T] { return c.s }

// Objects returns the category's objects in insertion order.
func (c *Category[T]) Objects() []*core.Node[T] {
	out := make([]*core.Node[T], 0, len(c.objects))
	for _, id := range c.objects {
		n, _ := c.s.Node(id)
		out = append(out, n)
	}
	return out
}

// Object returns a single object by ID, or (nil, false) when absent.
func (c *Category[T]) Object(id string) (*core.Node[T], bool) {
	return c.s.Node(id)
}

// Morphism returns a single morphism by ID, or (nil, false) when absent.
func (c *Category[T]) Morphism(id string) (*core.Morphism[T], bool) {
	return c.s.Morphism(id)
}

// Morphisms returns all morphisms, identities included, in insertion order
// (synthesized identities come after the declared morphisms).
func (c *Category[T]) Morphisms() []*core.Morphism[T] {
	return c.s.Morphisms()
}

// MorphismInfo returns the Kind/Description metadata of a morphism.
func (c *Category[T]) MorphismInfo(id string) (Info, bool) {
	info, ok := c.info[id]
	return info, ok
}

// MorphismsOfKind filters morphisms by their declared kind, insertion order.
func (c *Category[T]) MorphismsOfKind(kind string) []*core.Morphism[T] {
	var out []*core.Morphism[T]
	for _, m := range c.s.Morphisms() {
		if c.info[m.ID].Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// HomSet is the set of direct morphisms from a domain to a codomain.
// Derived per query; indirect (path-composed) morphisms are excluded.
type HomSet[T any] struct {
	Domain    string
	Codomain  string
	Morphisms []*core.Morphism[T]
}

// IsEmpty reports whether the hom-set holds no morphisms.
func (h HomSet[T]) IsEmpty() bool { return len(h.Morphisms) == 0 }

// Size returns the number of morphisms in the hom-set.
func (h HomSet[T]) Size() int { return len(h.Morphisms) }

// String renders a short diagnostic summary.
func (h HomSet[T]) String() string {
	return fmt.Sprintf("Hom(%s, %s) with %d morphisms", h.Domain, h.Codomain, len(h.Morphisms))
}

// HomSet computes the direct morphisms from domain to codomain, in insertion
// order. Returns ErrObjectNotFound when either object is unknown.
func (c *Category[T]) HomSet(domain, codomain string) (HomSet[T], error) {
	if !c.s.HasNode(domain) {
		return HomSet[T]{}, fmt.Errorf("category: HomSet: %q: %w", domain, ErrObjectNotFound)
	}
	if !c.s.HasNode(codomain) {
		return HomSet[T]{}, fmt.Errorf("category: HomSet: %q: %w", codomain, ErrObjectNotFound)
	}
	hs := HomSet[T]{Domain: domain, Codomain: codomain}
	for _, m := range c.s.Morphisms() {
		if m.Source == domain && m.Target == codomain {
			hs.Morphisms = append(hs.Morphisms, m)
		}
	}
	return hs, nil
}

// HasMorphism reports whether at least one direct morphism connects domain
// to codomain. Unknown objects report false.
func (c *Category[T]) HasMorphism(domain, codomain string) bool {
	hs, err := c.HomSet(domain, codomain)
	return err == nil && !hs.IsEmpty()
}

// InitialObject finds the object with exactly one direct morphism to every
// other object. Returns (nil, nil) when no object qualifies (a valid
// absence) and ErrMultipleInitialObjects when more than one does.
func (c *Category[T]) InitialObject() (*core.Node[T], error) {
	return c.findUnique(func(candidate, other string) int {
		hs, _ := c.HomSet(candidate, other)
		return hs.Size()
	}, ErrMultipleInitialObjects)
}

// TerminalObject is the dual of InitialObject: exactly one direct morphism
// from every other object. Returns (nil, nil) for absence and
// ErrMultipleTerminalObjects for ambiguity.
func (c *Category[T]) TerminalObject() (*core.Node[T], error) {
	return c.findUnique(func(candidate, other string) int {
		hs, _ := c.HomSet(other, candidate)
		return hs.Size()
	}, ErrMultipleTerminalObjects)
}

// findUnique scans objects in insertion order for those whose hom-set count
// against every other object is exactly one, enforcing uniqueness.
func (c *Category[T]) findUnique(count func(candidate, other string) int, ambiguous error) (*core.Node[T], error) {
	var found *core.Node[T]
	for _, candidate := range c.objects {
		qualifies := true
		for _, other := range c.objects {
			if other == candidate {
				continue
			}
			if count(candidate, other) != 1 {
				qualifies = false
				break
			}
		}
		if !qualifies {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("category: %q and %q both qualify: %w", found.ID, candidate, ambiguous)
		}
		n, _ := c.s.Node(candidate)
		found = n
	}
	return found, nil
}

// IsInitial reports whether id is the category's unique initial object.
func (c *Category[T]) IsInitial(id string) bool {
	n, err := c.InitialObject()
	return err == nil && n != nil && n.ID == id
}

// IsTerminal reports whether id is the category's unique terminal object.
func (c *Category[T]) IsTerminal(id string) bool {
	n, err := c.TerminalObject()
	return err == nil && n != nil && n.ID == id
}

// FindAllPaths delegates to the core path engine.
func (c *Category[T]) FindAllPaths(source, target string) ([]core.Path[T], error) {
	return c.s.FindAllPaths(source, target)
}

// IsCommutative checks path agreement under the category's equivalence
// policy (the sampler unless overridden at build time).
func (c *Category[T]) IsCommutative(source, target string) (bool, error) {
	return c.s.IsCommutative(source, target, c.eq)
}

// Dimension returns the length of the longest simple path between any two
// distinct objects. Quadratic in objects times path enumeration cost.
func (c *Category[T]) Dimension() int {
	maxLen := 0
	for _, src := range c.objects {
		for _, dst := range c.objects {
			if src == dst {
				continue
			}
			paths, err := c.s.FindAllPaths(src, dst)
			if err != nil {
				continue
			}
			for _, p := range paths {
				if p.Len() > maxLen {
					maxLen = p.Len()
				}
			}
		}
	}
	return maxLen
}
