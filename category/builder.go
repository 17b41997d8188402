// builder.go - incremental construction and build-time law validation.
//
// Build order: synthesize missing identities, resolve the probe set, then
// check identity laws and associativity. Any violation aborts the build;
// there is no partial category to fall back to.

package category

import (
	"fmt"

	"github.com/catty-project/catgraph/core"
)

// Builder assembles a Category. Methods validate eagerly and return core
// sentinel errors; Build performs the category-law checks. A Builder is
// single-threaded and one-shot.
type Builder[T any] struct {
	s       *core.Structure[T]
	info    map[string]Info
	objects []string
	opts    options[T]
}

// NewBuilder creates an empty category builder with the given name.
func NewBuilder[T any](name string, opts ...Option[T]) *Builder[T] {
	o := options[T]{}
	for _, fn := range opts {
		fn(&o)
	}
	return &Builder[T]{
		s:    core.New[T](name),
		info: make(map[string]Info),
		opts: o,
	}
}

// AddObject registers an object with its payload.
// Returns core.ErrDuplicateNode / core.ErrEmptyNodeID on invalid IDs.
func (b *Builder[T]) AddObject(id string, data T) error {
	if err := b.s.AddNode(id, data); err != nil {
		return err
	}
	b.objects = append(b.objects, id)
	return nil
}

// AddMorphism registers a typed morphism between two existing objects.
// Returns core.ErrNodeNotFound / core.ErrDuplicateMorphism / core.ErrNilTransform.
func (b *Builder[T]) AddMorphism(id, domain, codomain string, tf core.Transform[T], label, kind, description string) error {
	if err := b.s.AddMorphism(id, domain, codomain, tf, label); err != nil {
		return err
	}
	b.info[id] = Info{Kind: kind, Description: description}
	return nil
}

// Build synthesizes missing identity morphisms, validates the category laws
// and returns the finished Category. Law violations are fatal:
// ErrIdentityLawViolated or ErrAssociativityViolated.
func (b *Builder[T]) Build() (*Category[T], error) {
	// 1. Synthesize an identity for every object that lacks one.
	//    IDs and labels follow the id_<obj> / identity_<obj> scheme.
	for _, obj := range b.objects {
		identityID := identityFor(obj)
		if _, exists := b.s.Morphism(identityID); exists {
			continue
		}
		if err := b.s.AddMorphism(identityID, obj, obj, core.Identity[T](), "identity_"+obj); err != nil {
			return nil, fmt.Errorf("category: Build: synthesize %s: %w", identityID, err)
		}
		b.info[identityID] = Info{Kind: KindIdentity, Description: "Identity morphism for " + obj}
	}

	// 2. Resolve the sampler: default probes are the object payloads.
	sp := b.opts.sampler
	if !b.opts.hasSampler {
		probes := make([]T, 0, len(b.objects))
		for _, obj := range b.objects {
			n, _ := b.s.Node(obj)
			probes = append(probes, n.Data)
		}
		sp = core.NewSampler(probes...)
	}

	// 3. Identity laws: id_B ∘ f ≡ f and f ∘ id_A ≡ f for every morphism.
	if err := validateIdentityLaws(b.s, sp); err != nil {
		return nil, err
	}

	// 4. Associativity over composable triples only.
	if err := validateAssociativity(b.s, sp); err != nil {
		return nil, err
	}

	eq := b.opts.eq
	if eq == nil {
		eq = sp.Equivalence()
	}

	return &Category[T]{
		s:       b.s,
		info:    b.info,
		objects: b.objects,
		sampler: sp,
		eq:      eq,
	}, nil
}

// identityFor returns the reserved identity morphism ID of an object.
func identityFor(objectID string) string { return "id_" + objectID }

// validateIdentityLaws checks that the identity at each endpoint leaves
// every morphism unchanged under the sampler. Catches user-supplied id_<obj>
// morphisms whose transform is not actually an identity.
func validateIdentityLaws[T any](s *core.Structure[T], sp core.Sampler[T]) error {
	for _, m := range s.Morphisms() {
		left, _ := s.Morphism(identityFor(m.Target))
		right, _ := s.Morphism(identityFor(m.Source))
		if left != nil && !sp.TransformsEqual(core.Compose(m.Transform, left.Transform), m.Transform) {
			return fmt.Errorf("category: Build: %s ∘ %s ≠ %s: %w", left.ID, m.ID, m.ID, ErrIdentityLawViolated)
		}
		if right != nil && !sp.TransformsEqual(core.Compose(right.Transform, m.Transform), m.Transform) {
			return fmt.Errorf("category: Build: %s ∘ %s ≠ %s: %w", m.ID, right.ID, m.ID, ErrIdentityLawViolated)
		}
	}
	return nil
}

// validateAssociativity checks (f∘g)∘h ≡ f∘(g∘h) on the probes for every
// composable triple h: A→B, g: B→C, f: C→D. Cubic in the morphism count in
// the worst case; the composability filter keeps realistic categories cheap.
func validateAssociativity[T any](s *core.Structure[T], sp core.Sampler[T]) error {
	morphisms := s.Morphisms()
	for _, h := range morphisms {
		for _, g := range morphisms {
			if h.Target != g.Source {
				continue
			}
			hg := core.Compose(h.Transform, g.Transform)
			for _, f := range morphisms {
				if g.Target != f.Source {
					continue
				}
				left := core.Compose(hg, f.Transform)
				right := core.Compose(h.Transform, core.Compose(g.Transform, f.Transform))
				if !sp.TransformsEqual(left, right) {
					return fmt.Errorf("category: Build: triple (%s, %s, %s): %w",
						h.ID, g.ID, f.ID, ErrAssociativityViolated)
				}
			}
		}
	}
	return nil
}
