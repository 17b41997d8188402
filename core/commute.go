// commute.go - equivalence policies and the commutativity query.
//
// Two distinct closures computing the same mathematical function never
// compare equal as Go function values, so transform equality must be an
// explicit policy. Two policies are provided: sample-based evaluation on
// probe payloads (recommended) and label-based comparison of the composed
// morphism descriptions. Callers pick one per structure; nothing in this
// package ever compares function values by reference.

package core

import (
	"reflect"
	"strings"
)

// Equivalence decides whether two paths between the same endpoints agree.
type Equivalence[T any] func(a, b Path[T]) bool

// Sampler is the sample-based equivalence policy: two transforms are
// considered equivalent when they map every probe to equal outputs.
//
// Equal compares outputs; when nil, reflect.DeepEqual is used. With no
// probes every pair of transforms is vacuously equivalent, so callers
// should supply at least one probe drawn from their payload domain.
type Sampler[T any] struct {
	// Probes are the payloads every transform pair is evaluated on.
	Probes []T

	// Equal compares two outputs; nil means reflect.DeepEqual.
	Equal func(a, b T) bool
}

// NewSampler builds a Sampler over the given probes with DeepEqual output
// comparison.
func NewSampler[T any](probes ...T) Sampler[T] {
	return Sampler[T]{Probes: probes}
}

// TransformsEqual reports whether f and g map every probe to equal outputs.
func (sp Sampler[T]) TransformsEqual(f, g Transform[T]) bool {
	eq := sp.Equal
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	for _, probe := range sp.Probes {
		if !eq(f(probe), g(probe)) {
			return false
		}
	}
	return true
}

// Equivalence adapts the sampler into a path equivalence.
func (sp Sampler[T]) Equivalence() Equivalence[T] {
	return func(a, b Path[T]) bool {
		return sp.TransformsEqual(a.Composed, b.Composed)
	}
}

// LabelEquivalence returns the label-based policy: two paths agree when
// their composed label sequences render identically. Useful when payloads
// carry no meaningful probe values.
func LabelEquivalence[T any]() Equivalence[T] {
	return func(a, b Path[T]) bool {
		return strings.Join(a.Labels, " ∘ ") == strings.Join(b.Labels, " ∘ ")
	}
}

// IsCommutative reports whether every simple path from source to target
// composes to an equivalent transform under eq. Zero or one path is
// trivially commutative. A "false" answer is valid data, not a fault;
// the only error case is an unknown endpoint (ErrNodeNotFound).
func (s *Structure[T]) IsCommutative(source, target string, eq Equivalence[T]) (bool, error) {
	paths, err := s.FindAllPaths(source, target)
	if err != nil {
		return false, err
	}
	return PathsCommute(paths, eq), nil
}

// PathsCommute reports whether all given paths are pairwise equivalent
// under eq. Trivially true for fewer than two paths.
func PathsCommute[T any](paths []Path[T], eq Equivalence[T]) bool {
	if len(paths) <= 1 {
		return true
	}
	// Equivalence is transitive under both provided policies, so comparing
	// everything against the first path suffices.
	first := paths[0]
	for _, p := range paths[1:] {
		if !eq(first, p) {
			return false
		}
	}
	return true
}
