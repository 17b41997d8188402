// Package category implements the finite-category specialization of the
// core categorical structure: objects with auto-generated identity
// morphisms, hom-set queries, unique initial/terminal object detection, and
// construction-time validation of the identity and associativity laws.
//
// A Category is produced by a Builder and immutable afterwards. Law
// validation runs under a sample-based equivalence policy (core.Sampler);
// when no probes are supplied the object payloads themselves are used.
// Associativity is checked over composable triples only; the residual cost
// is still cubic in the morphism count on dense categories.
//
// Errors:
//
//	ErrIdentityLawViolated     - some morphism composed with an identity changes.
//	ErrAssociativityViolated   - some composable triple fails (f∘g)∘h ≡ f∘(g∘h).
//	ErrMultipleInitialObjects  - more than one object qualifies as initial.
//	ErrMultipleTerminalObjects - more than one object qualifies as terminal.
//	ErrObjectNotFound          - query referenced an unknown object.
package category

import (
	"errors"

	"github.com/catty-project/catgraph/core"
)

// Sentinel errors for finite-category construction and queries.
var (
	// ErrIdentityLawViolated indicates a user-supplied identity morphism that
	// does not act as an identity under the sampler.
	ErrIdentityLawViolated = errors.New("category: identity law violated")

	// ErrAssociativityViolated indicates a composable triple whose two
	// groupings disagree on a probe.
	ErrAssociativityViolated = errors.New("category: associativity violated")

	// ErrMultipleInitialObjects indicates the initial object is ambiguous.
	// Zero candidates is a valid absence, reported as a nil object.
	ErrMultipleInitialObjects = errors.New("category: multiple initial objects")

	// ErrMultipleTerminalObjects indicates the terminal object is ambiguous.
	ErrMultipleTerminalObjects = errors.New("category: multiple terminal objects")

	// ErrObjectNotFound indicates a query referenced an unknown object.
	ErrObjectNotFound = errors.New("category: object not found")
)

// KindIdentity is the morphism kind assigned to synthesized identities.
const KindIdentity = "identity"

// Info is the category-level metadata attached to each morphism.
type Info struct {
	// Kind classifies the morphism (extension, interpretation, identity, …).
	Kind string

	// Description is free-form documentation text.
	Description string
}

// Option configures a Builder.
type Option[T any] func(*options[T])

// options resolves Builder configuration.
type options[T any] struct {
	sampler    core.Sampler[T]
	hasSampler bool
	eq         core.Equivalence[T]
}

// WithSampler sets the sample-based policy used for law validation and,
// unless overridden by WithEquivalence, for commutativity queries.
func WithSampler[T any](sp core.Sampler[T]) Option[T] {
	return func(o *options[T]) {
		o.sampler = sp
		o.hasSampler = true
	}
}

// WithEquivalence overrides the path equivalence used by IsCommutative.
func WithEquivalence[T any](eq core.Equivalence[T]) Option[T] {
	return func(o *options[T]) { o.eq = eq }
}

// Category is a validated finite category. All mutation happens in the
// Builder; a built Category is safe for concurrent readers.
type Category[T any] struct {
	s       *core.Structure[T]
	info    map[string]Info
	objects []string // object IDs in insertion order
	sampler core.Sampler[T]
	eq      core.Equivalence[T]
}
