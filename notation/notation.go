// Package notation parses a compact one-line diagram notation into core
// structures:
//
//	PPSC -interpret-> INT -extend-> CPL ; PPSC -direct-> CPL
//
// Chains are separated by ";"; each hop is "-label->" (or "-->" for an
// unlabeled hop). Nodes are created on first mention with their ID as
// payload; morphisms get the <src>_to_<dst> ID scheme and identity
// transforms, so the notation describes shape, not payload semantics;
// attach real transforms through the builders when they matter.
//
// Errors:
//
//	ErrParse - the expression does not match the grammar.
package notation

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/catty-project/catgraph/core"
)

// ErrParse indicates a malformed diagram expression.
var ErrParse = errors.New("notation: parse error")

// DiagramExpr is the parsed form of a diagram expression.
type DiagramExpr struct {
	Chains []*Chain `parser:"(@@ (\";\" @@)*)?"`
}

// Chain is one node followed by zero or more hops.
type Chain struct {
	Start string `parser:"@Ident"`
	Hops  []*Hop `parser:"@@*"`
}

// Hop is one labeled arrow and its destination node.
type Hop struct {
	Label string `parser:"\"-\" @Ident? \"-\" \">\""`
	End   string `parser:"@Ident"`
}

var parseDiagramExpr = participle.MustBuild[DiagramExpr]()

// Parse parses a diagram expression. Returns ErrParse on malformed input.
func Parse(src string) (*DiagramExpr, error) {
	expr, err := parseDiagramExpr.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("notation: %v: %w", err, ErrParse)
	}
	return expr, nil
}

// Apply adds the expression's nodes and morphisms to s. Nodes are created
// on first mention; a morphism repeated across chains surfaces
// core.ErrDuplicateMorphism.
func Apply(s *core.Structure[string], expr *DiagramExpr) error {
	ensure := func(id string) error {
		if s.HasNode(id) {
			return nil
		}
		return s.AddNode(id, id)
	}
	for _, chain := range expr.Chains {
		if err := ensure(chain.Start); err != nil {
			return err
		}
		from := chain.Start
		for _, hop := range chain.Hops {
			if err := ensure(hop.End); err != nil {
				return err
			}
			morphismID := from + "_to_" + hop.End
			label := hop.Label
			if label == "" {
				label = morphismID
			}
			if err := s.AddMorphism(morphismID, from, hop.End, core.Identity[string](), label); err != nil {
				return err
			}
			from = hop.End
		}
	}
	return nil
}

// Build parses src and materializes it as a fresh structure.
func Build(name, src string) (*core.Structure[string], error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	s := core.New[string](name)
	if err := Apply(s, expr); err != nil {
		return nil, err
	}
	return s, nil
}
