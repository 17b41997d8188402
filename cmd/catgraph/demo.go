package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/catty-project/catgraph/category"
	"github.com/catty-project/catgraph/core"
	"github.com/catty-project/catgraph/dag"
	"github.com/catty-project/catgraph/polytope"
)

// Morphism kinds used by the logic-lattice demo.
const (
	kindInterpretation = "interpretation"
	kindExtension      = "extension"
	kindEmbedding      = "embedding"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "walk a lattice of logical systems through all three specializations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// buildLogicCategory wires a small lattice of logical systems: positive
// propositional calculus at the bottom, modal logic at the top, with
// intuitionistic logic and Łukasiewicz logic as intermediate stops.
func buildLogicCategory() (*category.Category[string], error) {
	id := core.Identity[string]()
	b := category.NewBuilder[string]("logic-lattice")

	objects := []struct{ id, data string }{
		{"PPSC", "positive propositional calculus"},
		{"INT", "intuitionistic logic"},
		{"LL", "Lukasiewicz logic"},
		{"CPL", "classical propositional logic"},
		{"MODAL", "modal logic S4"},
	}
	for _, o := range objects {
		if err := b.AddObject(o.id, o.data); err != nil {
			return nil, err
		}
	}

	morphisms := []struct{ id, src, dst, label, kind string }{
		{"interp", "PPSC", "INT", "constructive interpretation", kindInterpretation},
		{"embed_ll", "PPSC", "LL", "many-valued embedding", kindEmbedding},
		{"direct", "PPSC", "CPL", "classical reading", kindInterpretation},
		{"ppsc_modal", "PPSC", "MODAL", "necessitated reading", kindInterpretation},
		{"extend", "INT", "CPL", "excluded middle", kindExtension},
		{"int_modal", "INT", "MODAL", "Goedel translation", kindEmbedding},
		{"extend_ll", "LL", "CPL", "two-valued collapse", kindExtension},
		{"ll_modal", "LL", "MODAL", "modal collapse", kindExtension},
		{"modalize", "CPL", "MODAL", "necessitation", kindExtension},
	}
	for _, m := range morphisms {
		if err := b.AddMorphism(m.id, m.src, m.dst, id, m.label, m.kind, ""); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func runDemo(out io.Writer) error {
	cat, err := buildLogicCategory()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "=== category %q ===\n", cat.Name())
	for _, obj := range cat.Objects() {
		fmt.Fprintf(out, "object %-5s  %s\n", obj.ID, obj.Data)
	}
	for _, kind := range []string{kindInterpretation, kindExtension, kindEmbedding} {
		ms := cat.MorphismsOfKind(kind)
		fmt.Fprintf(out, "%d %s morphism(s):", len(ms), kind)
		for _, m := range ms {
			fmt.Fprintf(out, " %s", m.ID)
		}
		fmt.Fprintln(out)
	}

	if initial, err := cat.InitialObject(); err != nil {
		return err
	} else if initial != nil {
		fmt.Fprintf(out, "initial object:  %s\n", initial.ID)
	}
	if terminal, err := cat.TerminalObject(); err != nil {
		return err
	} else if terminal != nil {
		fmt.Fprintf(out, "terminal object: %s\n", terminal.ID)
	}

	hom, err := cat.HomSet("PPSC", "CPL")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Hom(PPSC, CPL) has %d morphism(s)\n", len(hom.Morphisms))

	paths, err := cat.FindAllPaths("PPSC", "CPL")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d path(s) PPSC -> CPL:\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(out, "  %v\n", p.MorphismIDs)
	}
	commutes, err := cat.IsCommutative("PPSC", "CPL")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PPSC -> CPL commutes: %v\n\n", commutes)

	pb, err := polytope.FromCategory("logic-polytope", cat, 2, polytope.Arbitrary)
	if err != nil {
		return err
	}
	if err := pb.AddFace("base_triangle", 2, []string{"PPSC", "INT", "CPL"}, polytope.FaceFacet); err != nil {
		return err
	}
	if err := pb.AddFace("extension_triangle", 2, []string{"PPSC", "LL", "CPL"}, polytope.FaceFacet); err != nil {
		return err
	}
	if err := pb.AddFace("classical_edge", 1, []string{"CPL", "MODAL"}, polytope.FaceEdge); err != nil {
		return err
	}
	if err := pb.AddFaceConstraint("base_triangle", polytope.ScopeLocal); err != nil {
		return err
	}
	p, err := pb.Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "=== polytope %q (dimension %d) ===\n", p.Name(), p.Dimension())
	for _, f := range p.Faces() {
		fmt.Fprintf(out, "face %-18s dim %d  nodes %v\n", f.ID, f.Dimension, f.NodeIDs)
	}
	fmt.Fprintf(out, "boundary nodes: %v\n", p.BoundaryNodes())
	fmt.Fprintf(out, "interior nodes: %v\n", p.InteriorNodes())
	fmt.Fprintf(out, "constraint comm_base_triangle satisfied: %v\n\n",
		p.ConstraintSatisfied("comm_base_triangle"))

	db, err := dag.FromCategory("logic-dag", cat)
	if err != nil {
		return err
	}
	d, err := db.Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "=== dag %q ===\n", d.Name())
	fmt.Fprintf(out, "topological order: %v\n", d.TopologicalOrder())
	for _, id := range d.TopologicalOrder() {
		info, err := d.Info(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "node %-5s depth %d\n", id, info.Depth)
	}
	fmt.Fprintf(out, "sources: %v  sinks: %v\n", d.Sources(), d.Sinks())
	fmt.Fprintf(out, "%d source-to-sink path(s)\n", len(d.SourceToSinkPaths()))
	return nil
}
