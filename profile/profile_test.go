// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package profile_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/profile"
	"github.com/js-arias/hogevo/taxonomy"
)

const simpleTree = "((((HUMAN,PANTR)Primates,(MOUSE,RATNO)Rodents)Euarchontoglires,CANFA)Mammalia,XENTR)Vertebrata;"

// A builder adds genomes to a taxonomy.
type builder struct {
	t     *taxonomy.Tree
	genes map[string]*genome.Gene
}

func newBuilder(t testing.TB, tree string) *builder {
	t.Helper()

	tax, err := taxonomy.Newick(strings.NewReader(tree))
	if err != nil {
		t.Fatalf("taxonomy: unexpected error: %v", err)
	}
	return &builder{
		t:     tax,
		genes: make(map[string]*genome.Gene),
	}
}

func (b *builder) extant(t testing.TB, name string, genes ...string) {
	t.Helper()

	e, err := genome.NewExtant(name, "")
	if err != nil {
		t.Fatalf("genome %q: unexpected error: %v", name, err)
	}
	for _, id := range genes {
		g, err := genome.NewGene(id)
		if err != nil {
			t.Fatalf("gene %q: unexpected error: %v", id, err)
		}
		if err := e.AddGene(g); err != nil {
			t.Fatalf("genome %q: when adding gene %q: %v", name, id, err)
		}
		b.genes[id] = g
	}
	b.attach(t, name, e)
}

func (b *builder) hog(t testing.TB, id string, children ...genome.AbstractGene) *genome.HOG {
	t.Helper()

	h := genome.NewHOG(id)
	for _, c := range children {
		if err := h.AddChild(c); err != nil {
			t.Fatalf("hog %q: when adding child %s: %v", id, c, err)
		}
	}
	return h
}

func (b *builder) ancestral(t testing.TB, name string, hogs ...*genome.HOG) {
	t.Helper()

	a := genome.NewAncestral()
	for _, h := range hogs {
		if err := a.AddGene(h); err != nil {
			t.Fatalf("genome %q: when adding group %s: %v", name, h, err)
		}
	}
	b.attach(t, name, a)
}

func (b *builder) attach(t testing.TB, name string, g genome.Genome) {
	t.Helper()

	id := b.t.TaxNode(name)
	if id < 0 {
		t.Fatalf("taxon %q: not in the taxonomy", name)
	}
	if err := b.t.Attach(id, g); err != nil {
		t.Fatalf("taxon %q: when attaching genome: %v", name, err)
	}
}

// NewTaxonomy builds a taxonomy
// in which every node has a genome.
//
// Family "1" is single copy in all genomes.
// Family "2.E" is born at Euarchontoglires
// and lost in RATNO.
// Family "3" has no group at Mammalia,
// is duplicated at Euarchontoglires,
// and HUMAN keeps a single copy.
func newTaxonomy(t testing.TB) *taxonomy.Tree {
	t.Helper()

	b := newBuilder(t, simpleTree)
	b.extant(t, "HUMAN", "1", "2", "3")
	b.extant(t, "PANTR", "11", "12", "13", "14")
	b.extant(t, "CANFA", "21", "22", "23")
	b.extant(t, "MOUSE", "31", "32", "33", "34")
	b.extant(t, "RATNO", "41", "43")
	b.extant(t, "XENTR", "51", "53")

	p1 := b.hog(t, "1.P", b.genes["1"], b.genes["11"])
	r1 := b.hog(t, "1.R", b.genes["31"], b.genes["41"])
	h1ME := b.hog(t, "1.M.E", p1, r1)
	h1M := b.hog(t, "1.M", b.genes["21"], h1ME)
	h1 := b.hog(t, "1", b.genes["51"], h1M)
	p2 := b.hog(t, "2.P", b.genes["2"], b.genes["12"])
	r2 := b.hog(t, "2.R", b.genes["32"])
	h2E := b.hog(t, "2.E", p2, r2)
	p3 := b.hog(t, "3.P.1", b.genes["3"], b.genes["13"])
	r3 := b.hog(t, "3.R.1", b.genes["33"])
	h3E1 := b.hog(t, "3.E.1", p3, r3)
	p4 := b.hog(t, "3.P.2", b.genes["14"])
	r4 := b.hog(t, "3.R.2", b.genes["34"])
	h3E2 := b.hog(t, "3.E.2", p4, r4)
	h3 := b.hog(t, "3", b.genes["53"], h3E1, h3E2)

	b.ancestral(t, "Vertebrata", h1, h3)
	b.ancestral(t, "Mammalia", h1M)
	b.ancestral(t, "Euarchontoglires", h1ME, h2E, h3E1, h3E2)
	b.ancestral(t, "Primates", p1, p2, p3, p4)
	b.ancestral(t, "Rodents", r1, r2, r3, r4)

	return b.t
}

func TestProfile(t *testing.T) {
	tax := newTaxonomy(t)
	p, err := profile.New(tax)
	if err != nil {
		t.Fatalf("profile.New: unexpected error: %v", err)
	}

	if ids := p.Nodes(); !slices.Equal(ids, tax.Nodes()) {
		t.Errorf("nodes: got %v, want %v", ids, tax.Nodes())
	}

	tests := map[string]profile.Events{
		"Vertebrata":       {Genes: 2, Root: true},
		"Mammalia":         {Genes: 1, Lost: 1, Single: 1},
		"Euarchontoglires": {Genes: 4, Gained: 3, Single: 1},
		"Primates":         {Genes: 4, Single: 4},
		"Rodents":          {Genes: 4, Single: 4},
		"HUMAN":            {Genes: 3, Lost: 1, Single: 3},
		"PANTR":            {Genes: 4, Single: 4},
		"MOUSE":            {Genes: 4, Single: 4},
		"RATNO":            {Genes: 2, Gained: 1, Lost: 3, Single: 1},
		"CANFA":            {Genes: 3, Gained: 2, Single: 1},
		"XENTR":            {Genes: 2, Single: 2},
	}
	for name, want := range tests {
		ev := p.Events(tax.TaxNode(name))
		if ev != want {
			t.Errorf("node %q: events %v, want %v", name, ev, want)
		}
	}
}

func TestProfileSummary(t *testing.T) {
	b := newBuilder(t, "((A,B)AB,C,D)R;")
	b.extant(t, "A", "a1", "a2")
	b.extant(t, "B", "b1")
	b.extant(t, "C", "c1")
	x1 := b.hog(t, "x.1", b.genes["a1"], b.genes["b1"])
	x2 := b.hog(t, "x.2", b.genes["a2"])
	x := b.hog(t, "x", b.genes["c1"], x1, x2)
	b.ancestral(t, "R", x)
	b.ancestral(t, "AB", x1, x2)

	p, err := profile.New(b.t)
	if err != nil {
		t.Fatalf("profile.New: unexpected error: %v", err)
	}

	// species D has no genome
	wantNodes := []int{
		b.t.TaxNode("R"),
		b.t.TaxNode("AB"),
		b.t.TaxNode("A"),
		b.t.TaxNode("B"),
		b.t.TaxNode("C"),
	}
	slices.Sort(wantNodes)
	if ids := p.Nodes(); !slices.Equal(ids, wantNodes) {
		t.Errorf("nodes: got %v, want %v", ids, wantNodes)
	}
	if ev := p.Events(b.t.TaxNode("D")); ev != (profile.Events{}) {
		t.Errorf("node %q: events %v, want empty counts", "D", ev)
	}
	if ev, want := p.Events(b.t.TaxNode("AB")), (profile.Events{Genes: 2, Duplicated: 1}); ev != want {
		t.Errorf("node %q: events %v, want %v", "AB", ev, want)
	}

	want := profile.Summary{
		Lost:       profile.Stats{Mean: 0.25, Q975: 1},
		Single:     profile.Stats{Mean: 1, Median: 1, Q975: 2},
		Duplicated: profile.Stats{Mean: 0.25, Q975: 1},
	}
	if s := p.Summary(); s != want {
		t.Errorf("summary: got %v, want %v", s, want)
	}
}

func TestProfileError(t *testing.T) {
	if _, err := profile.New(nil); err == nil {
		t.Errorf("profile without a taxonomy: expecting an error")
	}
}
