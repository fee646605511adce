// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package analysis_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/taxonomy"
)

const simpleTree = "((((HUMAN,PANTR)Primates,(MOUSE,RATNO)Rodents)Euarchontoglires,CANFA)Mammalia,XENTR)Vertebrata;"

const simpleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3" origin="hogevo tests" originVersion="0.1">
  <species name="HUMAN" NCBITaxId="9606">
    <database name="HUMANfake" version="0.1">
      <genes>
        <gene id="1" protId="HUMAN1" geneId="HUMANg1"/>
        <gene id="2" protId="HUMAN2" geneId="HUMANg2"/>
        <gene id="3" protId="HUMAN3" geneId="HUMANg3"/>
      </genes>
    </database>
  </species>
  <species name="PANTR" NCBITaxId="9598">
    <database name="PANTRfake" version="0.1">
      <genes>
        <gene id="11" protId="PANTR1" geneId="PANTRg1"/>
        <gene id="12" protId="PANTR2" geneId="PANTRg2"/>
        <gene id="13" protId="PANTR3" geneId="PANTRg3"/>
        <gene id="14" protId="PANTR4" geneId="PANTRg4"/>
      </genes>
    </database>
  </species>
  <species name="CANFA" NCBITaxId="9615">
    <database name="CANFAfake" version="0.1">
      <genes>
        <gene id="21" protId="CANFA1" geneId="CANFAg1"/>
        <gene id="22" protId="CANFA2" geneId="CANFAg2"/>
        <gene id="23" protId="CANFA3" geneId="CANFAg3"/>
      </genes>
    </database>
  </species>
  <species name="MOUSE" NCBITaxId="10090">
    <database name="MOUSEfake" version="0.1">
      <genes>
        <gene id="31" protId="MOUSE1" geneId="MOUSEg1"/>
        <gene id="32" protId="MOUSE2" geneId="MOUSEg2"/>
        <gene id="33" protId="MOUSE3" geneId="MOUSEg3"/>
        <gene id="34" protId="MOUSE4" geneId="MOUSEg4"/>
      </genes>
    </database>
  </species>
  <species name="RATNO" NCBITaxId="10116">
    <database name="RATNOfake" version="0.1">
      <genes>
        <gene id="41" protId="RATNO1" geneId="RATNOg1"/>
        <gene id="43" protId="RATNO3" geneId="RATNOg3"/>
      </genes>
    </database>
  </species>
  <species name="XENTR" NCBITaxId="8364">
    <database name="XENTRfake" version="0.1">
      <genes>
        <gene id="51" protId="XENTR1" geneId="XENTRg1"/>
        <gene id="53" protId="XENTR3" geneId="XENTRg3"/>
      </genes>
    </database>
  </species>
  <groups>
    <orthologGroup id="1">
      <property name="TaxRange" value="Vertebrata"/>
      <geneRef id="51"/>
      <orthologGroup id="1.M">
        <property name="TaxRange" value="Mammalia"/>
        <geneRef id="21"/>
        <orthologGroup id="1.M.E">
          <property name="TaxRange" value="Euarchontoglires"/>
          <orthologGroup>
            <property name="TaxRange" value="Primates"/>
            <geneRef id="1"/>
            <geneRef id="11"/>
          </orthologGroup>
          <orthologGroup>
            <property name="TaxRange" value="Rodents"/>
            <geneRef id="31"/>
            <geneRef id="41"/>
          </orthologGroup>
        </orthologGroup>
      </orthologGroup>
    </orthologGroup>
    <orthologGroup id="2.E">
      <property name="TaxRange" value="Euarchontoglires"/>
      <orthologGroup>
        <property name="TaxRange" value="Primates"/>
        <geneRef id="2"/>
        <geneRef id="12"/>
      </orthologGroup>
      <orthologGroup>
        <property name="TaxRange" value="Rodents"/>
        <geneRef id="32"/>
      </orthologGroup>
    </orthologGroup>
    <orthologGroup id="3">
      <property name="TaxRange" value="Vertebrata"/>
      <geneRef id="53"/>
      <paralogGroup>
        <orthologGroup id="3.E.1">
          <property name="TaxRange" value="Euarchontoglires"/>
          <orthologGroup>
            <property name="TaxRange" value="Primates"/>
            <geneRef id="3"/>
            <geneRef id="13"/>
          </orthologGroup>
          <orthologGroup>
            <property name="TaxRange" value="Rodents"/>
            <geneRef id="33"/>
          </orthologGroup>
        </orthologGroup>
        <orthologGroup id="3.E.2">
          <property name="TaxRange" value="Euarchontoglires"/>
          <orthologGroup>
            <property name="TaxRange" value="Primates"/>
            <geneRef id="14"/>
          </orthologGroup>
          <orthologGroup>
            <property name="TaxRange" value="Rodents"/>
            <geneRef id="34"/>
          </orthologGroup>
        </orthologGroup>
      </paralogGroup>
    </orthologGroup>
  </groups>
</orthoXML>
`

func newAnalysis(t testing.TB) *analysis.Analysis {
	t.Helper()

	tax, err := taxonomy.Newick(strings.NewReader(simpleTree))
	if err != nil {
		t.Fatalf("taxonomy: unexpected error: %v", err)
	}
	a, err := analysis.Read(tax, strings.NewReader(simpleDoc))
	if err != nil {
		t.Fatalf("analysis.Read: unexpected error: %v", err)
	}
	return a
}

func TestAnalysis(t *testing.T) {
	a := newAnalysis(t)

	species := map[string]int{
		"HUMAN": 3,
		"PANTR": 4,
		"CANFA": 3,
		"MOUSE": 4,
		"RATNO": 2,
		"XENTR": 2,
	}
	for sp, n := range species {
		e := a.Extant(sp)
		if e == nil {
			t.Fatalf("species %q: not in the analysis", sp)
		}
		if e.Len() != n {
			t.Errorf("species %q: %d genes, want %d", sp, e.Len(), n)
		}
	}
	if e := a.Extant("LOXAF"); e != nil {
		t.Errorf("species LOXAF: got %v, want nil", e)
	}

	g := a.Gene("31")
	if g == nil {
		t.Fatalf("gene %q: not in the analysis", "31")
	}
	if n := g.Genome().Name(); n != "MOUSE" {
		t.Errorf("gene %q: genome %q, want %q", g.ID(), n, "MOUSE")
	}
	if p := g.ProtID(); p != "MOUSE1" {
		t.Errorf("gene %q: protein ID %q, want %q", g.ID(), p, "MOUSE1")
	}
	if gp := a.GeneByProt("MOUSE1"); gp != g {
		t.Errorf("gene by protein ID: got %v, want %v", gp, g)
	}
	if gn := a.Gene("99"); gn != nil {
		t.Errorf("gene %q: got %v, want nil", "99", gn)
	}

	top := a.TopGroups()
	var topIDs []string
	for _, h := range top {
		topIDs = append(topIDs, h.ID())
	}
	wantTop := []string{"1", "2.E", "3"}
	if !slices.Equal(topIDs, wantTop) {
		t.Fatalf("top groups: got %v, want %v", topIDs, wantTop)
	}

	// group hierarchy
	h1 := top[0]
	ch := h1.Children()
	if len(ch) != 2 {
		t.Fatalf("group %q: %d children, want %d", h1.ID(), len(ch), 2)
	}
	if g, ok := ch[0].(*genome.Gene); !ok || g.ID() != "51" {
		t.Errorf("group %q: first child: got %v, want Gene(51)", h1.ID(), ch[0])
	}
	if h, ok := ch[1].(*genome.HOG); !ok || h.ID() != "1.M" {
		t.Errorf("group %q: second child: got %v, want HOG(1.M)", h1.ID(), ch[1])
	}
	if tr := h1.TaxonRanges(); !slices.Equal(tr, []string{"Vertebrata"}) {
		t.Errorf("group %q: tax ranges: got %v, want [Vertebrata]", h1.ID(), tr)
	}

	// members of a paralogous group
	// are direct children of the enclosing group
	h3 := top[2]
	var chIDs []string
	for _, c := range h3.Children() {
		chIDs = append(chIDs, c.ID())
	}
	if want := []string{"53", "3.E.1", "3.E.2"}; !slices.Equal(chIDs, want) {
		t.Errorf("group %q: children: got %v, want %v", h3.ID(), chIDs, want)
	}

	// ancestral genomes
	vert := a.Ancestral("Vertebrata")
	if vert == nil {
		t.Fatalf("genome %q: not in the analysis", "Vertebrata")
	}
	if !slices.Equal(groupIDs(vert), []string{"1", "3"}) {
		t.Errorf("genome %q: groups: got %v, want [1 3]", vert.Name(), groupIDs(vert))
	}
	euarch := a.Ancestral("Euarchontoglires")
	if euarch == nil {
		t.Fatalf("genome %q: not in the analysis", "Euarchontoglires")
	}
	if want := []string{"1.M.E", "2.E", "3.E.1", "3.E.2"}; !slices.Equal(groupIDs(euarch), want) {
		t.Errorf("genome %q: groups: got %v, want %v", euarch.Name(), groupIDs(euarch), want)
	}
	if ag := a.Ancestral("HUMAN"); ag != nil {
		t.Errorf("genome HUMAN: got %v, want nil", ag)
	}

	// unnamed genomes are named after their nodes
	prim := a.Ancestral("Primates")
	if prim == nil {
		t.Fatalf("genome %q: not in the analysis", "Primates")
	}
	if prim.Len() != 4 {
		t.Errorf("genome %q: %d groups, want %d", prim.Name(), prim.Len(), 4)
	}
	if s := prim.Groups()[0].String(); s != "HOG(Primates)" {
		t.Errorf("unnamed group: got %q, want %q", s, "HOG(Primates)")
	}

	// gene clustering at an ancestral genome
	cl := euarch.Clustering()
	h2E := euarch.Groups()[1]
	var clIDs []string
	for _, g := range cl[h2E] {
		clIDs = append(clIDs, g.ID())
	}
	if want := []string{"2", "12", "32"}; !slices.Equal(clIDs, want) {
		t.Errorf("clustering of %s: got %v, want %v", h2E, clIDs, want)
	}

	mrca, err := a.MRCA("HUMAN", "MOUSE")
	if err != nil {
		t.Fatalf("MRCA: unexpected error: %v", err)
	}
	if mrca != euarch {
		t.Errorf("MRCA: got %q, want %q", mrca.Name(), euarch.Name())
	}

	var names []string
	for _, g := range a.Genomes() {
		names = append(names, g.Name())
	}
	wantNames := []string{
		"CANFA", "HUMAN", "MOUSE", "PANTR", "RATNO", "XENTR",
		"Vertebrata", "Mammalia", "Euarchontoglires", "Primates", "Rodents",
	}
	if !slices.Equal(names, wantNames) {
		t.Errorf("genomes: got %v, want %v", names, wantNames)
	}
}

func TestAnalysisCompare(t *testing.T) {
	a := newAnalysis(t)

	m, err := a.Compare("HUMAN", "Vertebrata")
	if err != nil {
		t.Fatalf("Compare: unexpected error: %v", err)
	}
	var gained []string
	for _, g := range m.Gained() {
		gained = append(gained, g.ID())
	}
	if want := []string{"2"}; !slices.Equal(gained, want) {
		t.Errorf("gained: got %v, want %v", gained, want)
	}
	if top := m.Top(a.Gene("1")); top == nil || top.ID() != "1" {
		t.Errorf("top of gene 1: got %v, want HOG(1)", top)
	}
	if top := m.Top(a.Gene("2")); top != nil {
		t.Errorf("top of gene 2: got %v, want nil", top)
	}
	if top := m.Top(a.Gene("3")); top == nil || top.ID() != "3" {
		t.Errorf("top of gene 3: got %v, want HOG(3)", top)
	}

	v, err := a.Vertical("Euarchontoglires", "HUMAN")
	if err != nil {
		t.Fatalf("Vertical: unexpected error: %v", err)
	}
	var lost []string
	for _, h := range v.Lost() {
		lost = append(lost, h.ID())
	}
	if want := []string{"3.E.2"}; !slices.Equal(lost, want) {
		t.Errorf("lost: got %v, want %v", lost, want)
	}

	l, err := a.Lateral("Euarchontoglires", "HUMAN", "RATNO")
	if err != nil {
		t.Fatalf("Lateral: unexpected error: %v", err)
	}
	wantLost := map[string][]string{
		"2.E":   {"RATNO"},
		"3.E.1": {"RATNO"},
		"3.E.2": {"HUMAN", "RATNO"},
	}
	lostBy := make(map[string][]string)
	for h, gs := range l.Lost() {
		var names []string
		for _, g := range gs {
			names = append(names, g.Name())
		}
		lostBy[h.ID()] = names
	}
	if len(lostBy) != len(wantLost) {
		t.Errorf("lateral lost: got %v, want %v", lostBy, wantLost)
	}
	for id, want := range wantLost {
		if !slices.Equal(lostBy[id], want) {
			t.Errorf("lateral lost %q: got %v, want %v", id, lostBy[id], want)
		}
	}
}

func TestAnalysisErrors(t *testing.T) {
	a := newAnalysis(t)

	if _, err := a.Compare("HUMAN", "LOXAF"); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("unknown genome: got error %v, want %v", err, genome.ErrInvalidArgument)
	}
	if _, err := a.Compare("HUMAN", "PANTR"); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("sibling genomes: got error %v, want %v", err, genome.ErrInvalidArgument)
	}
	if _, err := a.Lateral("Euarchontoglires", "HUMAN"); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("single descendant: got error %v, want %v", err, genome.ErrInvalidArgument)
	}
	if _, err := a.MRCA("HUMAN"); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("single species: got error %v, want %v", err, genome.ErrInvalidArgument)
	}
	if _, err := a.MRCA("HUMAN", "LOXAF"); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("unknown species: got error %v, want %v", err, genome.ErrInvalidArgument)
	}

	tax, err := taxonomy.Newick(strings.NewReader(simpleTree))
	if err != nil {
		t.Fatalf("taxonomy: unexpected error: %v", err)
	}
	if _, err := analysis.Read(nil, strings.NewReader(simpleDoc)); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("nil taxonomy: got error %v, want %v", err, genome.ErrInvalidArgument)
	}
	if _, err := analysis.New(tax, nil); !errors.Is(err, genome.ErrInvalidArgument) {
		t.Errorf("nil document: got error %v, want %v", err, genome.ErrInvalidArgument)
	}

	docs := map[string]struct {
		doc  string
		want error
	}{
		"species not in the taxonomy": {
			doc: `<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3">
  <species name="LOXAF" NCBITaxId="9785">
    <database name="x" version="0"><genes><gene id="61" protId="LOXAF1"/></genes></database>
  </species>
  <groups><orthologGroup id="g"><geneRef id="61"/></orthologGroup></groups>
</orthoXML>`,
			want: genome.ErrInvalidArgument,
		},
		"species at an internal node": {
			doc: `<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3">
  <species name="Primates" NCBITaxId="9443">
    <database name="x" version="0"><genes><gene id="61" protId="PRIM1"/></genes></database>
  </species>
  <groups><orthologGroup id="g"><geneRef id="61"/></orthologGroup></groups>
</orthoXML>`,
			want: genome.ErrConceptViolation,
		},
		"unknown taxonomic level": {
			doc: `<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3">
  <species name="HUMAN" NCBITaxId="9606">
    <database name="x" version="0"><genes><gene id="61" protId="HUMAN1"/></genes></database>
  </species>
  <groups>
    <orthologGroup id="g">
      <property name="TaxRange" value="Afrotheria"/>
      <geneRef id="61"/>
    </orthologGroup>
  </groups>
</orthoXML>`,
			want: genome.ErrInvalidArgument,
		},
		"level at a terminal": {
			doc: `<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3">
  <species name="HUMAN" NCBITaxId="9606">
    <database name="x" version="0"><genes><gene id="61" protId="HUMAN1"/></genes></database>
  </species>
  <groups>
    <orthologGroup id="g">
      <property name="TaxRange" value="HUMAN"/>
      <geneRef id="61"/>
    </orthologGroup>
  </groups>
</orthoXML>`,
			want: genome.ErrConceptViolation,
		},
	}
	for name, test := range docs {
		tax, err := taxonomy.Newick(strings.NewReader(simpleTree))
		if err != nil {
			t.Fatalf("%s: taxonomy: unexpected error: %v", name, err)
		}
		if _, err := analysis.Read(tax, strings.NewReader(test.doc)); !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v, want %v", name, err, test.want)
		}
	}
}

func TestAnalysisSkips(t *testing.T) {
	tax, err := taxonomy.Newick(strings.NewReader("((A,B)AB,C)R;"))
	if err != nil {
		t.Fatalf("taxonomy: unexpected error: %v", err)
	}

	// group "y" references an unknown gene
	// and must be discarded;
	// group "z" does not have an explicit level
	// and must be placed at the common ancestor
	// of its members
	doc := `<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3">
  <species name="A" NCBITaxId="1">
    <database name="x" version="0">
      <genes>
        <gene id="1" protId="A1"/>
        <gene id="10" protId="A10"/>
      </genes>
    </database>
  </species>
  <species name="B" NCBITaxId="2">
    <database name="x" version="0">
      <genes><gene id="2" protId="B2"/></genes>
    </database>
  </species>
  <groups>
    <orthologGroup id="x">
      <property name="TaxRange" value="AB"/>
      <geneRef id="1"/>
      <geneRef id="99"/>
    </orthologGroup>
    <orthologGroup id="y">
      <geneRef id="99"/>
    </orthologGroup>
    <orthologGroup id="z">
      <geneRef id="10"/>
      <geneRef id="2"/>
    </orthologGroup>
  </groups>
</orthoXML>`

	a, err := analysis.Read(tax, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("analysis.Read: unexpected error: %v", err)
	}

	var topIDs []string
	for _, h := range a.TopGroups() {
		topIDs = append(topIDs, h.ID())
	}
	if want := []string{"x", "z"}; !slices.Equal(topIDs, want) {
		t.Errorf("top groups: got %v, want %v", topIDs, want)
	}

	ab := a.Ancestral("AB")
	if ab == nil {
		t.Fatalf("genome %q: not in the analysis", "AB")
	}
	if want := []string{"x", "z"}; !slices.Equal(groupIDs(ab), want) {
		t.Errorf("genome %q: groups: got %v, want %v", ab.Name(), groupIDs(ab), want)
	}

	// the unknown reference is not a member
	x := ab.Groups()[0]
	if ch := x.Children(); len(ch) != 1 {
		t.Errorf("group %q: %d children, want %d", x.ID(), len(ch), 1)
	}
}

func groupIDs(a *genome.Ancestral) []string {
	var ids []string
	for _, h := range a.Groups() {
		ids = append(ids, h.ID())
	}
	return ids
}
