// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/hogevo/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Groups, "families.orthoxml"},
		{project.Taxonomy, "taxonomy.tree"},
		{project.Trees, "trees.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

var taxTree = []byte("((Tarsius,Homo)Haplorrhini,Loris)Primates;\n")

func TestTaxonomy(t *testing.T) {
	name := "tmp-taxonomy-for-test.tree"
	defer os.Remove(name)
	if err := os.WriteFile(name, taxTree, 0644); err != nil {
		t.Fatalf("error when writing taxonomy: %v", err)
	}

	p := project.New()
	p.Add(project.Taxonomy, name)

	tax, err := p.Taxonomy()
	if err != nil {
		t.Fatalf("error when reading taxonomy: %v", err)
	}
	if n := tax.Taxon(tax.Root()); n != "Primates" {
		t.Errorf("root: got %q, want %q", n, "Primates")
	}
	if tax.Len() != 5 {
		t.Errorf("nodes: got %d, want %d", tax.Len(), 5)
	}
}

var treesTSV = []byte(`tree	node	parent	age	taxon
primates	0	-1	90000000
primates	1	0	0	Loris
primates	2	0	60000000
primates	3	2	0	Tarsius
primates	4	2	0	Homo
`)

func TestTaxonomyFromTrees(t *testing.T) {
	name := "tmp-trees-for-test.tab"
	defer os.Remove(name)
	if err := os.WriteFile(name, treesTSV, 0644); err != nil {
		t.Fatalf("error when writing trees: %v", err)
	}

	p := project.New()
	p.Add(project.Trees, name)

	tax, err := p.Taxonomy()
	if err != nil {
		t.Fatalf("error when reading taxonomy: %v", err)
	}
	if n := tax.Taxon(tax.Root()); n != "Loris/Tarsius/Homo" {
		t.Errorf("root: got %q, want %q", n, "Loris/Tarsius/Homo")
	}
	if id := tax.TaxNode("Tarsius/Homo"); id < 0 {
		t.Errorf("taxon %q: not in the taxonomy", "Tarsius/Homo")
	}
	if tax.Len() != 5 {
		t.Errorf("nodes: got %d, want %d", tax.Len(), 5)
	}

	c, err := p.Trees()
	if err != nil {
		t.Fatalf("error when reading trees: %v", err)
	}
	if ls := c.Names(); !reflect.DeepEqual(ls, []string{"primates"}) {
		t.Errorf("trees: got %v, want %v", ls, []string{"primates"})
	}
}

var groupsXML = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<orthoXML xmlns="http://orthoXML.org/2011/" version="0.3" origin="hogevo" originVersion="test">
  <species name="Loris" NCBITaxId="9461">
    <database name="db" version="1">
      <genes>
        <gene id="1" protId="LORIS1"/>
      </genes>
    </database>
  </species>
  <species name="Homo" NCBITaxId="9606">
    <database name="db" version="1">
      <genes>
        <gene id="2" protId="HOMO1"/>
      </genes>
    </database>
  </species>
  <groups>
    <orthologGroup id="x">
      <geneRef id="1"/>
      <geneRef id="2"/>
    </orthologGroup>
  </groups>
</orthoXML>
`)

func TestGroups(t *testing.T) {
	name := "tmp-groups-for-test.orthoxml"
	defer os.Remove(name)
	if err := os.WriteFile(name, groupsXML, 0644); err != nil {
		t.Fatalf("error when writing groups: %v", err)
	}

	p := project.New()
	p.Add(project.Groups, name)

	doc, err := p.Groups()
	if err != nil {
		t.Fatalf("error when reading groups: %v", err)
	}
	if len(doc.Species) != 2 {
		t.Errorf("species: got %d, want %d", len(doc.Species), 2)
	}
	if len(doc.Groups) != 1 {
		t.Errorf("groups: got %d, want %d", len(doc.Groups), 1)
	}
}

func TestUndefinedDatasets(t *testing.T) {
	p := project.New()
	p.SetName("empty-project")

	if _, err := p.Taxonomy(); err == nil {
		t.Errorf("taxonomy on empty project: expecting an error")
	}
	if _, err := p.Groups(); err == nil {
		t.Errorf("groups on empty project: expecting an error")
	}
	if _, err := p.Trees(); err == nil {
		t.Errorf("trees on empty project: expecting an error")
	}
}
