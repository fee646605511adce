// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package analysis binds a taxonomy
// and the gene families of an orthoXML document
// into a single analysis,
// the entry point to study the evolution
// of the gene families
// across the taxonomy.
//
// In an analysis,
// each species of the document
// becomes an extant genome
// attached to a terminal of the taxonomy,
// and each hierarchical orthologous group
// is assigned to the ancestral genome
// of its taxonomic level.
package analysis

import (
	"fmt"
	"io"
	"slices"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/hogmap"
	"github.com/js-arias/hogevo/logger"
	"github.com/js-arias/hogevo/orthoxml"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
	"go.uber.org/zap"
)

// An Analysis is a collection of genomes
// placed on the nodes of a taxonomy.
type Analysis struct {
	t      *taxonomy.Tree
	extant map[string]*genome.Extant
	genes  map[string]*genome.Gene
	prots  map[string]*genome.Gene
	top    []*genome.HOG
}

// New creates a new analysis
// from a taxonomy
// and an orthoXML document.
// All the species of the document
// must be terminals of the taxonomy,
// and all the taxonomic levels of the groups
// must be internal nodes of the taxonomy.
func New(t *taxonomy.Tree, doc *orthoxml.Document) (*Analysis, error) {
	if t == nil {
		return nil, fmt.Errorf("analysis: expecting a taxonomy: %w", genome.ErrInvalidArgument)
	}
	if doc == nil {
		return nil, fmt.Errorf("analysis: expecting an orthoXML document: %w", genome.ErrInvalidArgument)
	}

	a := &Analysis{
		t:      t,
		extant: make(map[string]*genome.Extant, len(doc.Species)),
		genes:  make(map[string]*genome.Gene),
		prots:  make(map[string]*genome.Gene),
	}
	for _, sp := range doc.Species {
		if err := a.addSpecies(sp); err != nil {
			return nil, err
		}
	}
	for _, og := range doc.Groups {
		h, _, err := a.buildHOG(og)
		if err != nil {
			return nil, err
		}
		if h == nil {
			logger.Warn("analysis: skipping group without valid members", zap.String("group", og.ID))
			continue
		}
		a.top = append(a.top, h)
	}

	logger.Info("analysis: ready",
		zap.Int("species", len(a.extant)),
		zap.Int("genes", len(a.genes)),
		zap.Int("groups", len(a.top)),
	)
	return a, nil
}

// Read reads an orthoXML document from r
// and builds an analysis on the taxonomy t.
func Read(t *taxonomy.Tree, r io.Reader) (*Analysis, error) {
	doc, err := orthoxml.Read(r)
	if err != nil {
		return nil, err
	}
	return New(t, doc)
}

// ReadProject builds an analysis
// from the taxonomy and the gene families
// defined in a project.
func ReadProject(p *project.Project) (*Analysis, error) {
	if p == nil {
		return nil, fmt.Errorf("analysis: expecting a project: %w", genome.ErrInvalidArgument)
	}
	t, err := p.Taxonomy()
	if err != nil {
		return nil, err
	}
	doc, err := p.Groups()
	if err != nil {
		return nil, err
	}
	return New(t, doc)
}

// AddSpecies creates the extant genome of a species
// and attaches it to its terminal in the taxonomy.
func (a *Analysis) addSpecies(sp orthoxml.Species) error {
	id := a.t.TaxNode(sp.Name)
	if id < 0 {
		return fmt.Errorf("analysis: species %q: not in the taxonomy: %w", sp.Name, genome.ErrInvalidArgument)
	}
	if !a.t.IsTerm(id) {
		return fmt.Errorf("analysis: species %q: not a terminal of the taxonomy: %w", sp.Name, genome.ErrConceptViolation)
	}
	if _, dup := a.extant[sp.Name]; dup {
		return fmt.Errorf("analysis: species %q: repeated species: %w", sp.Name, genome.ErrInvalidArgument)
	}

	e, err := genome.NewExtant(sp.Name, sp.TaxID)
	if err != nil {
		return fmt.Errorf("analysis: species %q: %v", sp.Name, err)
	}
	for _, db := range sp.Databases {
		for _, xg := range db.Genes {
			if _, dup := a.genes[xg.ID]; dup {
				return fmt.Errorf("analysis: species %q: repeated gene ID %q: %w", sp.Name, xg.ID, genome.ErrInvalidArgument)
			}
			g, err := genome.NewGene(xg.ID)
			if err != nil {
				return fmt.Errorf("analysis: species %q: %v", sp.Name, err)
			}
			g.SetProtID(xg.ProtID)
			g.SetGeneID(xg.GeneID)
			if err := e.AddGene(g); err != nil {
				return fmt.Errorf("analysis: species %q: %v", sp.Name, err)
			}
			a.genes[xg.ID] = g
			if xg.ProtID != "" {
				a.prots[xg.ProtID] = g
			}
		}
	}
	if err := a.t.Attach(id, e); err != nil {
		return fmt.Errorf("analysis: species %q: %v", sp.Name, err)
	}
	a.extant[sp.Name] = e
	return nil
}

// BuildHOG builds the hierarchical orthologous group
// defined by an orthoXML group,
// as well as all of its nested groups,
// and adds each group to the ancestral genome
// of its taxonomic level.
// A group without valid members is discarded
// and returned as nil.
func (a *Analysis) buildHOG(og *orthoxml.Group) (*genome.HOG, int, error) {
	members, err := a.addMembers(nil, og)
	if err != nil {
		return nil, -1, err
	}
	if len(members) == 0 {
		return nil, -1, nil
	}

	level := -1
	if tr := og.TaxRange(); tr != "" {
		level = a.t.TaxNode(tr)
		if level < 0 {
			return nil, -1, fmt.Errorf("analysis: group %q: unknown taxonomic level %q: %w", og.ID, tr, genome.ErrInvalidArgument)
		}
	} else {
		// without an explicit level,
		// use the most recent common ancestor
		// of the members
		ids := make([]int, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.Genome().Taxon())
		}
		level, err = a.t.MRCA(ids...)
		if err != nil {
			return nil, -1, fmt.Errorf("analysis: group %q: %v", og.ID, err)
		}
	}
	if a.t.IsTerm(level) {
		return nil, -1, fmt.Errorf("analysis: group %q: level %q is a terminal: %w", og.ID, a.t.Taxon(level), genome.ErrConceptViolation)
	}

	h := genome.NewHOG(og.ID)
	for _, m := range members {
		if err := h.AddChild(m); err != nil {
			return nil, -1, fmt.Errorf("analysis: group %q: %v", og.ID, err)
		}
	}
	if err := h.SetTaxonRange(a.t.Taxon(level)); err != nil {
		return nil, -1, fmt.Errorf("analysis: group %q: %v", og.ID, err)
	}

	ag, err := a.ancestralAt(level)
	if err != nil {
		return nil, -1, fmt.Errorf("analysis: group %q: %v", og.ID, err)
	}
	if err := ag.AddGene(h); err != nil {
		return nil, -1, fmt.Errorf("analysis: group %q: %v", og.ID, err)
	}
	return h, level, nil
}

// AddMembers appends the valid members
// of an orthoXML group to members,
// resolving the gene references
// and building the nested groups.
// Members of a paralogous group are added
// as direct members of the enclosing group.
func (a *Analysis) addMembers(members []genome.AbstractGene, og *orthoxml.Group) ([]genome.AbstractGene, error) {
	for _, ref := range og.GeneRefs {
		g, ok := a.genes[ref.ID]
		if !ok {
			logger.Warn("analysis: gene not defined for any species",
				zap.String("geneRef", ref.ID),
				zap.String("group", og.ID),
			)
			continue
		}
		members = append(members, g)
	}
	for _, sg := range og.Subgroups {
		h, _, err := a.buildHOG(sg)
		if err != nil {
			return nil, err
		}
		if h == nil {
			logger.Warn("analysis: skipping group without valid members", zap.String("group", sg.ID))
			continue
		}
		members = append(members, h)
	}
	for _, pg := range og.Paralogs {
		var err error
		members, err = a.addMembers(members, pg)
		if err != nil {
			return nil, err
		}
	}
	return members, nil
}

// AncestralAt returns the ancestral genome
// at the given node of the taxonomy,
// creating and attaching a new genome
// if the node does not have one.
func (a *Analysis) ancestralAt(id int) (*genome.Ancestral, error) {
	if g := a.t.Genome(id); g != nil {
		ag, ok := g.(*genome.Ancestral)
		if !ok {
			return nil, fmt.Errorf("analysis: level %q: genome %q is not ancestral: %w", a.t.Taxon(id), g.Name(), genome.ErrConceptViolation)
		}
		return ag, nil
	}

	ag := genome.NewAncestral()
	if err := a.t.Attach(id, ag); err != nil {
		return nil, err
	}
	return ag, nil
}

// GenomeFor returns the genome
// at the taxonomic level with a given name.
// An internal level without a genome
// will get a new empty ancestral genome.
func (a *Analysis) genomeFor(name string) (genome.Genome, error) {
	id := a.t.TaxNode(name)
	if id < 0 {
		return nil, fmt.Errorf("analysis: unknown taxon %q: %w", name, genome.ErrInvalidArgument)
	}
	if g := a.t.Genome(id); g != nil {
		return g, nil
	}
	if a.t.IsTerm(id) {
		return nil, fmt.Errorf("analysis: species %q without a genome: %w", name, genome.ErrInvalidArgument)
	}
	return a.ancestralAt(id)
}

// Ancestral returns the ancestral genome
// at the taxonomic level with a given name.
// If the level does not have a genome,
// a new empty genome will be created.
// It returns nil if the name is unknown,
// or the name is a terminal of the taxonomy.
func (a *Analysis) Ancestral(name string) *genome.Ancestral {
	id := a.t.TaxNode(name)
	if id < 0 {
		return nil
	}
	if a.t.IsTerm(id) {
		return nil
	}
	ag, err := a.ancestralAt(id)
	if err != nil {
		return nil
	}
	return ag
}

// Compare builds the map
// between the genomes of two taxonomic levels,
// one of them an ancestor of the other.
// The levels can be species names,
// or names of internal levels of the taxonomy.
func (a *Analysis) Compare(x, y string) (*hogmap.Map, error) {
	gx, err := a.genomeFor(x)
	if err != nil {
		return nil, err
	}
	gy, err := a.genomeFor(y)
	if err != nil {
		return nil, err
	}
	return hogmap.New(a.t, gx, gy)
}

// Extant returns the extant genome of a species,
// or nil if the species is not in the analysis.
func (a *Analysis) Extant(name string) *genome.Extant {
	return a.extant[name]
}

// Gene returns a gene by its unique ID.
func (a *Analysis) Gene(id string) *genome.Gene {
	return a.genes[id]
}

// GeneByProt returns a gene by its protein ID.
func (a *Analysis) GeneByProt(id string) *genome.Gene {
	return a.prots[id]
}

// Genomes returns all the genomes of the analysis,
// first the extant genomes sorted by species name,
// and then the ancestral genomes
// ordered by their taxonomy nodes,
// with each ancestor before any of its descendants.
func (a *Analysis) Genomes() []genome.Genome {
	names := make([]string, 0, len(a.extant))
	for n := range a.extant {
		names = append(names, n)
	}
	slices.Sort(names)

	gs := make([]genome.Genome, 0, len(a.extant))
	for _, n := range names {
		gs = append(gs, a.extant[n])
	}
	for _, id := range a.t.Nodes() {
		if a.t.IsTerm(id) {
			continue
		}
		if g := a.t.Genome(id); g != nil {
			gs = append(gs, g)
		}
	}
	return gs
}

// Lateral builds the comparison
// between an ancestral genome
// and the genomes of two or more of its descendants.
func (a *Analysis) Lateral(anc string, descs ...string) (*hogmap.Lateral, error) {
	if len(descs) < 2 {
		return nil, fmt.Errorf("analysis: expecting two or more descendants: %w", genome.ErrInvalidArgument)
	}
	ag, err := a.genomeFor(anc)
	if err != nil {
		return nil, err
	}

	l := hogmap.NewLateral(a.t)
	for _, d := range descs {
		dg, err := a.genomeFor(d)
		if err != nil {
			return nil, err
		}
		m, err := hogmap.New(a.t, ag, dg)
		if err != nil {
			return nil, err
		}
		if err := l.AddMap(m); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MRCA returns the ancestral genome
// of the most recent common ancestor
// of two or more species.
func (a *Analysis) MRCA(names ...string) (*genome.Ancestral, error) {
	ids := make([]int, 0, len(names))
	for _, n := range names {
		e, ok := a.extant[n]
		if !ok {
			return nil, fmt.Errorf("analysis: unknown species %q: %w", n, genome.ErrInvalidArgument)
		}
		ids = append(ids, e.Taxon())
	}
	id, err := a.t.MRCA(ids...)
	if err != nil {
		return nil, fmt.Errorf("analysis: %v", err)
	}
	if a.t.IsTerm(id) {
		return nil, fmt.Errorf("analysis: expecting two or more different species: %w", genome.ErrInvalidArgument)
	}
	return a.ancestralAt(id)
}

// Taxonomy returns the taxonomy of the analysis.
func (a *Analysis) Taxonomy() *taxonomy.Tree {
	return a.t
}

// TopGroups returns the root groups
// of the gene families of the analysis.
func (a *Analysis) TopGroups() []*genome.HOG {
	top := make([]*genome.HOG, len(a.top))
	copy(top, a.top)
	return top
}

// Vertical builds the comparison
// between an ancestral genome
// and the genome of one of its descendants.
func (a *Analysis) Vertical(anc, desc string) (*hogmap.Vertical, error) {
	m, err := a.Compare(anc, desc)
	if err != nil {
		return nil, err
	}
	v := hogmap.NewVertical(a.t)
	if err := v.AddMap(m); err != nil {
		return nil, err
	}
	return v, nil
}
