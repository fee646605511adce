// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genome

import "fmt"

// A Genome is the gene collection of a species,
// either a sequenced living species
// or a species inferred at an internal node
// of the taxonomy.
// The only types that implement the interface
// are [Extant] and [Ancestral].
type Genome interface {
	// Name returns the name of the genome.
	Name() string

	// Taxon returns the ID of the taxonomy node
	// in which the genome is placed,
	// or -1 if the genome is unplaced.
	Taxon() int

	// SetTaxon sets the taxonomy node of the genome.
	// A genome can be placed on a single node.
	SetTaxon(id int) error

	// Genes returns the genes owned by the genome,
	// in the order in which they were added.
	Genes() []AbstractGene

	// Len returns the number of genes in the genome.
	Len() int

	isGenome()
}

// An Extant genome is the gene collection
// of a living, sequenced species.
type Extant struct {
	name  string
	taxID string
	taxon int
	genes []*Gene
}

// NewExtant creates a new extant genome
// with a species name
// and an external taxonomic identifier
// (for example, an NCBI taxon ID).
func NewExtant(name, taxID string) (*Extant, error) {
	if name == "" {
		return nil, fmt.Errorf("extant genome: expecting a name: %w", ErrInvalidArgument)
	}
	return &Extant{
		name:  name,
		taxID: taxID,
		taxon: -1,
	}, nil
}

// AddGene adds a gene to the genome.
// A gene can belong to a single genome.
func (e *Extant) AddGene(g *Gene) error {
	if g == nil {
		return fmt.Errorf("genome %q: expecting a gene: %w", e.name, ErrInvalidArgument)
	}
	if g.genome != nil {
		return fmt.Errorf("genome %q: gene %s already belongs to genome %q: %w", e.name, g, g.genome.Name(), ErrConceptViolation)
	}
	g.genome = e
	e.genes = append(e.genes, g)
	return nil
}

// Genes returns the genes of the genome,
// in the order in which they were added.
func (e *Extant) Genes() []AbstractGene {
	genes := make([]AbstractGene, len(e.genes))
	for i, g := range e.genes {
		genes[i] = g
	}
	return genes
}

// Len returns the number of genes in the genome,
// singletons included.
func (e *Extant) Len() int { return len(e.genes) }

// LenFamilies returns the number of genes in the genome
// that are members of a gene family.
func (e *Extant) LenFamilies() int {
	n := 0
	for _, g := range e.genes {
		if g.parent != nil {
			n++
		}
	}
	return n
}

// Name returns the name of the species of the genome.
func (e *Extant) Name() string { return e.name }

// SetTaxon sets the ID of the taxonomy node
// in which the genome is placed.
func (e *Extant) SetTaxon(id int) error {
	if id < 0 {
		return fmt.Errorf("genome %q: invalid taxon %d: %w", e.name, id, ErrInvalidArgument)
	}
	if e.taxon == id {
		return nil
	}
	if e.taxon >= 0 {
		return fmt.Errorf("genome %q: already placed at taxon %d: %w", e.name, e.taxon, ErrConceptViolation)
	}
	e.taxon = id
	return nil
}

// Singletons returns the genes of the genome
// that are not members of any gene family.
func (e *Extant) Singletons() []*Gene {
	var genes []*Gene
	for _, g := range e.genes {
		if g.parent == nil {
			genes = append(genes, g)
		}
	}
	return genes
}

// TaxID returns the external taxonomic identifier
// of the species of the genome.
func (e *Extant) TaxID() string { return e.taxID }

// Taxon returns the ID of the taxonomy node
// in which the genome is placed,
// or -1 if the genome is unplaced.
func (e *Extant) Taxon() int { return e.taxon }

func (e *Extant) isGenome() {}

// An Ancestral genome is the inferred gene collection
// of an ancestral species,
// its genes being the orthologous groups
// defined at its taxonomic level.
type Ancestral struct {
	name     string
	taxon    int
	hogs     []*HOG
	clusters map[*HOG][]*Gene
}

// NewAncestral creates a new unnamed ancestral genome.
// Ancestral genomes are named
// after the taxonomy node in which they are placed.
func NewAncestral() *Ancestral {
	return &Ancestral{taxon: -1}
}

// AddGene adds a group to the genome.
// A group can belong to a single genome.
func (a *Ancestral) AddGene(h *HOG) error {
	if h == nil {
		return fmt.Errorf("genome %q: expecting a group: %w", a.name, ErrInvalidArgument)
	}
	if h.genome != nil {
		return fmt.Errorf("genome %q: group %s already belongs to genome %q: %w", a.name, h, h.genome.Name(), ErrConceptViolation)
	}
	h.genome = a
	a.hogs = append(a.hogs, h)
	return nil
}

// Clustering returns the extant genes
// that descend from each group of the genome.
// The clustering is computed on the first call
// and the same map is returned on any future call,
// so groups added after the first call
// will not be included.
func (a *Ancestral) Clustering() map[*HOG][]*Gene {
	if a.clusters == nil {
		a.clusters = make(map[*HOG][]*Gene, len(a.hogs))
		for _, h := range a.hogs {
			a.clusters[h] = h.DescendantGenes()
		}
	}
	return a.clusters
}

// Genes returns the groups of the genome,
// in the order in which they were added.
func (a *Ancestral) Genes() []AbstractGene {
	genes := make([]AbstractGene, len(a.hogs))
	for i, h := range a.hogs {
		genes[i] = h
	}
	return genes
}

// Groups returns the groups of the genome,
// in the order in which they were added.
func (a *Ancestral) Groups() []*HOG {
	hogs := make([]*HOG, len(a.hogs))
	copy(hogs, a.hogs)
	return hogs
}

// Len returns the number of groups in the genome.
func (a *Ancestral) Len() int { return len(a.hogs) }

// Name returns the name of the genome.
func (a *Ancestral) Name() string { return a.name }

// SetName sets the name of the genome.
func (a *Ancestral) SetName(name string) {
	a.name = name
}

// SetTaxon sets the ID of the taxonomy node
// in which the genome is placed.
func (a *Ancestral) SetTaxon(id int) error {
	if id < 0 {
		return fmt.Errorf("genome %q: invalid taxon %d: %w", a.name, id, ErrInvalidArgument)
	}
	if a.taxon == id {
		return nil
	}
	if a.taxon >= 0 {
		return fmt.Errorf("genome %q: already placed at taxon %d: %w", a.name, a.taxon, ErrConceptViolation)
	}
	a.taxon = id
	return nil
}

// Taxon returns the ID of the taxonomy node
// in which the genome is placed,
// or -1 if the genome is unplaced.
func (a *Ancestral) Taxon() int { return a.taxon }

func (a *Ancestral) isGenome() {}
