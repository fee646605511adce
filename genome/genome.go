// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genome provides types to describe the gene content
// of extant and ancestral genomes.
//
// Extant genes are grouped into hierarchical orthologous groups
// (HOGs),
// each group being the set of genes
// that descend from a single ancestral gene
// at a given taxonomic level.
package genome

import (
	"errors"
	"fmt"
	"slices"
)

// Errors for operations with genes and genomes.
var (
	// ErrInvalidArgument is the error used
	// when an operation receives a nil
	// or an ill-formed argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConceptViolation is the error used
	// when an operation is well-formed
	// but violates an evolutionary concept,
	// for example a gene that belongs to two genomes.
	ErrConceptViolation = errors.New("evolutionary concept violation")
)

// An AbstractGene is an evolutionary unit of a genome,
// either an extant gene
// or a group of genes descended from a single ancestral gene.
// The only types that implement the interface
// are [Gene] and [HOG].
type AbstractGene interface {
	// ID returns the identifier of the gene.
	ID() string

	// Parent returns the group that contains the gene,
	// or nil if the gene is not a member of any group.
	Parent() *HOG

	// Genome returns the genome that owns the gene,
	// or nil if the gene was not added to a genome.
	Genome() Genome

	// Root returns the oldest group that contains the gene.
	Root() AbstractGene

	// String returns a printable representation of the gene.
	String() string

	isAbstractGene()
}

// A Gene is an extant gene,
// a terminal in a gene family.
type Gene struct {
	id     string
	protID string
	geneID string
	taxon  string
	parent *HOG
	genome *Extant
}

// NewGene creates a new gene
// with the given unique identifier.
func NewGene(id string) (*Gene, error) {
	if id == "" {
		return nil, fmt.Errorf("gene: expecting an identifier: %w", ErrInvalidArgument)
	}
	return &Gene{id: id}, nil
}

// GeneID returns the gene identifier
// of the gene in its source database.
func (g *Gene) GeneID() string { return g.geneID }

// Genome returns the extant genome that owns the gene,
// or nil if the gene was not added to a genome.
func (g *Gene) Genome() Genome {
	if g.genome == nil {
		return nil
	}
	return g.genome
}

// ID returns the unique identifier of the gene.
func (g *Gene) ID() string { return g.id }

// Parent returns the group that contains the gene,
// or nil if the gene is a singleton.
func (g *Gene) Parent() *HOG { return g.parent }

// ProtID returns the protein identifier
// of the gene in its source database.
func (g *Gene) ProtID() string { return g.protID }

// Root returns the oldest group that contains the gene.
// If the gene is a singleton,
// it returns the gene itself.
func (g *Gene) Root() AbstractGene {
	if g.parent == nil {
		return g
	}
	return g.parent.Root()
}

// SetGeneID sets the gene identifier
// of the gene in its source database.
func (g *Gene) SetGeneID(id string) { g.geneID = id }

// SetProtID sets the protein identifier
// of the gene in its source database.
func (g *Gene) SetProtID(id string) { g.protID = id }

// SetTaxonRange sets the name of the taxonomic level
// in which the gene is found.
// A gene is at a single taxonomic level,
// so setting a different level is a concept violation,
// while re-setting the same level is a no-op.
func (g *Gene) SetTaxonRange(taxon string) error {
	if taxon == "" {
		return fmt.Errorf("gene %s: expecting a taxon name: %w", g, ErrInvalidArgument)
	}
	if g.taxon == taxon {
		return nil
	}
	if g.taxon != "" {
		return fmt.Errorf("gene %s: already at level %q: %w", g, g.taxon, ErrConceptViolation)
	}
	g.taxon = taxon
	return nil
}

func (g *Gene) String() string {
	return fmt.Sprintf("Gene(%s)", g.id)
}

// TaxonRange returns the name of the taxonomic level
// in which the gene is found.
func (g *Gene) TaxonRange() string { return g.taxon }

func (g *Gene) isAbstractGene() {}

// A HOG is a hierarchical orthologous group,
// the set of genes that descend from a single ancestral gene
// at a given taxonomic level.
// A group contains extant genes
// as well as groups at more recent levels.
type HOG struct {
	id       string
	taxa     map[string]bool
	parent   *HOG
	genome   *Ancestral
	children []AbstractGene
}

// NewHOG creates a new group
// with the given identifier.
// The identifier can be empty,
// as nested groups are usually unnamed.
func NewHOG(id string) *HOG {
	return &HOG{
		id:   id,
		taxa: make(map[string]bool),
	}
}

// AddChild adds a gene or a group
// as a member of the group.
// A group cannot contain itself,
// any group that already contains it,
// or a member of another group.
func (h *HOG) AddChild(c AbstractGene) error {
	if c == nil {
		return fmt.Errorf("hog %s: expecting a gene as child: %w", h, ErrInvalidArgument)
	}

	switch v := c.(type) {
	case *Gene:
		if v == nil {
			return fmt.Errorf("hog %s: expecting a gene as child: %w", h, ErrInvalidArgument)
		}
		if v.parent != nil {
			return fmt.Errorf("hog %s: gene %s already belongs to group %s: %w", h, v, v.parent, ErrConceptViolation)
		}
		v.parent = h
	case *HOG:
		if v == nil {
			return fmt.Errorf("hog %s: expecting a gene as child: %w", h, ErrInvalidArgument)
		}
		if v == h {
			return fmt.Errorf("hog %s: a group cannot be a child of itself: %w", h, ErrConceptViolation)
		}
		for p := h.parent; p != nil; p = p.parent {
			if p == v {
				return fmt.Errorf("hog %s: group %s contains the group: %w", h, v, ErrConceptViolation)
			}
		}
		if v.parent != nil {
			return fmt.Errorf("hog %s: group %s already belongs to group %s: %w", h, v, v.parent, ErrConceptViolation)
		}
		v.parent = h
	}
	h.children = append(h.children, c)
	return nil
}

// Children returns the members of the group.
func (h *HOG) Children() []AbstractGene {
	children := make([]AbstractGene, len(h.children))
	copy(children, h.children)
	return children
}

// DescendantGenes returns all the extant genes
// that descend from the group.
func (h *HOG) DescendantGenes() []*Gene {
	var genes []*Gene
	for _, c := range h.children {
		switch v := c.(type) {
		case *Gene:
			genes = append(genes, v)
		case *HOG:
			genes = append(genes, v.DescendantGenes()...)
		}
	}
	return genes
}

// Genome returns the ancestral genome that owns the group,
// or nil if the group was not added to a genome.
func (h *HOG) Genome() Genome {
	if h.genome == nil {
		return nil
	}
	return h.genome
}

// ID returns the identifier of the group,
// which might be empty.
func (h *HOG) ID() string { return h.id }

// Parent returns the group that contains the group,
// or nil if the group is a top level group.
func (h *HOG) Parent() *HOG { return h.parent }

// Root returns the oldest group that contains the group.
// If the group is a top level group,
// it returns the group itself.
func (h *HOG) Root() AbstractGene {
	if h.parent == nil {
		return h
	}
	return h.parent.Root()
}

// SetTaxonRange adds the name of a taxonomic level
// in which the group is defined.
// A group can be defined over several taxonomic levels.
func (h *HOG) SetTaxonRange(taxon string) error {
	if taxon == "" {
		return fmt.Errorf("hog %s: expecting a taxon name: %w", h, ErrInvalidArgument)
	}
	h.taxa[taxon] = true
	return nil
}

func (h *HOG) String() string {
	if h.id != "" {
		return fmt.Sprintf("HOG(%s)", h.id)
	}
	if h.genome != nil {
		return fmt.Sprintf("HOG(%s)", h.genome.Name())
	}
	return "HOG()"
}

// TaxonRanges returns the names of the taxonomic levels
// in which the group is defined.
func (h *HOG) TaxonRanges() []string {
	taxa := make([]string, 0, len(h.taxa))
	for tax := range h.taxa {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

func (h *HOG) isAbstractGene() {}
