// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hogmap implements the comparison
// of the gene repertoires of two genomes,
// an ancestral genome
// and the genome of one of its descendants,
// based on the hierarchical orthologous groups
// that contain the genes of the descendant.
//
// In a comparison,
// each gene of the descendant genome
// is mapped to the group of the ancestral genome
// that contains it,
// following the parent relations of the gene.
// Then each gene family is classified
// by the outcome of the mapping:
// a gene without an ancestral group is a gained gene,
// a group without descendant genes is a lost group,
// a group with a single descendant gene
// is retained as a single copy,
// and a group with two or more descendant genes
// is a duplicated group.
package hogmap

import (
	"fmt"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/taxonomy"
)

// A Map is the comparison
// between an ancestral genome
// and the genome of one of its descendants
// in a taxonomy.
//
// The descendant genome can be an extant genome,
// or another ancestral genome.
type Map struct {
	t    *taxonomy.Tree
	anc  *genome.Ancestral
	desc genome.Genome

	up         map[genome.AbstractGene][]*genome.HOG
	gained     []genome.AbstractGene
	lost       []*genome.HOG
	single     map[*genome.HOG]genome.AbstractGene
	duplicated map[*genome.HOG][]genome.AbstractGene
}

// New creates a new map
// between the genomes a and b,
// that must be attached to the taxonomy t.
// One of the genomes must be an ancestor of the other
// in the taxonomy,
// the order of the arguments is irrelevant.
func New(t *taxonomy.Tree, a, b genome.Genome) (*Map, error) {
	if t == nil {
		return nil, fmt.Errorf("hogmap: expecting a taxonomy: %w", genome.ErrInvalidArgument)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("hogmap: expecting two genomes: %w", genome.ErrInvalidArgument)
	}
	ta := a.Taxon()
	if ta < 0 || ta >= t.Len() {
		return nil, fmt.Errorf("hogmap: genome %q is not in the taxonomy: %w", a.Name(), genome.ErrInvalidArgument)
	}
	tb := b.Taxon()
	if tb < 0 || tb >= t.Len() {
		return nil, fmt.Errorf("hogmap: genome %q is not in the taxonomy: %w", b.Name(), genome.ErrInvalidArgument)
	}

	var anc, desc genome.Genome
	switch {
	case t.IsAncestor(ta, tb):
		anc, desc = a, b
	case t.IsAncestor(tb, ta):
		anc, desc = b, a
	default:
		return nil, fmt.Errorf("hogmap: genome %q is not an ancestor or descendant of %q: %w", a.Name(), b.Name(), genome.ErrInvalidArgument)
	}
	ag, ok := anc.(*genome.Ancestral)
	if !ok {
		return nil, fmt.Errorf("hogmap: genome %q is not an ancestral genome: %w", anc.Name(), genome.ErrInvalidArgument)
	}

	m := &Map{
		t:    t,
		anc:  ag,
		desc: desc,
	}
	m.walkUp()
	m.classify()
	return m, nil
}

// WalkUp maps each gene of the descendant genome
// to its chain of parent groups
// up to the level of the ancestral genome.
func (m *Map) walkUp() {
	path, _ := m.t.PathUp(m.desc.Taxon(), m.anc.Taxon())
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	m.up = make(map[genome.AbstractGene][]*genome.HOG, m.desc.Len())
	for _, g := range m.desc.Genes() {
		m.up[g] = m.chain(g, onPath)
	}
}

// Chain walks the parent relations of a gene
// up to the level of the ancestral genome.
// It returns nil if the walk ends
// before reaching the ancestor,
// or leaves the path between the two genomes.
func (m *Map) chain(g genome.AbstractGene, onPath map[int]bool) []*genome.HOG {
	var chain []*genome.HOG
	for p := g.Parent(); p != nil; p = p.Parent() {
		pg := p.Genome()
		if pg == nil {
			return nil
		}
		if pg == genome.Genome(m.anc) {
			return append(chain, p)
		}
		if !onPath[pg.Taxon()] {
			return nil
		}
		chain = append(chain, p)
	}
	return nil
}

// Classify assigns each gene family
// to its evolutionary event.
func (m *Map) classify() {
	desc := make(map[*genome.HOG][]genome.AbstractGene, m.anc.Len())
	for _, g := range m.desc.Genes() {
		ch := m.up[g]
		if ch == nil {
			m.gained = append(m.gained, g)
			continue
		}
		top := ch[len(ch)-1]
		desc[top] = append(desc[top], g)
	}

	m.single = make(map[*genome.HOG]genome.AbstractGene)
	m.duplicated = make(map[*genome.HOG][]genome.AbstractGene)
	for _, h := range m.anc.Groups() {
		gs := desc[h]
		switch len(gs) {
		case 0:
			m.lost = append(m.lost, h)
		case 1:
			m.single[h] = gs[0]
		default:
			m.duplicated[h] = gs
		}
	}
}

// Ancestor returns the ancestral genome of the map.
func (m *Map) Ancestor() *genome.Ancestral {
	return m.anc
}

// Descendant returns the descendant genome of the map.
func (m *Map) Descendant() genome.Genome {
	return m.desc
}

// Duplicated returns the groups of the ancestral genome
// with two or more genes in the descendant genome,
// with the descendant genes of each group
// in the order of the descendant genome.
func (m *Map) Duplicated() map[*genome.HOG][]genome.AbstractGene {
	dup := make(map[*genome.HOG][]genome.AbstractGene, len(m.duplicated))
	for h, gs := range m.duplicated {
		c := make([]genome.AbstractGene, len(gs))
		copy(c, gs)
		dup[h] = c
	}
	return dup
}

// Gained returns the genes of the descendant genome
// without a group in the ancestral genome,
// in the order of the descendant genome.
func (m *Map) Gained() []genome.AbstractGene {
	gained := make([]genome.AbstractGene, len(m.gained))
	copy(gained, m.gained)
	return gained
}

// Lost returns the groups of the ancestral genome
// without genes in the descendant genome,
// in the order of the ancestral genome.
func (m *Map) Lost() []*genome.HOG {
	lost := make([]*genome.HOG, len(m.lost))
	copy(lost, m.lost)
	return lost
}

// Single returns the groups of the ancestral genome
// with a single gene in the descendant genome.
func (m *Map) Single() map[*genome.HOG]genome.AbstractGene {
	single := make(map[*genome.HOG]genome.AbstractGene, len(m.single))
	for h, g := range m.single {
		single[h] = g
	}
	return single
}

// Top returns the group of the ancestral genome
// that contains the gene g of the descendant genome.
// It returns nil if the gene is not mapped to any group,
// that is,
// if the gene was gained
// after the split from the ancestral genome.
func (m *Map) Top(g genome.AbstractGene) *genome.HOG {
	ch := m.up[g]
	if len(ch) == 0 {
		return nil
	}
	return ch[len(ch)-1]
}

// UpMap returns the chain of parent groups
// of each gene of the descendant genome,
// from the youngest group up to the group
// at the level of the ancestral genome.
// A gene with a nil chain is not contained
// in any group of the ancestral genome.
func (m *Map) UpMap() map[genome.AbstractGene][]*genome.HOG {
	up := make(map[genome.AbstractGene][]*genome.HOG, len(m.up))
	for g, ch := range m.up {
		up[g] = ch
	}
	return up
}
