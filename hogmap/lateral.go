// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hogmap

import (
	"fmt"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/taxonomy"
)

// A Lateral is the comparison
// between an ancestral genome
// and the genomes of two or more descendant lineages.
//
// The results of the comparison are computed
// on the first call of an accessor method
// and then stored,
// so further calls will retrieve the stored results.
// Maps added after the first call of an accessor
// will not be included in the stored results.
type Lateral struct {
	t    *taxonomy.Tree
	anc  *genome.Ancestral
	maps []*Map

	gained     map[genome.Genome][]genome.AbstractGene
	lost       map[*genome.HOG][]genome.Genome
	single     map[*genome.HOG]map[genome.Genome]genome.AbstractGene
	duplicated map[*genome.HOG]map[genome.Genome][]genome.AbstractGene
}

// NewLateral creates a new lateral comparison
// bound to the taxonomy t.
func NewLateral(t *taxonomy.Tree) *Lateral {
	return &Lateral{t: t}
}

// AddMap adds a map to the comparison.
// The map must be defined on the same taxonomy
// of the comparison,
// and all the maps of a comparison
// must share the same ancestral genome.
func (l *Lateral) AddMap(m *Map) error {
	if l.t == nil {
		return fmt.Errorf("hogmap: lateral comparison without a taxonomy: %w", genome.ErrInvalidArgument)
	}
	if m == nil {
		return fmt.Errorf("hogmap: lateral comparison: expecting a map: %w", genome.ErrInvalidArgument)
	}
	if m.t != l.t {
		return fmt.Errorf("hogmap: lateral comparison: map defined on a different taxonomy: %w", genome.ErrInvalidArgument)
	}
	if l.anc != nil && m.anc != l.anc {
		return fmt.Errorf("hogmap: lateral comparison on %q: map with a different ancestor %q: %w", l.anc.Name(), m.anc.Name(), genome.ErrInvalidArgument)
	}

	l.anc = m.anc
	l.maps = append(l.maps, m)
	return nil
}

// Ancestor returns the ancestral genome of the comparison.
func (l *Lateral) Ancestor() *genome.Ancestral {
	return l.anc
}

// Descendants returns the descendant genomes
// of the comparison,
// in the order in which their maps were added.
func (l *Lateral) Descendants() []genome.Genome {
	ds := make([]genome.Genome, len(l.maps))
	for i, m := range l.maps {
		ds[i] = m.desc
	}
	return ds
}

// Duplicated returns the groups of the ancestral genome
// duplicated in at least one descendant genome,
// with the genes of each descendant genome
// in which the group is duplicated.
func (l *Lateral) Duplicated() map[*genome.HOG]map[genome.Genome][]genome.AbstractGene {
	if l.duplicated == nil {
		l.duplicated = make(map[*genome.HOG]map[genome.Genome][]genome.AbstractGene)
		for _, m := range l.maps {
			for h, gs := range m.duplicated {
				dup := l.duplicated[h]
				if dup == nil {
					dup = make(map[genome.Genome][]genome.AbstractGene)
					l.duplicated[h] = dup
				}
				c := make([]genome.AbstractGene, len(gs))
				copy(c, gs)
				dup[m.desc] = c
			}
		}
	}
	return l.duplicated
}

// Gained returns the gained genes
// of each descendant genome of the comparison.
// All descendants are included,
// even genomes without gained genes.
func (l *Lateral) Gained() map[genome.Genome][]genome.AbstractGene {
	if l.gained == nil {
		l.gained = make(map[genome.Genome][]genome.AbstractGene, len(l.maps))
		for _, m := range l.maps {
			l.gained[m.desc] = m.Gained()
		}
	}
	return l.gained
}

// Lost returns the groups of the ancestral genome
// lost in at least one descendant genome,
// with the descendant genomes in which each group was lost,
// in the order in which their maps were added.
func (l *Lateral) Lost() map[*genome.HOG][]genome.Genome {
	if l.lost == nil {
		l.lost = make(map[*genome.HOG][]genome.Genome)
		for _, m := range l.maps {
			for _, h := range m.lost {
				l.lost[h] = append(l.lost[h], m.desc)
			}
		}
	}
	return l.lost
}

// Single returns the groups of the ancestral genome
// retained as a single copy
// in at least one descendant genome,
// with the retained gene of each descendant genome.
func (l *Lateral) Single() map[*genome.HOG]map[genome.Genome]genome.AbstractGene {
	if l.single == nil {
		l.single = make(map[*genome.HOG]map[genome.Genome]genome.AbstractGene)
		for _, m := range l.maps {
			for h, g := range m.single {
				sg := l.single[h]
				if sg == nil {
					sg = make(map[genome.Genome]genome.AbstractGene)
					l.single[h] = sg
				}
				sg[m.desc] = g
			}
		}
	}
	return l.single
}
