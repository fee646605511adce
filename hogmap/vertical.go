// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hogmap

import (
	"fmt"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/taxonomy"
)

// A Vertical is the comparison
// between an ancestral genome
// and the genome of a single descendant lineage.
//
// The results of the comparison are computed
// on the first call of an accessor method
// and then stored,
// so further calls will retrieve the stored results.
type Vertical struct {
	t *taxonomy.Tree
	m *Map

	gained     []genome.AbstractGene
	lost       []*genome.HOG
	single     map[*genome.HOG]genome.AbstractGene
	duplicated map[*genome.HOG][]genome.AbstractGene
}

// NewVertical creates a new vertical comparison
// bound to the taxonomy t.
func NewVertical(t *taxonomy.Tree) *Vertical {
	return &Vertical{t: t}
}

// AddMap sets the map of the comparison.
// The map must be defined on the same taxonomy
// of the comparison,
// and a comparison can only have a single map.
func (v *Vertical) AddMap(m *Map) error {
	if v.t == nil {
		return fmt.Errorf("hogmap: vertical comparison without a taxonomy: %w", genome.ErrInvalidArgument)
	}
	if m == nil {
		return fmt.Errorf("hogmap: vertical comparison: expecting a map: %w", genome.ErrInvalidArgument)
	}
	if m.t != v.t {
		return fmt.Errorf("hogmap: vertical comparison: map defined on a different taxonomy: %w", genome.ErrInvalidArgument)
	}
	if v.m != nil {
		return fmt.Errorf("hogmap: vertical comparison: a map is already defined: %w", genome.ErrInvalidArgument)
	}
	v.m = m
	return nil
}

// Ancestor returns the ancestral genome of the comparison.
func (v *Vertical) Ancestor() *genome.Ancestral {
	if v.m == nil {
		return nil
	}
	return v.m.anc
}

// Descendant returns the descendant genome of the comparison.
func (v *Vertical) Descendant() genome.Genome {
	if v.m == nil {
		return nil
	}
	return v.m.desc
}

// Duplicated returns the groups of the ancestral genome
// duplicated in the descendant genome.
func (v *Vertical) Duplicated() map[*genome.HOG][]genome.AbstractGene {
	if v.duplicated == nil {
		if v.m == nil {
			return nil
		}
		v.duplicated = v.m.Duplicated()
	}
	return v.duplicated
}

// Gained returns the genes of the descendant genome
// gained after the split from the ancestral genome.
func (v *Vertical) Gained() []genome.AbstractGene {
	if v.gained == nil {
		if v.m == nil {
			return nil
		}
		v.gained = v.m.Gained()
	}
	return v.gained
}

// Lost returns the groups of the ancestral genome
// lost in the descendant genome.
func (v *Vertical) Lost() []*genome.HOG {
	if v.lost == nil {
		if v.m == nil {
			return nil
		}
		v.lost = v.m.Lost()
	}
	return v.lost
}

// Single returns the groups of the ancestral genome
// retained as a single copy in the descendant genome.
func (v *Vertical) Single() map[*genome.HOG]genome.AbstractGene {
	if v.single == nil {
		if v.m == nil {
			return nil
		}
		v.single = v.m.Single()
	}
	return v.single
}
