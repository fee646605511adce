// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package profile implements the profile
// of gene family evolutionary events
// across a whole taxonomy.
//
// In a profile,
// the genome at each node of the taxonomy
// is compared with the genome
// of its most recent ancestor with a genome,
// and the gene families are counted
// by their evolutionary events.
package profile

import (
	"fmt"
	"slices"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/hogmap"
	"github.com/js-arias/hogevo/taxonomy"
	"gonum.org/v1/gonum/stat"
)

// Events is the count of gene family events
// at a taxonomic level.
type Events struct {
	// Number of genes of the genome
	Genes int

	// Counts relative to the closest ancestor
	// with a genome
	Gained     int
	Lost       int
	Single     int
	Duplicated int

	// Root is true if the level
	// does not have an ancestor with a genome
	Root bool
}

// A Profile is the collection of event counts
// for the taxonomic levels with a genome.
type Profile struct {
	t      *taxonomy.Tree
	events map[int]Events
}

// New creates the profile of a taxonomy,
// comparing the genome of each node
// with the genome of its closest ancestor.
func New(t *taxonomy.Tree) (*Profile, error) {
	if t == nil {
		return nil, fmt.Errorf("profile: expecting a taxonomy: %w", genome.ErrInvalidArgument)
	}

	p := &Profile{
		t:      t,
		events: make(map[int]Events),
	}
	for _, id := range t.Nodes() {
		g := t.Genome(id)
		if g == nil {
			continue
		}
		anc := closestGenome(t, id)
		if anc == nil {
			p.events[id] = Events{Genes: g.Len(), Root: true}
			continue
		}

		m, err := hogmap.New(t, anc, g)
		if err != nil {
			return nil, fmt.Errorf("profile: node %q: %v", t.Taxon(id), err)
		}
		p.events[id] = Events{
			Genes:      g.Len(),
			Gained:     len(m.Gained()),
			Lost:       len(m.Lost()),
			Single:     len(m.Single()),
			Duplicated: len(m.Duplicated()),
		}
	}
	return p, nil
}

// ClosestGenome returns the genome
// of the most recent ancestor of a node
// with a genome.
func closestGenome(t *taxonomy.Tree, id int) genome.Genome {
	for p := t.Parent(id); p >= 0; p = t.Parent(p) {
		if g := t.Genome(p); g != nil {
			return g
		}
	}
	return nil
}

// Events returns the event counts at a node.
// Nodes without a genome
// have an empty set of counts.
func (p *Profile) Events(id int) Events {
	return p.events[id]
}

// Nodes returns the IDs of the nodes with a genome,
// sorted.
func (p *Profile) Nodes() []int {
	ids := make([]int, 0, len(p.events))
	for id := range p.events {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Stats is the descriptive summary
// of the counts of an event.
type Stats struct {
	Mean   float64
	Median float64

	// Bounds of the 95% empirical interval
	Q025 float64
	Q975 float64
}

// A Summary is the per event summary of a profile.
type Summary struct {
	Gained     Stats
	Lost       Stats
	Single     Stats
	Duplicated Stats
}

// Summary returns the summary of a profile,
// over all the nodes compared with an ancestor.
func (p *Profile) Summary() Summary {
	var gained, lost, single, dup []float64
	for _, id := range p.Nodes() {
		ev := p.events[id]
		if ev.Root {
			continue
		}
		gained = append(gained, float64(ev.Gained))
		lost = append(lost, float64(ev.Lost))
		single = append(single, float64(ev.Single))
		dup = append(dup, float64(ev.Duplicated))
	}
	return Summary{
		Gained:     newStats(gained),
		Lost:       newStats(lost),
		Single:     newStats(single),
		Duplicated: newStats(dup),
	}
}

// NewStats returns the summary statistics
// of a sample of values.
func newStats(vals []float64) Stats {
	if len(vals) == 0 {
		return Stats{}
	}

	slices.Sort(vals)
	weights := make([]float64, len(vals))
	for i := range weights {
		weights[i] = 1.0
	}
	return Stats{
		Mean:   stat.Mean(vals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, vals, weights),
		Q025:   stat.Quantile(0.025, stat.Empirical, vals, weights),
		Q975:   stat.Quantile(0.975, stat.Empirical, vals, weights),
	}
}
