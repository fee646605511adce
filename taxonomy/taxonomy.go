// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy provides a species tree
// used to place extant and ancestral genomes
// at named taxonomic levels.
package taxonomy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/hogevo/genome"
)

// A node is a taxonomic level in a taxonomy.
type node struct {
	id       int
	name     string
	parent   int
	children []int
	depth    int
	genome   genome.Genome
}

// A Tree is a rooted taxonomy.
// Nodes of the tree are identified
// by a dense sequence of IDs,
// in which the parent of a node
// always has an ID smaller than the node.
type Tree struct {
	nodes []*node
	names map[string]int
}

// New creates a new taxonomy
// with the given root level.
func New(root string) (*Tree, error) {
	root = canon(root)
	if root == "" {
		return nil, fmt.Errorf("taxonomy: expecting a root name: %w", genome.ErrInvalidArgument)
	}

	t := &Tree{names: make(map[string]int)}
	n := &node{
		id:     0,
		name:   root,
		parent: -1,
	}
	t.nodes = append(t.nodes, n)
	t.names[root] = 0
	return t, nil
}

// Add adds a new taxonomic level
// as a child of the indicated node,
// and returns the ID of the added node.
// Level names are unique inside a taxonomy.
func (t *Tree) Add(parent int, name string) (int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return -1, fmt.Errorf("taxonomy: invalid node %d: %w", parent, genome.ErrInvalidArgument)
	}
	name = canon(name)
	if name == "" {
		return -1, fmt.Errorf("taxonomy: expecting a level name: %w", genome.ErrInvalidArgument)
	}
	if _, dup := t.names[name]; dup {
		return -1, fmt.Errorf("taxonomy: level %q already in tree: %w", name, genome.ErrInvalidArgument)
	}

	p := t.nodes[parent]
	n := &node{
		id:     len(t.nodes),
		name:   name,
		parent: parent,
		depth:  p.depth + 1,
	}
	t.nodes = append(t.nodes, n)
	t.names[name] = n.id
	p.children = append(p.children, n.id)
	return n.id, nil
}

// Attach places a genome at the indicated node.
// Extant genomes can only be placed on terminals,
// and ancestral genomes on internal nodes.
// An unnamed ancestral genome will be named
// after the node.
func (t *Tree) Attach(id int, g genome.Genome) error {
	if id < 0 || id >= len(t.nodes) {
		return fmt.Errorf("taxonomy: invalid node %d: %w", id, genome.ErrInvalidArgument)
	}
	if g == nil {
		return fmt.Errorf("taxonomy: expecting a genome: %w", genome.ErrInvalidArgument)
	}
	n := t.nodes[id]
	if n.genome != nil {
		if n.genome == g {
			return nil
		}
		return fmt.Errorf("taxonomy: level %q already has genome %q: %w", n.name, n.genome.Name(), genome.ErrConceptViolation)
	}

	var ancestral *genome.Ancestral
	switch v := g.(type) {
	case *genome.Extant:
		if v == nil {
			return fmt.Errorf("taxonomy: expecting a genome: %w", genome.ErrInvalidArgument)
		}
		if !t.IsTerm(id) {
			return fmt.Errorf("taxonomy: extant genome %q on internal level %q: %w", g.Name(), n.name, genome.ErrConceptViolation)
		}
	case *genome.Ancestral:
		if v == nil {
			return fmt.Errorf("taxonomy: expecting a genome: %w", genome.ErrInvalidArgument)
		}
		if t.IsTerm(id) {
			return fmt.Errorf("taxonomy: ancestral genome on terminal level %q: %w", n.name, genome.ErrConceptViolation)
		}
		ancestral = v
	}

	if err := g.SetTaxon(id); err != nil {
		return fmt.Errorf("taxonomy: level %q: %v", n.name, err)
	}
	if ancestral != nil && ancestral.Name() == "" {
		ancestral.SetName(n.name)
	}
	n.genome = g
	return nil
}

// Children returns the IDs of the children
// of the indicated node.
func (t *Tree) Children(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	n := t.nodes[id]
	children := make([]int, len(n.children))
	copy(children, n.children)
	return children
}

// Depth returns the number of nodes
// between the indicated node and the root,
// which is at depth 0.
// It returns -1 if the node is not in the tree.
func (t *Tree) Depth(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return -1
	}
	return t.nodes[id].depth
}

// Genome returns the genome placed at a node,
// or nil if the node has no genome.
func (t *Tree) Genome(id int) genome.Genome {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id].genome
}

// IsAncestor returns true
// if the first node is a strict ancestor
// of the second node.
// A node is not an ancestor of itself.
func (t *Tree) IsAncestor(anc, id int) bool {
	if anc < 0 || anc >= len(t.nodes) {
		return false
	}
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	for p := t.nodes[id].parent; p >= 0; p = t.nodes[p].parent {
		if p == anc {
			return true
		}
	}
	return false
}

// IsTerm returns true
// if the indicated node is a terminal,
// a node without descendants.
func (t *Tree) IsTerm(id int) bool {
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	return len(t.nodes[id].children) == 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// MRCA returns the most recent common ancestor
// of the indicated nodes.
func (t *Tree) MRCA(ids ...int) (int, error) {
	if len(ids) == 0 {
		return -1, fmt.Errorf("taxonomy: expecting node IDs: %w", genome.ErrInvalidArgument)
	}
	for _, id := range ids {
		if id < 0 || id >= len(t.nodes) {
			return -1, fmt.Errorf("taxonomy: invalid node %d: %w", id, genome.ErrInvalidArgument)
		}
	}

	m := ids[0]
	for _, id := range ids[1:] {
		m = t.mrca(m, id)
	}
	return m, nil
}

func (t *Tree) mrca(a, b int) int {
	for t.nodes[a].depth > t.nodes[b].depth {
		a = t.nodes[a].parent
	}
	for t.nodes[b].depth > t.nodes[a].depth {
		b = t.nodes[b].parent
	}
	for a != b {
		a = t.nodes[a].parent
		b = t.nodes[b].parent
	}
	return a
}

// Nodes returns the IDs of the nodes of the tree.
// The IDs are sorted,
// so the parent of a node always appears
// before the node.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 for the root
// or a node not in the tree.
func (t *Tree) Parent(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return -1
	}
	return t.nodes[id].parent
}

// PathUp returns the IDs of the taxonomic levels
// between a node and one of its ancestors,
// from the most recent to the oldest,
// excluding both the node and the ancestor.
func (t *Tree) PathUp(id, anc int) ([]int, error) {
	if id < 0 || id >= len(t.nodes) {
		return nil, fmt.Errorf("taxonomy: invalid node %d: %w", id, genome.ErrInvalidArgument)
	}
	if anc < 0 || anc >= len(t.nodes) {
		return nil, fmt.Errorf("taxonomy: invalid node %d: %w", anc, genome.ErrInvalidArgument)
	}

	var path []int
	for p := t.nodes[id].parent; p >= 0; p = t.nodes[p].parent {
		if p == anc {
			return path, nil
		}
		path = append(path, p)
	}
	return nil, fmt.Errorf("taxonomy: %q is not an ancestor of %q: %w", t.nodes[anc].name, t.nodes[id].name, genome.ErrInvalidArgument)
}

// Root returns the ID of the root node.
func (t *Tree) Root() int { return 0 }

// TaxNode returns the ID of the node
// with a given taxon name,
// or -1 if the name is not in the tree.
func (t *Tree) TaxNode(name string) int {
	name = canon(name)
	id, ok := t.names[name]
	if !ok {
		return -1
	}
	return id
}

// Taxon returns the taxon name of a node.
func (t *Tree) Taxon(id int) string {
	if id < 0 || id >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].name
}

// Terms returns the names of the terminals of the tree,
// in alphabetical order.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.nodes {
		if len(n.children) > 0 {
			continue
		}
		terms = append(terms, n.name)
	}
	slices.Sort(terms)
	return terms
}

func canon(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
