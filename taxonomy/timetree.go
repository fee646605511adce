// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"fmt"
	"strings"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/timetree"
)

// FromTimetree creates a taxonomy
// from a dated phylogenetic tree.
// Node ages are ignored.
// Unnamed internal nodes are named
// by the concatenation of their descendant terminals,
// separated by slashes.
func FromTimetree(tt *timetree.Tree) (*Tree, error) {
	if tt == nil {
		return nil, fmt.Errorf("taxonomy: expecting a tree: %w", genome.ErrInvalidArgument)
	}

	var t *Tree

	// node IDs of a dated tree are sorted
	// with parents before their children
	ids := make(map[int]int, len(tt.Nodes()))
	for _, id := range tt.Nodes() {
		name, err := timetreeName(tt, id)
		if err != nil {
			return nil, err
		}

		p := tt.Parent(id)
		if p < 0 {
			t, err = New(name)
			if err != nil {
				return nil, err
			}
			ids[id] = t.Root()
			continue
		}
		nID, err := t.Add(ids[p], name)
		if err != nil {
			return nil, err
		}
		ids[id] = nID
	}
	return t, nil
}

// TimetreeName returns the name for a node
// of a dated tree.
func timetreeName(tt *timetree.Tree, id int) (string, error) {
	if name := tt.Taxon(id); name != "" {
		return name, nil
	}
	if tt.IsTerm(id) {
		return "", fmt.Errorf("taxonomy: tree %q: unnamed terminal %d: %w", tt.Name(), id, genome.ErrInvalidArgument)
	}
	return strings.Join(timetreeLeaves(tt, id), "/"), nil
}

func timetreeLeaves(tt *timetree.Tree, id int) []string {
	if tt.IsTerm(id) {
		return []string{tt.Taxon(id)}
	}
	var ls []string
	for _, c := range tt.Children(id) {
		ls = append(ls, timetreeLeaves(tt, c)...)
	}
	return ls
}
