// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/hogevo/logger"
	"github.com/js-arias/hogevo/orthoxml"
	"github.com/js-arias/hogevo/taxonomy"
	"github.com/js-arias/timetree"
	"go.uber.org/zap"
)

// Groups reads the gene family file
// as defined in a project.
func (p *Project) Groups() (*orthoxml.Document, error) {
	name := p.Path(Groups)
	if name == "" {
		return nil, fmt.Errorf("gene families not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := orthoxml.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return d, nil
}

// Taxonomy reads the taxonomy of a project.
//
// If the project has an explicit taxonomy file,
// it is read as a newick tree.
// Otherwise the taxonomy is built
// from the first tree of the tree file
// of the project.
func (p *Project) Taxonomy() (*taxonomy.Tree, error) {
	if name := p.Path(Taxonomy); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		t, err := taxonomy.Newick(f)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		logger.Info("project: taxonomy read",
			zap.String("file", name),
			zap.Int("nodes", t.Len()),
		)
		return t, nil
	}

	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("taxonomy not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	ls := c.Names()
	if len(ls) == 0 {
		return nil, fmt.Errorf("on file %q: no trees in file", name)
	}
	t, err := taxonomy.FromTimetree(c.Tree(ls[0]))
	if err != nil {
		return nil, fmt.Errorf("on file %q: tree %q: %v", name, ls[0], err)
	}
	logger.Info("project: taxonomy read",
		zap.String("file", name),
		zap.String("tree", ls[0]),
		zap.Int("nodes", t.Len()),
	)
	return t, nil
}

// Trees reads the tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}
