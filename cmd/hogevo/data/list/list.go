// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the data files defined in a hogevo project.
package list

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/orthoxml"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: "list <project-file>",
	Short: "print information about project data files",
	Long: `
Command list reads a hogevo project and prints the information of the
different project datasets into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if gF := p.Path(project.Groups); gF != "" {
		if err := readGroups(c.Stdout(), gF); err != nil {
			return err
		}
	}

	if tF := p.Path(project.Taxonomy); tF != "" {
		if err := readTaxonomy(c.Stdout(), tF); err != nil {
			return err
		}
	}

	if tF := p.Path(project.Trees); tF != "" {
		if err := readTrees(c.Stdout(), tF); err != nil {
			return err
		}
	}

	return nil
}

func readGroups(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := orthoxml.Read(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	var genes int
	for _, sp := range doc.Species {
		for _, db := range sp.Databases {
			genes += len(db.Genes)
		}
	}

	fmt.Fprintf(w, "Gene families:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tspecies: %d\n", len(doc.Species))
	fmt.Fprintf(w, "\tgenes: %d\n", genes)
	fmt.Fprintf(w, "\tfamilies: %d\n", len(doc.Groups))
	fmt.Fprintf(w, "\n")

	return nil
}

func readTaxonomy(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := taxonomy.Newick(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	fmt.Fprintf(w, "Taxonomy:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\troot: %s\n", t.Taxon(t.Root()))
	fmt.Fprintf(w, "\tnodes: %d\n", t.Len())
	fmt.Fprintf(w, "\tterminals: %d\n", len(t.Terms()))
	fmt.Fprintf(w, "\n")

	return nil
}

func readTrees(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	tc, err := timetree.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	terms := make(map[string]bool)
	for _, tn := range tc.Names() {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	fmt.Fprintf(w, "Trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\ttrees: %d\n", len(tc.Names()))
	fmt.Fprintf(w, "\tterminals: %d\n", len(terms))
	fmt.Fprintf(w, "\n")

	return nil
}
