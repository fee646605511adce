// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package vertical implements a command to compare
// a genome with one of its ancestral genomes.
package vertical

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/hogmap"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
)

var Command = &command.Command{
	Usage: `vertical [--ancestor <genome>]
	[-o|--output <file>] <project-file> <genome>`,
	Short: "compare a genome with an ancestral genome",
	Long: `
Command vertical compares the gene families of a genome with the families of
one of its ancestral genomes, and reports the evolutionary events between the
two levels.

The first argument of the command is the name of the project file. The second
argument is the name of the descendant genome, which can be an extant genome
(a terminal of the taxonomy) or an ancestral genome (an internal node).

By default, the most recent ancestral genome of the descendant will be used
as the ancestor. Use the flag --ancestor to compare with an older ancestor.
The ancestor must be an internal node of the taxonomy, ancestor of the
descendant genome.

The output is a tab-delimited table with the following columns:

	event  the evolutionary event of a gene family, one of "gained",
	       "lost", "single", or "duplicated"
	group  the gene family of the ancestral genome; empty for gained
	       families, as they are not present in the ancestor
	genes  the genes of the descendant genome; empty for lost families,
	       comma separated in duplicated families

By default, the table will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var ancName string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&ancName, "ancestor", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting descendant genome")
	}
	desc := args[1]

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	a, err := analysis.ReadProject(p)
	if err != nil {
		return err
	}

	anc := ancName
	if anc == "" {
		anc, err = defaultAncestor(a.Taxonomy(), desc)
		if err != nil {
			return err
		}
	}

	v, err := a.Vertical(anc, desc)
	if err != nil {
		return err
	}

	if output == "" {
		return writeEvents(c.Stdout(), v)
	}
	return writeFile(v)
}

func writeFile(v *hogmap.Vertical) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := writeEvents(f, v); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

// DefaultAncestor returns the name of the most recent ancestor
// of a taxon with an attached genome.
func defaultAncestor(t *taxonomy.Tree, name string) (string, error) {
	id := t.TaxNode(name)
	if id < 0 {
		return "", fmt.Errorf("genome %q: not in taxonomy", name)
	}
	for p := t.Parent(id); p >= 0; p = t.Parent(p) {
		if t.Genome(p) != nil {
			return t.Taxon(p), nil
		}
	}
	return "", fmt.Errorf("genome %q: no ancestral genome found", name)
}

func writeEvents(w io.Writer, v *hogmap.Vertical) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"event", "group", "genes"}); err != nil {
		return err
	}

	lost := make(map[*genome.HOG]bool, len(v.Lost()))
	for _, h := range v.Lost() {
		lost[h] = true
	}
	single := v.Single()
	duplicated := v.Duplicated()

	// every group of the ancestor is lost,
	// a single copy,
	// or duplicated
	for _, h := range v.Ancestor().Groups() {
		var row []string
		switch {
		case lost[h]:
			row = []string{"lost", h.String(), ""}
		case single[h] != nil:
			row = []string{"single", h.String(), single[h].String()}
		default:
			gs := make([]string, 0, len(duplicated[h]))
			for _, g := range duplicated[h] {
				gs = append(gs, g.String())
			}
			row = []string{"duplicated", h.String(), strings.Join(gs, ",")}
		}
		if err := tab.Write(row); err != nil {
			return err
		}
	}

	for _, g := range v.Gained() {
		row := []string{"gained", "", g.String()}
		if err := tab.Write(row); err != nil {
			return err
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return err
	}
	return nil
}
