// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lateral implements a command to compare
// several genomes against a common ancestral genome.
package lateral

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
)

var Command = &command.Command{
	Usage: `lateral [--ancestor <genome>]
	[-o|--output <file>] <project-file> <genome> <genome>...`,
	Short: "compare several genomes with a common ancestor",
	Long: `
Command lateral compares the gene families of two or more genomes with the
families of a common ancestral genome, and reports the evolutionary events of
each descendant lineage since the split from the ancestor.

The first argument of the command is the name of the project file. The rest
of the arguments are the names of the descendant genomes, which can be extant
genomes (terminals of the taxonomy) or ancestral genomes (internal nodes). At
least two descendant genomes are required.

By default, the most recent common ancestor of the descendant genomes will be
used as the ancestor. Use the flag --ancestor to compare with an older
ancestor. The ancestor must be an ancestor of all the descendant genomes.

The output is a tab-delimited table with the following columns:

	event   the evolutionary event of a gene family, one of "gained",
	        "lost", "single", or "duplicated"
	group   the gene family of the ancestral genome; empty for gained
	        families, as they are not present in the ancestor
	genome  the name of the descendant genome
	genes   the genes of the descendant genome; empty for lost families,
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
	if len(args) < 3 {
		return c.UsageError("expecting two or more descendant genomes")
	}
	descs := args[1:]

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
		m, err := a.MRCA(descs...)
		if err != nil {
			return err
		}
		anc = m.Name()
	}

	l, err := a.Lateral(anc, descs...)
	if err != nil {
		return err
	}

	if output == "" {
		return writeEvents(c.Stdout(), l)
	}
	return writeFile(l)
}

func writeFile(l *hogmap.Lateral) (err error) {
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

	if err := writeEvents(f, l); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

func writeEvents(w io.Writer, l *hogmap.Lateral) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"event", "group", "genome", "genes"}); err != nil {
		return err
	}

	lost := make(map[*genome.HOG]map[genome.Genome]bool, len(l.Lost()))
	for h, ds := range l.Lost() {
		gs := make(map[genome.Genome]bool, len(ds))
		for _, d := range ds {
			gs[d] = true
		}
		lost[h] = gs
	}
	single := l.Single()
	duplicated := l.Duplicated()

	descs := l.Descendants()
	for _, h := range l.Ancestor().Groups() {
		for _, d := range descs {
			var row []string
			switch {
			case lost[h][d]:
				row = []string{"lost", h.String(), d.Name(), ""}
			case single[h][d] != nil:
				row = []string{"single", h.String(), d.Name(), single[h][d].String()}
			default:
				gs := make([]string, 0, len(duplicated[h][d]))
				for _, g := range duplicated[h][d] {
					gs = append(gs, g.String())
				}
				row = []string{"duplicated", h.String(), d.Name(), strings.Join(gs, ",")}
			}
			if err := tab.Write(row); err != nil {
				return err
			}
		}
	}

	gained := l.Gained()
	for _, d := range descs {
		for _, g := range gained[d] {
			row := []string{"gained", "", d.Name(), g.String()}
			if err := tab.Write(row); err != nil {
				return err
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return err
	}
	return nil
}
