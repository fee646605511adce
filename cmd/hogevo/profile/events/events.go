// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package events implements a command to print
// the gene family events at each node of a taxonomy.
package events

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/profile"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
)

var Command = &command.Command{
	Usage: "events [-o|--output <file>] <project-file>",
	Short: "print gene family events per taxonomy node",
	Long: `
Command events reads the gene families and the taxonomy of a hogevo project,
compares the genome at each node of the taxonomy with the genome of its most
recent ancestral level, and prints a table with the number of gene family
events at each node.

The argument of the command is the name of the project file.

The output is a tab-delimited table with the following columns:

	node        the ID of the taxonomy node
	taxon       the taxon name of the node
	genes       the number of genes of the genome; for an ancestral
	            genome, the number of gene families at that level
	gained      the number of genes gained at the node
	lost        the number of families lost at the node
	single      the number of families retained as a single copy
	duplicated  the number of families duplicated at the node

The event columns of the oldest genomes are marked with '--', as there is no
older genome to compare with.

By default, the table will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	a, err := analysis.ReadProject(p)
	if err != nil {
		return err
	}

	prof, err := profile.New(a.Taxonomy())
	if err != nil {
		return err
	}

	if output == "" {
		return writeEvents(c.Stdout(), a.Taxonomy(), prof)
	}
	return writeFile(a.Taxonomy(), prof)
}

func writeFile(t *taxonomy.Tree, prof *profile.Profile) (err error) {
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

	if err := writeEvents(f, t, prof); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

func writeEvents(w io.Writer, t *taxonomy.Tree, prof *profile.Profile) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"node", "taxon", "genes", "gained", "lost", "single", "duplicated"}
	if err := tab.Write(header); err != nil {
		return err
	}

	for _, id := range prof.Nodes() {
		ev := prof.Events(id)
		row := []string{
			strconv.Itoa(id),
			t.Taxon(id),
			strconv.Itoa(ev.Genes),
			strconv.Itoa(ev.Gained),
			strconv.Itoa(ev.Lost),
			strconv.Itoa(ev.Single),
			strconv.Itoa(ev.Duplicated),
		}
		if ev.Root {
			for i := 3; i < len(row); i++ {
				row[i] = "--"
			}
		}
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
