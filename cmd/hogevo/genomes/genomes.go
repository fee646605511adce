// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genomes implements a command to print
// the genomes defined in a hogevo project.
package genomes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/project"
)

var Command = &command.Command{
	Usage: "genomes [-o|--output <file>] <project-file>",
	Short: "print a table of the genomes of a project",
	Long: `
Command genomes reads the gene families and the taxonomy of a hogevo project,
builds the extant and ancestral genomes, and prints a table of the genomes.

The argument of the command is the name of the project file.

The output is a tab-delimited table with the following columns:

	kind      "extant" for a sequenced genome at a terminal, or
	          "ancestral" for a reconstructed genome at an internal node
	genome    the name of the genome
	depth     the number of nodes between the genome and the root
	genes     the number of genes of the genome; for an ancestral
	          genome, the number of gene families at that level
	families  the number of genes that are members of a gene family

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

	if output == "" {
		return writeGenomes(c.Stdout(), a)
	}
	return writeFile(a)
}

func writeFile(a *analysis.Analysis) (err error) {
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

	if err := writeGenomes(f, a); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

func writeGenomes(w io.Writer, a *analysis.Analysis) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"kind", "genome", "depth", "genes", "families"}); err != nil {
		return err
	}

	t := a.Taxonomy()
	for _, g := range a.Genomes() {
		depth := strconv.Itoa(t.Depth(g.Taxon()))

		var row []string
		switch gv := g.(type) {
		case *genome.Extant:
			row = []string{
				"extant",
				gv.Name(),
				depth,
				strconv.Itoa(gv.Len()),
				strconv.Itoa(gv.LenFamilies()),
			}
		case *genome.Ancestral:
			row = []string{
				"ancestral",
				gv.Name(),
				depth,
				strconv.Itoa(gv.Len()),
				strconv.Itoa(gv.Len()),
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
