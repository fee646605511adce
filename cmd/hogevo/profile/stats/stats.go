// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// summary statistics of the gene family events of a taxonomy.
package stats

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
)

var Command = &command.Command{
	Usage: "stats [-o|--output <file>] <project-file>",
	Short: "print summary statistics of gene family events",
	Long: `
Command stats reads the gene families and the taxonomy of a hogevo project,
builds the profile of gene family events across the taxonomy, and prints the
summary statistics of each kind of event over all the nodes.

The argument of the command is the name of the project file.

The oldest genomes of the taxonomy are excluded from the summary, as they
have no older genome to compare with.

The output is a tab-delimited table with the following columns:

	event   the kind of event, one of "gained", "lost", "single", or
	        "duplicated"
	mean    the mean of the number of events per node
	median  the median of the number of events per node
	q-025   the 2.5% empirical quantile
	q-975   the 97.5% empirical quantile

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
		return writeStats(c.Stdout(), prof)
	}
	return writeFile(prof)
}

func writeFile(prof *profile.Profile) (err error) {
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

	if err := writeStats(f, prof); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

func writeStats(w io.Writer, prof *profile.Profile) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"event", "mean", "median", "q-025", "q-975"}); err != nil {
		return err
	}

	sum := prof.Summary()
	for _, ev := range []struct {
		name string
		s    profile.Stats
	}{
		{"gained", sum.Gained},
		{"lost", sum.Lost},
		{"single", sum.Single},
		{"duplicated", sum.Duplicated},
	} {
		row := []string{
			ev.name,
			strconv.FormatFloat(ev.s.Mean, 'f', 6, 64),
			strconv.FormatFloat(ev.s.Median, 'f', 6, 64),
			strconv.FormatFloat(ev.s.Q025, 'f', 6, 64),
			strconv.FormatFloat(ev.s.Q975, 'f', 6, 64),
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
