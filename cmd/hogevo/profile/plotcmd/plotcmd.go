// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to plot
// the gene family events of a taxonomy as a bar chart.
package plotcmd

import (
	"fmt"
	"image/color"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/profile"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: "plot [-o|--output <file>] <project-file>",
	Short: "plot gene family events as a bar chart",
	Long: `
Command plot reads the gene families and the taxonomy of a hogevo project,
builds the profile of gene family events across the taxonomy, and plots the
number of events at each node as a bar chart. Each node has a group of four
bars, from light gray to black: gained, lost, single, and duplicated.

The argument of the command is the name of the project file.

The oldest genomes of the taxonomy are excluded from the plot, as they have
no older genome to compare with.

By default, the plot will be stored as "profile.png". Use the flag --output,
or -o, to define a different file name. The format of the image is inferred
from the extension of the file name; PNG, JPG, SVG, PDF, and TIFF files are
supported.
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

	name := output
	if name == "" {
		name = "profile.png"
	}
	return makePlot(name, a.Taxonomy(), prof)
}

func makePlot(name string, t *taxonomy.Tree, prof *profile.Profile) error {
	p := plot.New()
	p.Y.Label.Text = "gene families"

	var nodes []int
	var names []string
	for _, id := range prof.Nodes() {
		if prof.Events(id).Root {
			continue
		}
		nodes = append(nodes, id)
		names = append(names, t.Taxon(id))
	}

	events := []struct {
		name  string
		gray  uint8
		count func(ev profile.Events) int
	}{
		{"gained", 220, func(ev profile.Events) int { return ev.Gained }},
		{"lost", 160, func(ev profile.Events) int { return ev.Lost }},
		{"single", 100, func(ev profile.Events) int { return ev.Single }},
		{"duplicated", 40, func(ev profile.Events) int { return ev.Duplicated }},
	}

	w := vg.Points(3)
	for i, e := range events {
		vals := make(plotter.Values, 0, len(nodes))
		for _, id := range nodes {
			vals = append(vals, float64(e.count(prof.Events(id))))
		}

		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = color.Gray{e.gray}
		bars.Offset = vg.Length(float64(i)-1.5) * w

		p.Add(bars)
		p.Legend.Add(e.name, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
