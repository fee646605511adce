// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the taxonomy of a hogevo project as an SVG file,
// with the nodes colored by gene family events.
package draw

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/analysis"
	"github.com/js-arias/hogevo/profile"
	"github.com/js-arias/hogevo/project"
)

var Command = &command.Command{
	Usage: `draw [--event <event>] [--color <color-scale>]
	[--step <value>] [-o|--output <file>]
	<project-file>`,
	Short: "draw the taxonomy colored by gene family events",
	Long: `
Command draw reads the gene families and the taxonomy of a hogevo project,
builds the profile of gene family events across the taxonomy, and draws the
taxonomy into an SVG-encoded file, coloring the branch of each node by the
relative intensity of an event at that node.

The argument of the command is the name of the project file.

By default, the tree will be colored by the number of gained genes at each
node. Use the flag --event to color by a different event. Valid event values
are:

	gained      genes gained at the node (default)
	lost        families lost at the node
	single      families retained as a single copy at the node
	duplicated  families duplicated at the node

The intensity of a node is the event count of the node scaled by the maximum
count of the event over the whole taxonomy. The branches of the oldest
genomes are drawn in black, as they have no events. By default, a blue to red
gradient will be used; other color scales can be defined using the --color
flag. Valid scale values are mostly based on Paul Tol color scales:

	- gradient    default value (from blue to red)
	- iridescent  <https://personal.sron.nl/~pault/#fig:scheme_iridescent>
	- rainbow     (from purple to red)
	        <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
	- incandescent
		<https://personal.sron.nl/~pault/#fig:scheme_incandescent>

By default, 20 pixel units will be used per taxonomy level; use the flag
--step to define a different value (it can have decimal points).

By default, the drawing will be stored as "profile-<event>.svg". Use the flag
--output, or -o, to define a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepX float64
var colorScale string
var eventFlag string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&stepX, "step", 20, "")
	c.Flags().StringVar(&colorScale, "color", "", "")
	c.Flags().StringVar(&eventFlag, "event", "gained", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	event := strings.ToLower(eventFlag)
	switch event {
	case "gained", "lost", "single", "duplicated":
	default:
		msg := fmt.Sprintf("invalid event value %q", eventFlag)
		return c.UsageError(msg)
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

	st := copyTree(a.Taxonomy(), stepX)
	st.setColor(prof, event, gradient())

	name := output
	if name == "" {
		name = "profile-" + event + ".svg"
	}
	return writeSVG(name, st)
}

func gradient() func(float64) color.Color {
	switch strings.ToLower(colorScale) {
	case "incandescent":
		return func(v float64) color.Color {
			return blind.Sequential(blind.Incandescent, v)
		}
	case "iridescent":
		return func(v float64) color.Color {
			return blind.Sequential(blind.Iridescent, v)
		}
	case "rainbow":
		return func(v float64) color.Color {
			return blind.Sequential(blind.RainbowPurpleToRed, v)
		}
	}
	return func(v float64) color.Color {
		return blind.Gradient(v)
	}
}

func writeSVG(name string, t svgTree) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
