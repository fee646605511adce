// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package set implements a command to set the data files
// of a hogevo project.
package set

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/logger"
	"github.com/js-arias/hogevo/orthoxml"
	"github.com/js-arias/hogevo/project"
	"github.com/js-arias/hogevo/taxonomy"
	"github.com/js-arias/timetree"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `set --type <dataset>
	<project-file> <data-file>`,
	Short: "set a data file of a hogevo project",
	Long: `
Command set adds a data file to a hogevo project. The file is read and
validated before being added to the project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the data file to be added. The dataset
stored in the file must be defined with the flag --type. The valid dataset
types are:

	groups     the gene families, an orthoXML document
	           (gzip-compressed files are accepted)
	taxonomy   the species tree, a newick file
	trees      time calibrated trees, a tab-delimited file

If the dataset is already defined in the project, the new file will replace
the previous one; the old file will be kept on disk, but no longer used by
the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if typeFlag == "" {
		return c.UsageError("flag --type undefined")
	}
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting data file")
	}
	file := args[1]

	d := project.Dataset(strings.ToLower(typeFlag))
	switch d {
	case project.Groups:
		if err := validGroups(file); err != nil {
			return err
		}
	case project.Taxonomy:
		if err := validTaxonomy(file); err != nil {
			return err
		}
	case project.Trees:
		if err := validTrees(file); err != nil {
			return err
		}
	default:
		msg := fmt.Sprintf("invalid dataset type %q", typeFlag)
		return c.UsageError(msg)
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}
	p.Add(d, file)
	if err := p.Write(); err != nil {
		return err
	}
	logger.Info("data: dataset defined",
		zap.String("project", args[0]),
		zap.String("dataset", string(d)),
		zap.String("file", file),
	)
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func validGroups(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := orthoxml.Read(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if len(doc.Groups) == 0 {
		return fmt.Errorf("on file %q: no gene families in file", name)
	}
	return nil
}

func validTaxonomy(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := taxonomy.Newick(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

func validTrees(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	tc, err := timetree.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if len(tc.Names()) == 0 {
		return fmt.Errorf("on file %q: no trees in file", name)
	}
	return nil
}
