// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package data is a metapackage for commands
// that dealt with the data files of a project.
package data

import (
	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/cmd/hogevo/data/list"
	"github.com/js-arias/hogevo/cmd/hogevo/data/set"
)

var Command = &command.Command{
	Usage: "data <command> [<argument>...]",
	Short: "commands for project data files",
}

func init() {
	Command.Add(list.Command)
	Command.Add(set.Command)
}
