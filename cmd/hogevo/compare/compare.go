// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package compare is a metapackage for commands
// that compare genomes at different levels of a taxonomy.
package compare

import (
	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/cmd/hogevo/compare/lateral"
	"github.com/js-arias/hogevo/cmd/hogevo/compare/vertical"
)

var Command = &command.Command{
	Usage: "compare <command> [<argument>...]",
	Short: "commands to compare genomes",
}

func init() {
	Command.Add(lateral.Command)
	Command.Add(vertical.Command)
}
