// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package profile is a metapackage for commands
// that dealt with event profiles across a taxonomy.
package profile

import (
	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/cmd/hogevo/profile/draw"
	"github.com/js-arias/hogevo/cmd/hogevo/profile/events"
	"github.com/js-arias/hogevo/cmd/hogevo/profile/plotcmd"
	"github.com/js-arias/hogevo/cmd/hogevo/profile/stats"
)

var Command = &command.Command{
	Usage: "profile <command> [<argument>...]",
	Short: "commands for gene family event profiles",
}

func init() {
	Command.Add(draw.Command)
	Command.Add(events.Command)
	Command.Add(plotcmd.Command)
	Command.Add(stats.Command)
}
