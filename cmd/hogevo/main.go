// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Hogevo is a tool to study the evolution of gene families.
package main

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/hogevo/cmd/hogevo/compare"
	"github.com/js-arias/hogevo/cmd/hogevo/data"
	"github.com/js-arias/hogevo/cmd/hogevo/genomes"
	"github.com/js-arias/hogevo/cmd/hogevo/profile"
	"github.com/js-arias/hogevo/logger"
	"go.uber.org/zap/zapcore"
)

var app = &command.Command{
	Usage: "hogevo <command> [<argument>...]",
	Short: "a tool to study the evolution of gene families",
}

func init() {
	app.Add(compare.Command)
	app.Add(data.Command)
	app.Add(genomes.Command)
	app.Add(profile.Command)
}

func main() {
	initLogger()
	defer logger.Sync()

	app.Main()
}

// InitLogger initializes the logger
// using the level defined
// by the HOGEVO_LOG environment variable.
// If the variable is undefined,
// the logger discards all messages.
func initLogger() {
	e := os.Getenv("HOGEVO_LOG")
	if e == "" {
		return
	}

	level := zapcore.WarnLevel
	if l, err := zapcore.ParseLevel(e); err == nil {
		level = l
	}
	if err := logger.Init(level); err != nil {
		fmt.Fprintf(os.Stderr, "hogevo: unable to start logger: %v\n", err)
	}
}
