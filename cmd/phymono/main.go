// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyMono is a tool to evaluate
// the monophyly of species
// in a collection of gene trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phymono/cmd/phymono/spcmd"
	"github.com/js-arias/phymono/cmd/phymono/terms"
	"github.com/js-arias/phymono/cmd/phymono/test"
)

var app = &command.Command{
	Usage: "phymono <command> [<argument>...]",
	Short: "a tool to evaluate species monophyly in gene trees",
}

func init() {
	app.Add(spcmd.Command)
	app.Add(terms.Command)
	app.Add(test.Command)
}

func main() {
	app.Main()
}
