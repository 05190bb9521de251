// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package spcmd implements a command to print
// the species defined in a traits file.
package spcmd

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phymono/species"
)

var Command = &command.Command{
	Usage: "species [--count] <traits-file>",
	Short: "print the species of a traits file",
	Long: `
Command species reads a traits file and prints the assignment of individuals
to species as a tab-delimited table in the standard output.

The argument of the command is the name of the traits file.

If the flag --count is set, only the species, and the number of individuals
assigned to each species, will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var countFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&countFlag, "count", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting traits file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := species.ReadTable(f)
	if err != nil {
		return fmt.Errorf("when reading %q: %v", args[0], err)
	}

	if !countFlag {
		return m.TSV(c.Stdout())
	}

	fmt.Fprintf(c.Stdout(), "species\tindividuals\n")
	for _, sp := range m.Labels() {
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", sp, len(m.Members(sp)))
	}
	return nil
}
