// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the terminals of a gene tree file.
package terms

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phymono/clade"
	"github.com/js-arias/phymono/genetree"
	"github.com/js-arias/phymono/species"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--traits <file>] [--splits] <tree-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads a gene tree file and prints the name of the terminals in
the standard output.

The argument of the command is the name of the gene tree file.

If the flag --traits is defined with a traits file, the species of each
terminal will be printed after the terminal name. Terminals without a species
will be marked with a dash.

If the flag --splits is set, instead of the terminals, the non-trivial
bipartitions of each tree in the file will be printed, one per line. Only the
side of the bipartition that does not include the first terminal (in
lexicographic order) is printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var traitsFile string
var splitsFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&traitsFile, "traits", "", "")
	c.Flags().BoolVar(&splitsFlag, "splits", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	f, err := genetree.ReadFile(args[0])
	if err != nil {
		return err
	}

	if splitsFlag {
		for i, t := range f.Trees() {
			for _, s := range clade.Splits(t) {
				fmt.Fprintf(c.Stdout(), "%s\t%d\t%s\n", f.Locus(), i+1, strings.Join(s, ","))
			}
		}
		return nil
	}

	terms := f.Terms()
	if traitsFile == "" {
		for _, tm := range terms {
			fmt.Fprintf(c.Stdout(), "%s\n", tm)
		}
		return nil
	}

	m, err := readTraits(traitsFile)
	if err != nil {
		return err
	}

	// sort by species, then by terminal
	sp := make(map[string]string, len(terms))
	for _, tm := range terms {
		s, ok := m.Species(tm)
		if !ok {
			s = "-"
		}
		sp[tm] = s
	}
	slices.SortStableFunc(terms, func(a, b string) int {
		return strings.Compare(sp[a], sp[b])
	})
	for _, tm := range terms {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", tm, sp[tm])
	}
	return nil
}

func readTraits(name string) (*species.Map, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := species.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, nil
}
