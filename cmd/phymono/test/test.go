// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package test implements a command to test
// the monophyly of species
// in a collection of gene trees.
package test

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phymono/genetree"
	"github.com/js-arias/phymono/monophyly"
	"github.com/js-arias/phymono/species"
)

var Command = &command.Command{
	Usage: `test [--dir <directory>] [--ext <pattern>] [--min <number>]
	[--plot <file>] <traits-file> <trees-directory>`,
	Short: "test species monophyly in gene trees",
	Long: `
Command test reads a traits file that assigns individuals to species, and a
directory with gene tree files, and for each gene tree file, tests if the
species are monophyletic.

This is the main command of PhyMono: 'phymono test <traits-file>
<trees-directory>' runs the whole analysis. Exactly two arguments are
required; with any other number of arguments the command prints its usage and
exits with an error.

The first argument of the command is the name of the traits file. See
'phymono help traits-file' for the format of the file.

The second argument of the command is the directory with the gene tree files.
By default, any file with an extension that starts with ".tr" will be read.
Use the flag --ext to define a different file pattern. See
'phymono help tree-files' for the format of the files.

A species is tested in a gene tree file only if at least two individuals of
the species are found in the file. Use the flag --min to set a larger
minimum.

The results are written in two files, "results_taxa_monophyly.txt" with the
proportion of gene trees in which each species is monophyletic, and
"results_loci_nonmonphyly.txt" with the loci in which one or more species are
not monophyletic. See 'phymono help results' for the format of the files. By
default, the files are written in the current directory. Use the flag --dir to
set a different output directory.

If the flag --plot is defined, a bar chart with the proportion of monophyletic
gene trees of each species will be saved in the indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outDir string
var pattern string
var minFlag int
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outDir, "dir", ".", "")
	c.Flags().StringVar(&pattern, "ext", genetree.DefaultPattern, "")
	c.Flags().IntVar(&minFlag, "min", monophyly.MinSample, "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 2 {
		return c.UsageError("expecting traits file and trees directory")
	}
	if minFlag < monophyly.MinSample {
		msg := fmt.Sprintf("flag --min must be at least %d", monophyly.MinSample)
		return c.UsageError(msg)
	}

	m, err := readTraits(args[0])
	if err != nil {
		return err
	}
	for _, id := range m.Dups() {
		sp, _ := m.Species(id)
		fmt.Fprintf(c.Stderr(), "warning: individual %q defined more than once in %q, using species %q\n", id, args[0], sp)
	}

	files, err := genetree.Files(args[1], pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(c.Stderr(), "warning: no tree files found in %q\n", args[1])
	}

	r := monophyly.NewResults()
	for _, name := range files {
		f, err := genetree.ReadFile(name)
		if err != nil {
			return err
		}
		l, err := monophyly.EvaluateFile(m, f, minFlag)
		if err != nil {
			return err
		}
		if !r.Add(l) {
			fmt.Fprintf(c.Stderr(), "warning: locus %q found more than once, file %q\n", l.Name(), name)
		}
	}

	if err := r.WriteFiles(outDir); err != nil {
		return err
	}

	if plotFile != "" {
		if err := r.Plot(plotFile); err != nil {
			return fmt.Errorf("while plotting %q: %v", plotFile, err)
		}
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
