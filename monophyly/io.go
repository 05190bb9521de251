// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package monophyly

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File names of the reports.
const (
	SpeciesFile = "results_taxa_monophyly.txt"
	LociFile    = "results_loci_nonmonphyly.txt"
)

// WriteSpecies writes the proportion of gene tree files
// in which each species is monophyletic
// as a tab-delimited table.
//
// The table contains the following fields:
//
//   - species, the species label
//   - proportion monophyletic, the proportion of gene tree files
//     in which the species is monophyletic
//   - N gene trees, the number of gene tree files
//     in which the species was tested
//
// Species never tested are not included.
func (r *Results) WriteSpecies(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "species\tproportion monophyletic\tN gene trees\n")
	for _, sp := range r.Species() {
		prop, n := r.Proportion(sp)
		fmt.Fprintf(bw, "%s\t%.2f\t%d\n", sp, prop, n)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// WriteLoci writes the loci with non-monophyletic species
// as a tab-delimited table.
//
// The table contains the following fields:
//
//   - locus, the name of the locus
//   - proportion Not monophyletic, the proportion of tested species
//     that are not monophyletic
//   - species, the non-monophyletic species,
//     separated by commas
func (r *Results) WriteLoci(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "locus\tproportion Not monophyletic\tspecies\n")
	for _, l := range r.Loci() {
		nm := r.loci[l]
		fmt.Fprintf(bw, "%s\t%.2f\t%s\n", l, nm.Prop, strings.Join(nm.Species, ", "))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// WriteFiles writes both reports
// in a directory.
// Previous reports will be overwritten.
func (r *Results) WriteFiles(dir string) error {
	if err := writeFile(filepath.Join(dir, SpeciesFile), r.WriteSpecies); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, LociFile), r.WriteLoci); err != nil {
		return err
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
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

	if err := write(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
