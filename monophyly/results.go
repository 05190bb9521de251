// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package monophyly

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Results accumulates the monophyly tests
// over a set of loci.
type Results struct {
	species map[string][]float64
	loci    map[string]NonMono
	names   map[string]bool
}

// NonMono is the record of the species
// that are not monophyletic in a locus.
type NonMono struct {
	// Species are the labels
	// of the non-monophyletic species.
	Species []string

	// Prop is the proportion of tested species
	// that are not monophyletic.
	Prop float64
}

// NewResults creates a new empty result set.
func NewResults() *Results {
	return &Results{
		species: make(map[string][]float64),
		loci:    make(map[string]NonMono),
		names:   make(map[string]bool),
	}
}

// Add adds the tests of a locus to the results.
// It returns false if a locus with the same name
// was already added.
// In that case,
// if the new locus has non-monophyletic species,
// its record replaces the old one.
func (r *Results) Add(l *Locus) bool {
	for sp, f := range l.freq {
		r.species[sp] = append(r.species[sp], f)
	}

	isNew := !r.names[l.name]
	r.names[l.name] = true

	if sp, prop := l.NonMonophyletic(); len(sp) > 0 {
		r.loci[l.name] = NonMono{
			Species: sp,
			Prop:    prop,
		}
	}
	return isNew
}

// Species returns the species
// tested in at least one gene tree file.
func (r *Results) Species() []string {
	sp := make([]string, 0, len(r.species))
	for s, v := range r.species {
		if len(v) == 0 {
			continue
		}
		sp = append(sp, s)
	}
	slices.Sort(sp)
	return sp
}

// Freqs returns the frequency of monophyly
// of a species
// in each gene tree file in which it was tested.
func (r *Results) Freqs(sp string) []float64 {
	return slices.Clone(r.species[sp])
}

// Proportion returns the proportion of gene tree files
// in which a species is monophyletic in all the trees,
// and the number of gene tree files
// in which the species was tested.
func (r *Results) Proportion(sp string) (float64, int) {
	v := r.species[sp]
	if len(v) == 0 {
		return 0, 0
	}

	mono := make([]float64, len(v))
	for i, f := range v {
		if f == 1 {
			mono[i] = 1
		}
	}
	return stat.Mean(mono, nil), len(v)
}

// Loci returns the names of the loci
// with non-monophyletic species,
// sorted from the highest proportion
// of non-monophyletic species
// to the lowest one.
// Loci with the same proportion
// are sorted by name.
func (r *Results) Loci() []string {
	loci := make([]string, 0, len(r.loci))
	for l := range r.loci {
		loci = append(loci, l)
	}
	slices.SortFunc(loci, func(a, b string) int {
		if c := cmp.Compare(r.loci[b].Prop, r.loci[a].Prop); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return loci
}

// NonMono returns the record of non-monophyletic species
// of a locus.
func (r *Results) NonMono(locus string) (NonMono, bool) {
	nm, ok := r.loci[locus]
	return nm, ok
}
