// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package monophyly evaluates the monophyly of species
// in a collection of gene trees.
package monophyly

import (
	"fmt"
	"slices"

	"github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/phymono/clade"
	"github.com/js-arias/phymono/genetree"
	"github.com/js-arias/phymono/species"
)

// MinSample is the minimum number of individuals
// of a species
// that must be sampled in a gene tree
// to test its monophyly.
const MinSample = 2

// Sampling is the set of individuals of each species
// sampled in a gene tree.
type Sampling map[string][]string

// Sample returns the individuals of each species
// found in a set of terminals.
// All terminals must be assigned to a species.
func Sample(m *species.Map, terms []string) (Sampling, error) {
	s := make(Sampling)
	for _, tm := range terms {
		sp, ok := m.Species(tm)
		if !ok {
			return nil, fmt.Errorf("individual %q not in traits table", tm)
		}
		s[sp] = append(s[sp], tm)
	}
	return s, nil
}

// A Locus is the result of the monophyly test
// for the species sampled in a gene tree file.
type Locus struct {
	name string

	// frequency of monophyly for each tested species
	freq map[string]float64
}

// Evaluate tests the monophyly of the species
// sampled in a set of trees of a locus.
// Only species with at least min individuals
// are tested.
// If min is smaller than MinSample,
// MinSample will be used.
func Evaluate(name string, s Sampling, ts []*tree.Tree, min int) *Locus {
	if min < MinSample {
		min = MinSample
	}

	l := &Locus{
		name: name,
		freq: make(map[string]float64),
	}
	for sp, ids := range s {
		if len(ids) < min {
			continue
		}
		l.freq[sp] = clade.Frequency(ts, ids)
	}
	return l
}

// EvaluateFile tests the monophyly of the species
// sampled in a gene tree file.
func EvaluateFile(m *species.Map, f *genetree.File, min int) (*Locus, error) {
	s, err := Sample(m, f.Terms())
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", f.Path(), err)
	}
	return Evaluate(f.Locus(), s, f.Trees(), min), nil
}

// Name returns the name of the locus.
func (l *Locus) Name() string {
	return l.name
}

// Species returns the tested species.
func (l *Locus) Species() []string {
	sp := make([]string, 0, len(l.freq))
	for s := range l.freq {
		sp = append(sp, s)
	}
	slices.Sort(sp)
	return sp
}

// Freq returns the frequency of trees
// in which a species is monophyletic.
// The second value is false
// if the species was not tested.
func (l *Locus) Freq(sp string) (float64, bool) {
	f, ok := l.freq[sp]
	return f, ok
}

// Tested returns the number of tested species.
func (l *Locus) Tested() int {
	return len(l.freq)
}

// NonMonophyletic returns the species
// that are not monophyletic in any tree of the locus,
// and the proportion of those species
// over all tested species.
func (l *Locus) NonMonophyletic() ([]string, float64) {
	var sp []string
	for s, f := range l.freq {
		if f == 0 {
			sp = append(sp, s)
		}
	}
	if len(sp) == 0 {
		return nil, 0
	}
	slices.Sort(sp)
	return sp, float64(len(sp)) / float64(len(l.freq))
}
