// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clade implements tests of monophyly
// on unrooted trees.
//
// A set of terminals is monophyletic
// if there is an edge of the tree
// that separates that set from the rest of the terminals,
// i.e., if the set is one side of a bipartition of the tree.
// As trees are unrooted,
// the position of the root is ignored.
package clade

import (
	"cmp"
	"slices"

	"github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/phymono/genetree"
	"gonum.org/v1/gonum/stat"
)

// IsMonophyletic returns true
// if the terminals with the given labels
// are separated from all other terminals of the tree
// by a single edge.
//
// If a label is not a terminal of the tree,
// the set is not monophyletic.
// The set of all terminals is always monophyletic.
func IsMonophyletic(t *tree.Tree, labels []string) bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	if len(set) == 0 {
		return false
	}

	seen := make(map[string]bool, len(set))
	var out *tree.Node
	for _, n := range genetree.Terminals(t) {
		if set[n.Name()] {
			seen[n.Name()] = true
			continue
		}
		if out == nil {
			out = n
		}
	}
	if len(seen) < len(set) {
		return false
	}
	if out == nil {
		return true
	}

	// Rooting the tree at a terminal outside the set,
	// the set is monophyletic
	// if a node has exactly the set as its descendant terminals.
	c := &counter{
		set:  set,
		root: t.Root(),
	}
	c.visit(out, nil)
	return c.found
}

type counter struct {
	set   map[string]bool
	root  *tree.Node
	found bool
}

func (c *counter) visit(n, from *tree.Node) (in, total int) {
	if from != nil && n.Tip() && n != c.root {
		total = 1
		if c.set[n.Name()] {
			in = 1
		}
	} else {
		for _, x := range n.Neigh() {
			if x == from {
				continue
			}
			i, t := c.visit(x, n)
			in += i
			total += t
		}
	}
	if in == len(c.set) && total == in {
		c.found = true
	}
	return in, total
}

// Frequency returns the proportion of trees
// in which the terminals with the given labels
// are monophyletic.
func Frequency(ts []*tree.Tree, labels []string) float64 {
	if len(ts) == 0 {
		return 0
	}

	v := make([]float64, 0, len(ts))
	for _, t := range ts {
		if IsMonophyletic(t, labels) {
			v = append(v, 1)
			continue
		}
		v = append(v, 0)
	}
	return stat.Mean(v, nil)
}

// Splits returns the non-trivial bipartitions of a tree.
// Each bipartition is given by the sorted labels
// of the side that does not include
// the first terminal of the tree
// (in lexicographic order).
// Trivial bipartitions,
// those that separate a single terminal,
// are ignored.
func Splits(t *tree.Tree) [][]string {
	tips := genetree.Terminals(t)
	if len(tips) < 4 {
		return nil
	}
	root := slices.MinFunc(tips, func(a, b *tree.Node) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	var splits [][]string
	var desc func(n, from *tree.Node) []string
	desc = func(n, from *tree.Node) []string {
		if from != nil && n.Tip() && n != t.Root() {
			return []string{n.Name()}
		}
		var terms []string
		for _, x := range n.Neigh() {
			if x == from {
				continue
			}
			terms = append(terms, desc(x, n)...)
		}
		if from != nil && len(terms) > 1 && len(terms) < len(tips)-1 {
			s := slices.Clone(terms)
			slices.Sort(s)
			splits = append(splits, s)
		}
		return terms
	}
	desc(root, nil)

	slices.SortFunc(splits, slices.Compare[[]string])
	return slices.CompactFunc(splits, slices.Equal[[]string])
}
