// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(resultsGuide)
	app.Add(traitsFileGuide)
	app.Add(treeFilesGuide)
}

var traitsFileGuide = &command.Command{
	Usage: "traits-file",
	Short: "about the traits file",
	Long: `
In PhyMono, the assignment of the sampled individuals to species is read from
a traits file. It is a plain text file in which each line has at least two
fields, separated by spaces or tabs:

	- the ID of the individual, as used in the gene trees
	- the label of the species

Any other field is ignored. Empty lines, and lines starting with '#' are
ignored.

Here is an example file:

	# individuals
	ind1	sp1
	ind2	sp1
	ind3	sp2

Every individual found in a gene tree must be defined in the traits file. If
an individual is defined more than once, the last definition will be used, and
a warning will be printed in the standard error.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about gene tree files",
	Long: `
In PhyMono, gene trees are read from a directory. Each file in the directory
with an extension starting with ".tr" (for example ".tre", ".tree" or ".tr")
is read as the gene trees of a single locus. The name of the locus is the
name of the file up to the first dot, so the file "locus1.fasta.tre" is the
locus "locus1".
Hidden files (files with a name starting with a dot) are ignored.

The trees must be in newick format, and each tree must end with a semicolon.
A file can contain more than one tree, for example, a set of bootstrap
replicates. Here is an example file:

	((ind1,ind2),(ind3,ind4));
	((ind1,ind3),(ind2,ind4));

Terminal labels are used as found in the file, in particular, underscores are
not converted into spaces. Quotes of single-quoted labels are removed, so
'ind_1' is the terminal ind_1. Branch lengths and comments are ignored, and trees
are always treated as unrooted.
	`,
}

var resultsGuide = &command.Command{
	Usage: "results",
	Short: "about the result files",
	Long: `
The command 'phymono test' writes two tab-delimited files.

The file "results_taxa_monophyly.txt" contains the following columns:

	- species                  the label of the species
	- proportion monophyletic  the proportion of gene tree files in which
	                           the species is monophyletic
	- N gene trees             the number of gene tree files in which the
	                           species was tested

A species is tested in a gene tree file if at least two of its individuals
are present in the file. Species that were never tested are not included.
Rows are sorted by species. Here is an example file:

	species	proportion monophyletic	N gene trees
	sp1	0.25	4
	sp2	0.33	3

The file "results_loci_nonmonphyly.txt" contains the following columns:

	- locus                         the name of the locus
	- proportion Not monophyletic   the proportion of tested species that
	                                are not monophyletic in the locus
	- species                       the non-monophyletic species

Only loci with at least one non-monophyletic species are included. Rows are
sorted from the highest proportion of non-monophyletic species to the lowest.
Here is an example file:

	locus	proportion Not monophyletic	species
	locus3	1.00	sp1, sp4
	locus2	0.67	sp1, sp2
	`,
}
