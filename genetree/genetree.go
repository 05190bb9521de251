// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genetree reads gene tree files
// in newick format.
//
// A gene tree file contains one or more trees
// for a single locus.
// Labels of the terminals are kept as found in the file,
// so underscores are not converted into spaces.
package genetree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// DefaultPattern is the default pattern
// used to find tree files in a directory.
const DefaultPattern = "*.tr*"

// File is a set of trees
// read from a single file.
type File struct {
	locus string
	path  string
	trees []*tree.Tree
}

// Locus returns the name of the locus of the file.
func (f *File) Locus() string {
	return f.locus
}

// Path returns the path of the file.
func (f *File) Path() string {
	return f.path
}

// Trees returns the trees of the file.
func (f *File) Trees() []*tree.Tree {
	return f.trees
}

// Terms returns the taxon namespace of the file,
// i.e., the labels of the terminals
// found in any tree of the file.
func (f *File) Terms() []string {
	set := make(map[string]bool)
	for _, t := range f.trees {
		for _, n := range Terminals(t) {
			set[n.Name()] = true
		}
	}

	terms := make([]string, 0, len(set))
	for tm := range set {
		terms = append(terms, tm)
	}
	slices.Sort(terms)
	return terms
}

// ReadFile reads the trees
// from a file.
func ReadFile(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading %q: %v", name, err)
	}

	return &File{
		locus: Locus(name),
		path:  name,
		trees: ts,
	}, nil
}

// Read reads one or more newick trees
// from a reader.
// Each tree must end with a semicolon.
func Read(r io.Reader) ([]*tree.Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	stmts, err := split(string(b))
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, fmt.Errorf("no trees found")
	}

	ts := make([]*tree.Tree, 0, len(stmts))
	for i, s := range stmts {
		t, err := newick.NewParser(strings.NewReader(s)).Parse()
		if err != nil {
			return nil, fmt.Errorf("tree %d: %v", i+1, err)
		}
		for _, n := range Terminals(t) {
			if l, ok := unquote(n.Name()); ok {
				n.SetName(l)
			}
			if n.Name() == "" {
				return nil, fmt.Errorf("tree %d: terminal without label", i+1)
			}
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// Terminals returns the terminal nodes of a tree.
// A root with a single descendant
// is not a terminal.
func Terminals(t *tree.Tree) []*tree.Node {
	root := t.Root()
	tips := t.Tips()
	terms := make([]*tree.Node, 0, len(tips))
	for _, n := range tips {
		if n == root {
			continue
		}
		terms = append(terms, n)
	}
	return terms
}

// Unquote removes the single quotes of a quoted label.
// Two consecutive quotes inside the label
// are a literal quote.
func unquote(label string) (string, bool) {
	if len(label) < 2 || label[0] != '\'' || label[len(label)-1] != '\'' {
		return "", false
	}
	return strings.ReplaceAll(label[1:len(label)-1], "''", "'"), true
}

// Split returns the newick statements of a text,
// each one ending in a semicolon.
// Comments are removed.
// Semicolons inside quoted labels
// are not statement terminators.
func split(text string) ([]string, error) {
	var stmts []string
	var quoted bool
	var comment int
	var b strings.Builder
	for _, r := range text {
		switch {
		case quoted:
			if r == '\'' {
				quoted = false
			}
		case comment > 0:
			switch r {
			case '[':
				comment++
			case ']':
				comment--
			}
			continue
		case r == '[':
			comment++
			continue
		case r == '\'':
			quoted = true
		case r == ';':
			s := strings.TrimSpace(b.String())
			if s != "" {
				stmts = append(stmts, s+";")
			}
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quoted label")
	}
	if comment > 0 {
		return nil, fmt.Errorf("unterminated comment")
	}
	if rest := strings.TrimSpace(b.String()); rest != "" {
		return nil, fmt.Errorf("tree %d: expecting ';' at the end of the tree", len(stmts)+1)
	}
	return stmts, nil
}

// Locus returns the locus name
// from the path of a tree file:
// the base name of the file
// up to the first dot.
// If there is no dot,
// the whole base name is returned.
func Locus(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// Files returns the tree files in a directory
// that match a pattern.
// Hidden files,
// i.e., files with a name starting with a dot,
// are ignored.
// The files are sorted by name.
// If pattern is empty,
// DefaultPattern will be used.
func Files(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		// hidden files
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		st, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if !st.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	slices.Sort(files)
	return files, nil
}
