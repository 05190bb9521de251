// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genetree_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phymono/genetree"
)

func TestRead(t *testing.T) {
	data := `((ind_1,ind_2),ind_3);
[a comment; with a semicolon]
(ind_1,(ind_2,ind_4));
`
	ts, err := genetree.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(ts) != 2 {
		t.Fatalf("trees: got %d, want %d", len(ts), 2)
	}

	var terms []string
	for _, n := range genetree.Terminals(ts[0]) {
		terms = append(terms, n.Name())
	}
	slices.Sort(terms)
	want := []string{"ind_1", "ind_2", "ind_3"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("terms: got %v, want %v", terms, want)
	}
}

func TestReadQuotedLabels(t *testing.T) {
	tests := map[string]struct {
		newick string
		want   []string
	}{
		"underscores": {"('ind_1',ind_2,ind_3);", []string{"ind_1", "ind_2", "ind_3"}},
		"spaces":      {"(('ind 1','ind 2'),ind_3);", []string{"ind 1", "ind 2", "ind_3"}},
	}

	for name, test := range tests {
		ts, err := genetree.Read(strings.NewReader(test.newick))
		if err != nil {
			t.Fatalf("%s: unable to read trees: %v", name, err)
		}
		var terms []string
		for _, n := range genetree.Terminals(ts[0]) {
			terms = append(terms, n.Name())
		}
		slices.Sort(terms)
		if !reflect.DeepEqual(terms, test.want) {
			t.Errorf("%s: terms: got %v, want %v", name, terms, test.want)
		}
	}
}

func TestReadUnaryRoot(t *testing.T) {
	ts, err := genetree.Read(strings.NewReader("(((a,b),(c,d)));"))
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}

	var terms []string
	for _, n := range genetree.Terminals(ts[0]) {
		terms = append(terms, n.Name())
	}
	slices.Sort(terms)
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("terms: got %v, want %v", terms, want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"empty":         "  \n",
		"no semicolon":  "((a,b),c)",
		"bad newick":    "((a,b),c;",
		"open comment":  "((a,b),c)[comment;",
		"trailing tree": "((a,b),c);\n(a,b",
	}
	for name, data := range tests {
		if _, err := genetree.Read(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "locus1.fasta.tre")
	if err := os.WriteFile(name, []byte("((ind1,ind2),ind3);\n((ind1,ind3),ind4);\n"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	f, err := genetree.ReadFile(name)
	if err != nil {
		t.Fatalf("unable to read file: %v", err)
	}
	if l := f.Locus(); l != "locus1" {
		t.Errorf("locus: got %q, want %q", l, "locus1")
	}
	if p := f.Path(); p != name {
		t.Errorf("path: got %q, want %q", p, name)
	}
	if n := len(f.Trees()); n != 2 {
		t.Errorf("trees: got %d, want %d", n, 2)
	}
	want := []string{"ind1", "ind2", "ind3", "ind4"}
	if g := f.Terms(); !reflect.DeepEqual(g, want) {
		t.Errorf("terms: got %v, want %v", g, want)
	}
}

func TestLocus(t *testing.T) {
	tests := map[string]string{
		"locus1.tre":             "locus1",
		"data/trees/L2.nex.tree": "L2",
		"/abs/path/L3":           "L3",
		"rel/L4.tr":              "L4",
		"trees/._L5.tre":         "",
	}
	for path, want := range tests {
		if g := genetree.Locus(path); g != want {
			t.Errorf("locus of %q: got %q, want %q", path, g, want)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.tre", "a.tree", "c.tr", "d.txt", "e.nwk", "._b.tre", ".hidden.tree"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("(a,b);\n"), 0644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "f.trees"), 0755); err != nil {
		t.Fatalf("unable to create directory: %v", err)
	}

	files, err := genetree.Files(dir, "")
	if err != nil {
		t.Fatalf("unable to list files: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.tree"),
		filepath.Join(dir, "b.tre"),
		filepath.Join(dir, "c.tr"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files: got %v, want %v", files, want)
	}

	files, err = genetree.Files(dir, "*.nwk")
	if err != nil {
		t.Fatalf("unable to list files: %v", err)
	}
	want = []string{filepath.Join(dir, "e.nwk")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files: got %v, want %v", files, want)
	}
}
