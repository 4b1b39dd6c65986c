// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster_test

import (
	"bytes"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/taxheat/cluster"
	"gonum.org/v1/gonum/mat"
)

func TestComplete(t *testing.T) {
	d := mat.NewSymDense(4, []float64{
		0, 5, 1, 6,
		5, 0, 4, 2,
		1, 4, 0, 7,
		6, 2, 7, 0,
	})
	dg := cluster.Complete(d)

	if n := dg.Len(); n != 4 {
		t.Errorf("len: got %d, want %d", n, 4)
	}

	want := []cluster.Merge{
		{A: 0, B: 2, Height: 1},
		{A: 1, B: 3, Height: 2},
		// complete linkage: max(d(0,3), d(2,3)) = 7
		{A: 4, B: 5, Height: 7},
	}
	if got := dg.Merges(); !reflect.DeepEqual(got, want) {
		t.Errorf("merges: got %v, want %v", got, want)
	}

	if got, want := dg.Order(), []int{0, 2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}

	nw, err := dg.Newick([]string{"a", "b", "c", "d"}, 0)
	if err != nil {
		t.Fatalf("newick: unexpected error: %v", err)
	}
	if want := "((a:1,c:1):6,(b:2,d:2):5);"; nw != want {
		t.Errorf("newick: got %q, want %q", nw, want)
	}
}

func TestCompleteTies(t *testing.T) {
	d := mat.NewSymDense(3, []float64{
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	})
	dg := cluster.Complete(d)
	want := []cluster.Merge{
		{A: 0, B: 1, Height: 0},
		{A: 3, B: 2, Height: 0},
	}
	if got := dg.Merges(); !reflect.DeepEqual(got, want) {
		t.Errorf("merges: got %v, want %v", got, want)
	}

	nw, err := dg.Newick([]string{"Bacteroides sp.", "g__Clostridium", "x:y"}, 0.5)
	if err != nil {
		t.Fatalf("newick: unexpected error: %v", err)
	}
	if want := "((Bacteroides_sp.:0.5,g__Clostridium:0.5):0.5,x_y:0.5);"; nw != want {
		t.Errorf("newick: got %q, want %q", nw, want)
	}
}

func TestSingleTerminal(t *testing.T) {
	dg := cluster.Complete(mat.NewSymDense(1, nil))
	if got := dg.Merges(); len(got) != 0 {
		t.Errorf("merges: got %v, want none", got)
	}
	if got, want := dg.Order(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}
	nw, err := dg.Newick([]string{"a"}, 0)
	if err != nil {
		t.Fatalf("newick: unexpected error: %v", err)
	}
	if nw != "a;" {
		t.Errorf("newick: got %q, want %q", nw, "a;")
	}

	if _, _, err := dg.Tree("samples", []string{"a"}); err == nil {
		t.Errorf("tree: expecting error on a single terminal")
	}
}

func TestNewickLabels(t *testing.T) {
	d := mat.NewSymDense(2, []float64{0, 1, 1, 0})
	dg := cluster.Complete(d)
	if _, err := dg.Newick([]string{"a"}, 0); err == nil {
		t.Errorf("newick: expecting error on wrong number of labels")
	}
}

func TestTree(t *testing.T) {
	d := mat.NewSymDense(4, []float64{
		0, 5, 1, 6,
		5, 0, 4, 2,
		1, 4, 0, 7,
		6, 2, 7, 0,
	})
	dg := cluster.Complete(d)

	labels := []string{"CC01B", "g__Bacteroides", "Sample 2", "sample 2"}
	c, terms, err := dg.Tree("samples", labels)
	if err != nil {
		t.Fatalf("tree: unexpected error: %v", err)
	}
	want := []string{"Cc01b", "G__bacteroides", "Sample 2", "Sample 2 4"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("terms: got %v, want %v", terms, want)
	}

	tr := c.Tree("samples")
	if tr == nil {
		t.Fatalf("tree: tree %q not found", "samples")
	}
	sorted := slices.Clone(terms)
	slices.Sort(sorted)
	if got := tr.Terms(); !reflect.DeepEqual(got, sorted) {
		t.Errorf("tree terminals: got %v, want %v", got, sorted)
	}

	if a := tr.Age(tr.Root()); a != 7_000_000 {
		t.Errorf("root age: got %d, want %d", a, 7_000_000)
	}
	parents := map[string]int64{
		"Cc01b":          1_000_000,
		"G__bacteroides": 2_000_000,
		"Sample 2":       1_000_000,
		"Sample 2 4":     2_000_000,
	}
	for _, term := range terms {
		id, ok := tr.TaxNode(term)
		if !ok {
			t.Errorf("terminal %q: not found", term)
			continue
		}
		if a := tr.Age(id); a != 0 {
			t.Errorf("terminal %q: got age %d, want 0", term, a)
		}
		if a := tr.Age(tr.Parent(id)); a != parents[term] {
			t.Errorf("terminal %q: got parent age %d, want %d", term, a, parents[term])
		}
	}

	var w bytes.Buffer
	if err := cluster.WriteTerms(&w, terms, labels); err != nil {
		t.Fatalf("write terms: unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(w.String()), "\r\n")
	if len(lines) != len(labels)+1 {
		t.Fatalf("write terms: got %d lines, want %d", len(lines), len(labels)+1)
	}
	for i, ln := range lines[1:] {
		f := strings.Split(ln, "\t")
		if f[1] != terms[i] || f[2] != labels[i] {
			t.Errorf("write terms: row %d: got %q, want %q -> %q", i, ln, terms[i], labels[i])
		}
	}
	if err := cluster.WriteTerms(&w, terms, labels[:2]); err == nil {
		t.Errorf("write terms: expecting error on wrong number of labels")
	}
}

func TestTreeZeroHeights(t *testing.T) {
	dg := cluster.Complete(mat.NewSymDense(3, nil))
	c, terms, err := dg.Tree("zero", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("tree: unexpected error: %v", err)
	}
	tr := c.Tree("zero")
	for _, term := range terms {
		id, ok := tr.TaxNode(term)
		if !ok {
			t.Errorf("terminal %q: not found", term)
			continue
		}
		if a := tr.Age(id); a != 0 {
			t.Errorf("terminal %q: got age %d, want 0", term, a)
		}
	}
}

func TestTerms(t *testing.T) {
	got := cluster.Terms([]string{"x", "X", "x 2", " ", "y"})
	want := []string{"x", "X 2", "x 2 3", "terminal", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms: got %v, want %v", got, want)
	}
}
