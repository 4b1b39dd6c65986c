// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxheat/matrix"
	"github.com/js-arias/taxheat/sample"
	"github.com/js-arias/taxheat/taxon"
)

var (
	bacteroides = taxon.Hierarchy{"d__Bacteria", "p__Bacteroidota", "c__Bacteroidia", "o__Bacteroidales", "f__Bacteroidaceae", "g__Bacteroides"}
	anaerolinea = taxon.Hierarchy{"d__Bacteria", "p__Chloroflexi", "c__Anaerolineae", "o__Anaerolineales", "f__Anaerolineaceae", "g__uncultured"}
	clostridium = taxon.Hierarchy{"d__Bacteria", "p__Firmicutes", "c__Clostridia", "o__Clostridiales", "f__Clostridiaceae", "g__Clostridium"}
	sarcina     = taxon.Hierarchy{"d__Bacteria", "p__Firmicutes", "c__Clostridia", "o__Clostridiales", "f__Clostridiaceae", "g__Sarcina"}
	otherClost  = taxon.Hierarchy{"d__Bacteria", "p__Firmicutes", "c__Clostridia", "o__Eubacteriales", "f__uncultured", "g__Clostridium"}
	firmicutes  = taxon.Hierarchy{"d__Bacteria", "p__Firmicutes", "__", "__", "__", "__"}
)

func newSample(t testing.TB, name string, rows ...sample.Row) *sample.Sample {
	t.Helper()

	s, err := sample.New(name, rows)
	if err != nil {
		t.Fatalf("unable to create sample %q: %v", name, err)
	}
	return s
}

func TestBuild(t *testing.T) {
	s1 := newSample(t, "AA1",
		sample.Row{Taxon: bacteroides, Abundance: 0.005},
		sample.Row{Taxon: anaerolinea, Abundance: 0.002},
	)
	s2 := newSample(t, "BB2",
		sample.Row{Taxon: clostridium, Abundance: 0.3},
		sample.Row{Taxon: bacteroides, Abundance: 0.0002},
	)
	s3 := newSample(t, "CC01B",
		sample.Row{Taxon: bacteroides, Abundance: 0.05},
		sample.Row{Taxon: anaerolinea, Abundance: 0.01},
	)

	m, err := matrix.Build([]*sample.Sample{s1, s2, s3}, nil, matrix.Options{Threshold: 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testMatrix(t, "build", m,
		[]string{"g__Bacteroides", "g__Clostridium"},
		[]string{"AA1", "BB2", "CC01B"},
		[][]float64{
			{0, 0, 5},
			{0, 30, 0},
		},
	)
}

func TestBuildColumnOrder(t *testing.T) {
	s1 := newSample(t, "AA1",
		sample.Row{Taxon: bacteroides, Abundance: 0.2},
	)
	s2 := newSample(t, "BB2",
		sample.Row{Taxon: clostridium, Abundance: 0.3},
		sample.Row{Taxon: bacteroides, Abundance: 0.1},
	)

	m, err := matrix.Build([]*sample.Sample{s2, s1}, nil, matrix.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testMatrix(t, "column order", m,
		[]string{"g__Clostridium", "g__Bacteroides"},
		[]string{"BB2", "AA1"},
		[][]float64{
			{30, 0},
			{10, 20},
		},
	)
}

func TestBuildUniverse(t *testing.T) {
	s1 := newSample(t, "AA1",
		sample.Row{Taxon: bacteroides, Abundance: 0.2},
		sample.Row{Taxon: clostridium, Abundance: 0.1},
	)
	other := newSample(t, "other",
		sample.Row{Taxon: sarcina, Abundance: 0.1},
		sample.Row{Taxon: clostridium, Abundance: 0.1},
		sample.Row{Taxon: bacteroides, Abundance: 0.1},
	)

	u := matrix.NewUniverse([]*sample.Sample{other})
	if u.Len() != 3 {
		t.Errorf("universe: got %d taxa, want %d", u.Len(), 3)
	}

	m, err := matrix.Build([]*sample.Sample{s1}, u, matrix.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testMatrix(t, "universe", m,
		[]string{"g__Clostridium", "g__Bacteroides"},
		[]string{"AA1"},
		[][]float64{
			{10},
			{20},
		},
	)
}

func TestBuildAggregate(t *testing.T) {
	s1 := newSample(t, "AA1",
		sample.Row{Taxon: clostridium, Abundance: 0.003},
		sample.Row{Taxon: bacteroides, Abundance: 0.05},
		sample.Row{Taxon: otherClost, Abundance: 0.008},
		sample.Row{Taxon: sarcina, Abundance: 0.009},
	)
	s2 := newSample(t, "BB2",
		sample.Row{Taxon: sarcina, Abundance: 0.004},
		sample.Row{Taxon: firmicutes, Abundance: 0.2},
	)
	samples := []*sample.Sample{s1, s2}

	m, err := matrix.Build(samples, nil, matrix.Options{Threshold: 0.01, Level: "genus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testMatrix(t, "genus", m,
		[]string{"g__Clostridium", "g__Bacteroides", "p__Firmicutes"},
		[]string{"AA1", "BB2"},
		[][]float64{
			{1.1, 0},
			{5, 0},
			{0, 20},
		},
	)

	m, err = matrix.Build(samples, nil, matrix.Options{Threshold: 0.01, Level: "Family"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testMatrix(t, "family", m,
		[]string{"f__Clostridiaceae", "f__Bacteroidaceae", "p__Firmicutes"},
		[]string{"AA1", "BB2"},
		[][]float64{
			{1.2, 0},
			{5, 0},
			{0, 20},
		},
	)

	m, err = matrix.Build(samples, nil, matrix.Options{Threshold: 0.01, Level: "phylum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testMatrix(t, "phylum", m,
		[]string{"p__Firmicutes", "p__Bacteroidota"},
		[]string{"AA1", "BB2"},
		[][]float64{
			{2, 20.4},
			{5, 0},
		},
	)
}

func TestBuildErrors(t *testing.T) {
	s1 := newSample(t, "AA1", sample.Row{Taxon: bacteroides, Abundance: 0.2})
	samples := []*sample.Sample{s1}

	if _, err := matrix.Build(samples, nil, matrix.Options{Level: "species"}); !errors.Is(err, taxon.ErrLevel) {
		t.Errorf("level: got error %v, want %v", err, taxon.ErrLevel)
	}
	if _, err := matrix.Build(nil, nil, matrix.Options{}); err == nil {
		t.Errorf("no samples: expecting error")
	}
	if _, err := matrix.Build([]*sample.Sample{s1, s1}, nil, matrix.Options{}); err == nil {
		t.Errorf("repeated sample: expecting error")
	}
	if _, err := matrix.Build(samples, nil, matrix.Options{Threshold: 1.5}); err == nil {
		t.Errorf("threshold: expecting error")
	}
}

func TestRename(t *testing.T) {
	s1 := newSample(t, "AA1", sample.Row{Taxon: bacteroides, Abundance: 0.2})
	s2 := newSample(t, "BB2", sample.Row{Taxon: bacteroides, Abundance: 0.1})
	m, err := matrix.Build([]*sample.Sample{s1, s2}, nil, matrix.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nm, err := m.Rename([]string{"Hannah1", "Hannah2"})
	if err != nil {
		t.Fatalf("rename: unexpected error: %v", err)
	}
	testMatrix(t, "rename", nm,
		[]string{"g__Bacteroides"},
		[]string{"Hannah1", "Hannah2"},
		[][]float64{{20, 10}},
	)
	if want := []string{"AA1", "BB2"}; !reflect.DeepEqual(m.Samples(), want) {
		t.Errorf("rename: original columns modified: got %v, want %v", m.Samples(), want)
	}

	if _, err := m.Rename([]string{"Hannah1"}); err == nil {
		t.Errorf("rename: expecting error")
	}
}

func TestTSV(t *testing.T) {
	s1 := newSample(t, "AA1", sample.Row{Taxon: bacteroides, Abundance: 0.2})
	m, err := matrix.Build([]*sample.Sample{s1}, nil, matrix.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	want := "taxon\tAA1\r\ng__Bacteroides\t20.000000\r\n"
	if got := w.String(); got != want {
		t.Errorf("tsv: got %q, want %q", got, want)
	}
	if !strings.HasPrefix(w.String(), "taxon") {
		t.Errorf("tsv: missing header")
	}
}

func testMatrix(t testing.TB, name string, m *matrix.Matrix, rows, cols []string, vals [][]float64) {
	t.Helper()

	if got := m.Rows(); !reflect.DeepEqual(got, rows) {
		t.Errorf("%s: rows: got %v, want %v", name, got, rows)
	}
	if got := m.Samples(); !reflect.DeepEqual(got, cols) {
		t.Errorf("%s: columns: got %v, want %v", name, got, cols)
	}
	r, c := m.Dims()
	if r != len(rows) || c != len(cols) {
		t.Fatalf("%s: dims: got %d x %d, want %d x %d", name, r, c, len(rows), len(cols))
	}

	for i, row := range vals {
		for j, v := range row {
			if got := m.At(i, j); math.Abs(got-v) > 1e-9 {
				t.Errorf("%s: cell [%s, %s]: got %.6f, want %.6f", name, rows[i], cols[j], got, v)
			}
		}
		if got := m.Row(i); len(got) != len(cols) {
			t.Errorf("%s: row %d: got %d values, want %d", name, i, len(got), len(cols))
		}
	}
	for j := range cols {
		col := m.Column(j)
		for i, row := range vals {
			if math.Abs(col[i]-row[j]) > 1e-9 {
				t.Errorf("%s: column %s: row %s: got %.6f, want %.6f", name, cols[j], rows[i], col[i], row[j])
			}
		}
	}
}
