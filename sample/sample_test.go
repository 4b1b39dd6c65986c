// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxheat/sample"
	"github.com/js-arias/taxheat/taxon"
)

var (
	bacteroides = taxon.Hierarchy{"d__Bacteria", "p__Bacteroidota", "c__Bacteroidia", "o__Bacteroidales", "f__Bacteroidaceae", "g__Bacteroides"}
	anaerolinea = taxon.Hierarchy{"d__Bacteria", "p__Chloroflexi", "c__Anaerolineae", "o__Anaerolineales", "f__Anaerolineaceae", "g__uncultured"}
	clostridium = taxon.Hierarchy{"d__Bacteria", "p__Firmicutes", "c__Clostridia", "o__Clostridiales", "f__Clostridiaceae", "g__Clostridium"}
)

func TestSample(t *testing.T) {
	s, err := sample.New("AA1", []sample.Row{
		{Taxon: bacteroides, Abundance: 0.12},
		{Taxon: anaerolinea, Abundance: 0.01},
		{Taxon: bacteroides, Abundance: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Name() != "AA1" {
		t.Errorf("name: got %q, want %q", s.Name(), "AA1")
	}
	if s.Len() != 2 {
		t.Errorf("len: got %d, want %d", s.Len(), 2)
	}
	if a := s.Abundance(bacteroides.ID()); a != 0.12 {
		t.Errorf("abundance of %q: got %.6f, want %.6f", bacteroides.Name(), a, 0.12)
	}
	if a := s.Abundance(clostridium.ID()); a != 0 {
		t.Errorf("abundance of %q: got %.6f, want %.6f", clostridium.Name(), a, 0.0)
	}
	if s.Has(clostridium.ID()) {
		t.Errorf("taxon %q should not be observed", clostridium.Name())
	}

	if _, err := s.StrictAbundance(clostridium.ID()); !errors.Is(err, sample.ErrLookupMiss) {
		t.Errorf("strict lookup: got error %v, want %v", err, sample.ErrLookupMiss)
	}
	if a, err := s.StrictAbundance(anaerolinea.ID()); err != nil || a != 0.01 {
		t.Errorf("strict lookup: got %.6f (error %v), want %.6f", a, err, 0.01)
	}

	ids := []taxon.ID{bacteroides.ID(), anaerolinea.ID()}
	if got := s.IDs(); !reflect.DeepEqual(got, ids) {
		t.Errorf("ids: got %v, want %v", got, ids)
	}
}

func TestSampleIntegrity(t *testing.T) {
	for _, a := range []float64{-0.01, 1.2} {
		_, err := sample.New("AA1", []sample.Row{
			{Taxon: bacteroides, Abundance: 0.12},
			{Taxon: anaerolinea, Abundance: a},
		})
		if !errors.Is(err, taxon.ErrIntegrity) {
			t.Errorf("abundance %.2f: got error %v, want %v", a, err, taxon.ErrIntegrity)
		}
	}

	if _, err := sample.New("AA1", []sample.Row{{Taxon: bacteroides, Abundance: 1}}); err != nil {
		t.Errorf("abundance 1: unexpected error: %v", err)
	}
}

const abundanceTable = `# abundance table
domain	phylum	class	order	family	genus	AA1	BB2	CC01B
d__Bacteria	p__Bacteroidota	c__Bacteroidia	o__Bacteroidales	f__Bacteroidaceae	g__Bacteroides	0.12	0.003	0.2
d__Bacteria	p__Chloroflexi	c__Anaerolineae	o__Anaerolineales	f__Anaerolineaceae	g__uncultured	0.01	0.25	
d__Bacteria	p__Firmicutes	c__Clostridia	o__Clostridiales	f__Clostridiaceae	g__Clostridium	0	0.1	0.05
`

func TestReadTSV(t *testing.T) {
	cols, err := sample.Columns(strings.NewReader(abundanceTable))
	if err != nil {
		t.Fatalf("columns: unexpected error: %v", err)
	}
	if want := []string{"AA1", "BB2", "CC01B"}; !reflect.DeepEqual(cols, want) {
		t.Errorf("columns: got %v, want %v", cols, want)
	}

	ls, skipped, err := sample.ReadTSV(strings.NewReader(abundanceTable), []string{"CC01B", "AA1"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skipped) > 0 {
		t.Errorf("read: unexpected skipped samples %v", skipped)
	}
	testSamples(t, "read", ls, []string{"CC01B", "AA1"}, map[string][]float64{
		"CC01B": {0.2, 0, 0.05},
		"AA1":   {0.12, 0.01, 0},
	})

	var w bytes.Buffer
	if err := sample.TSV(&w, ls); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nl, _, err := sample.ReadTSV(strings.NewReader(w.String()), nil, true)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testSamples(t, "tsv", nl, []string{"CC01B", "AA1"}, map[string][]float64{
		"CC01B": {0.2, 0, 0.05},
		"AA1":   {0.12, 0.01, 0},
	})
}

func TestReadTSVUnknown(t *testing.T) {
	names := []string{"AA1", "BB22", "CC01B", "ZZ9"}
	if _, _, err := sample.ReadTSV(strings.NewReader(abundanceTable), names, true); !errors.Is(err, sample.ErrUnknownSample) {
		t.Errorf("strict: got error %v, want %v", err, sample.ErrUnknownSample)
	}

	ls, skipped, err := sample.ReadTSV(strings.NewReader(abundanceTable), names, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, s := range ls {
		got = append(got, s.Name())
	}
	if want := []string{"AA1", "CC01B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("non strict: got samples %v, want %v", got, want)
	}
	if want := []string{"BB22", "ZZ9"}; !reflect.DeepEqual(skipped, want) {
		t.Errorf("non strict: got skipped %v, want %v", skipped, want)
	}

	if _, _, err := sample.ReadTSV(strings.NewReader(abundanceTable), []string{"ZZ9", "ZZ9"}, false); err == nil {
		t.Errorf("repeated unknown sample: expecting error")
	}
}

func testSamples(t testing.TB, name string, ls []*sample.Sample, names []string, abund map[string][]float64) {
	t.Helper()

	if len(ls) != len(names) {
		t.Fatalf("%s: got %d samples, want %d", name, len(ls), len(names))
	}
	taxa := []taxon.Hierarchy{bacteroides, anaerolinea, clostridium}
	for i, s := range ls {
		if s.Name() != names[i] {
			t.Errorf("%s: sample %d: got %q, want %q", name, i, s.Name(), names[i])
		}
		for j, tx := range taxa {
			want := abund[s.Name()][j]
			if got := s.Abundance(tx.ID()); got != want {
				t.Errorf("%s: sample %q: taxon %q: got %.6f, want %.6f", name, s.Name(), tx.Name(), got, want)
			}
		}
	}
}
