// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annot_test

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"testing"

	"github.com/js-arias/taxheat/annot"
)

type index map[string][]string

func (idx index) Taxa(pathway string) []string {
	return idx[pathway]
}

func TestAnnotation(t *testing.T) {
	idx := index{
		"PWY-5430": {"g__Bacteroides", "g__Clostridium"},
		"PWY-1361": {"g__Clostridium", "g__Sarcina"},
		"PWY-7431": {"g__Prevotella"},
	}
	rows := []string{"g__Bacteroides", "g__Clostridium", "f__Anaerolineaceae", "g__Sarcina"}
	paths := []string{"PWY-5430", "PWY-1361", "PWY-7431"}

	a, err := annot.New(paths, idx, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := a.Pathways(); !reflect.DeepEqual(got, paths) {
		t.Errorf("pathways: got %v, want %v", got, paths)
	}
	if got := a.Rows(); !reflect.DeepEqual(got, rows) {
		t.Errorf("rows: got %v, want %v", got, rows)
	}

	want := [][]bool{
		{true, true, false, false},
		{false, true, false, true},
		{false, false, false, false},
	}
	for p := range paths {
		if c := a.PathwayColor(p); c != annot.Palette[p] {
			t.Errorf("pathway %q: got color %v, want %v", paths[p], c, annot.Palette[p])
		}
		col := a.Column(p)
		for r := range rows {
			if a.Has(r, p) != want[p][r] {
				t.Errorf("pathway %q: row %q: got %v, want %v", paths[p], rows[r], a.Has(r, p), want[p][r])
			}
			var c color.Color = annot.Neutral
			if want[p][r] {
				c = annot.Palette[p]
			}
			if col[r] != c {
				t.Errorf("pathway %q: row %q: got color %v, want %v", paths[p], rows[r], col[r], c)
			}
		}
	}

	var w bytes.Buffer
	if err := a.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	wantTSV := "taxon\tPWY-5430\tPWY-1361\tPWY-7431\r\n" +
		"g__Bacteroides\t#fbb4ae\t#ffffff\t#ffffff\r\n" +
		"g__Clostridium\t#fbb4ae\t#b3cde3\t#ffffff\r\n" +
		"f__Anaerolineaceae\t#ffffff\t#ffffff\t#ffffff\r\n" +
		"g__Sarcina\t#ffffff\t#b3cde3\t#ffffff\r\n"
	if got := w.String(); got != wantTSV {
		t.Errorf("tsv: got %q, want %q", got, wantTSV)
	}
}

func TestTooManyPathways(t *testing.T) {
	var paths []string
	for i := 0; i <= len(annot.Palette); i++ {
		paths = append(paths, fmt.Sprintf("PWY-%d", i))
	}

	if _, err := annot.New(paths, index{}, []string{"g__Bacteroides"}); !errors.Is(err, annot.ErrTooManyPathways) {
		t.Errorf("got error %v, want %v", err, annot.ErrTooManyPathways)
	}
	if _, err := annot.New(paths[:len(annot.Palette)], index{}, []string{"g__Bacteroides"}); err != nil {
		t.Errorf("palette size: unexpected error: %v", err)
	}
}
