// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package aitchison_test

import (
	"math"
	"testing"

	"github.com/js-arias/taxheat/aitchison"
)

func TestCLR(t *testing.T) {
	v := []float64{1, math.E, math.E * math.E}
	got := aitchison.CLR(v)
	want := []float64{-1, 0, 1}
	for i, x := range want {
		if math.Abs(got[i]-x) > 1e-12 {
			t.Errorf("clr [%d]: got %.6f, want %.6f", i, got[i], x)
		}
	}
	if v[0] != 1 {
		t.Errorf("clr modified the composition: %v", v)
	}

	z := []float64{0, 5, 0}
	zt := aitchison.CLR(z)
	var sum float64
	for _, x := range zt {
		sum += x
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("clr of %v: sum %.6f, want 0", z, sum)
	}
	if z[0] != 0 {
		t.Errorf("clr modified zero values: %v", z)
	}
	if math.IsNaN(zt[0]) || math.IsInf(zt[0], 0) {
		t.Errorf("clr of zero: got %v", zt[0])
	}
}

func TestDistance(t *testing.T) {
	vecs := [][]float64{
		{5, 0, 30, 0},
		{0, 10, 20, 1.5},
		{12, 25, 0, 3},
		{0, 0, 0, 0},
	}

	for i, u := range vecs {
		if d := aitchison.Distance(u, u); d != 0 {
			t.Errorf("distance of %v with itself: got %.6f, want 0", u, d)
		}
		for _, v := range vecs[i+1:] {
			uv := aitchison.Distance(u, v)
			vu := aitchison.Distance(v, u)
			if uv != vu {
				t.Errorf("distance %v-%v: not symmetric: %.12f, %.12f", u, v, uv, vu)
			}
			if uv <= 0 {
				t.Errorf("distance %v-%v: got %.6f, want positive", u, v, uv)
			}
		}
	}

	// clr(1, e) = (-0.5, 0.5), clr(e, 1) = (0.5, -0.5)
	if d, want := aitchison.Distance([]float64{1, math.E}, []float64{math.E, 1}), math.Sqrt(2); math.Abs(d-want) > 1e-12 {
		t.Errorf("distance: got %.6f, want %.6f", d, want)
	}

	if d := aitchison.Distance([]float64{1, 2, 3}, []float64{2, 4, 6}); math.Abs(d) > 1e-12 {
		t.Errorf("distance of proportional vectors: got %.6f, want 0", d)
	}
}

func TestDistancePanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expecting panic on length mismatch")
		}
	}()
	aitchison.Distance([]float64{1, 2}, []float64{1, 2, 3})
}

func TestPairwise(t *testing.T) {
	vecs := [][]float64{
		{5, 0, 30},
		{0, 10, 20},
		{12, 25, 0},
	}
	d := aitchison.Pairwise(vecs, nil)
	if n := d.SymmetricDim(); n != len(vecs) {
		t.Fatalf("pairwise: got dimension %d, want %d", n, len(vecs))
	}
	for i := range vecs {
		for j := range vecs {
			want := aitchison.Distance(vecs[i], vecs[j])
			if got := d.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Errorf("pairwise [%d, %d]: got %.6f, want %.6f", i, j, got, want)
			}
		}
	}

	if aitchison.Pairwise(nil, nil) != nil {
		t.Errorf("pairwise of empty list: expecting nil")
	}
}
