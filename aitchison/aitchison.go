// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package aitchison implements the Aitchison distance
// between compositions
// (e.g., the percentages of taxa in a sample):
// the euclidean distance
// after a centered log-ratio transformation.
package aitchison

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Epsilon is the value used in place of zero
// before taking logarithms.
const Epsilon = 1e-9

// Func is a distance function between two vectors.
type Func func(u, v []float64) float64

// CLR returns the centered log-ratio transformation
// of a composition:
// the logarithm of each value,
// minus the mean of the logarithms.
// Zeros are replaced by Epsilon.
// The composition is not modified.
func CLR(v []float64) []float64 {
	t := make([]float64, len(v))
	if len(v) == 0 {
		return t
	}
	for i, x := range v {
		if x == 0 {
			x = Epsilon
		}
		t[i] = math.Log(x)
	}
	floats.AddConst(-stat.Mean(t, nil), t)
	return t
}

// Distance returns the Aitchison distance
// between two compositions.
// It panics if the compositions have different lengths.
//
// As the transformation is scale invariant,
// the distance between proportional compositions
// is 0.
func Distance(u, v []float64) float64 {
	if len(u) != len(v) {
		panic("aitchison: length mismatch")
	}
	return floats.Distance(CLR(u), CLR(v), 2)
}

// Pairwise returns a symmetric matrix
// with the distances between each pair of vectors.
// It returns nil if there are no vectors.
func Pairwise(vecs [][]float64, dist Func) *mat.SymDense {
	if len(vecs) == 0 {
		return nil
	}
	if dist == nil {
		dist = Distance
	}

	d := mat.NewSymDense(len(vecs), nil)
	for i := range vecs {
		for j := i + 1; j < len(vecs); j++ {
			d.SetSym(i, j, dist(vecs[i], vecs[j]))
		}
	}
	return d
}
