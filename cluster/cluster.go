// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster implements agglomerative hierarchical clustering
// using complete linkage.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Merge is a join of two clusters.
//
// Terminals are identified by its index
// in the distance matrix,
// and the cluster formed at merge i
// is identified as n+i,
// where n is the number of terminals.
type Merge struct {
	A, B   int
	Height float64
}

// Dendrogram is the result of a hierarchical clustering.
type Dendrogram struct {
	n      int
	merges []Merge
}

// Complete performs a complete linkage clustering
// of a distance matrix:
// the distance between two clusters
// is the largest distance between its members.
// When several pairs have the same distance,
// the first pair in matrix order is merged.
func Complete(d mat.Symmetric) *Dendrogram {
	n := d.SymmetricDim()
	dg := &Dendrogram{n: n}
	if n < 2 {
		return dg
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = d.At(i, j)
		}
	}

	// ids of the active clusters
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	// row of each active cluster
	// in the distance matrix
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	for len(active) > 1 {
		bi, bj := 0, 1
		best := math.Inf(1)
		for i := range active {
			for j := i + 1; j < len(active); j++ {
				if v := dist[rows[i]][rows[j]]; v < best {
					best = v
					bi, bj = i, j
				}
			}
		}

		dg.merges = append(dg.merges, Merge{
			A:      active[bi],
			B:      active[bj],
			Height: best,
		})

		// the new cluster uses the row of the first cluster
		ri, rj := rows[bi], rows[bj]
		for k := range active {
			rk := rows[k]
			if rk == ri || rk == rj {
				continue
			}
			v := math.Max(dist[ri][rk], dist[rj][rk])
			dist[ri][rk] = v
			dist[rk][ri] = v
		}

		active[bi] = n + len(dg.merges) - 1
		active = append(active[:bj], active[bj+1:]...)
		rows = append(rows[:bj], rows[bj+1:]...)
	}
	return dg
}

// Len returns the number of terminals.
func (dg *Dendrogram) Len() int {
	return dg.n
}

// Merges returns the merges of the clustering,
// in the order they were made.
func (dg *Dendrogram) Merges() []Merge {
	m := make([]Merge, len(dg.merges))
	copy(m, dg.merges)
	return m
}

// Order returns the terminals
// in the order of the dendrogram leaves.
func (dg *Dendrogram) Order() []int {
	if dg.n == 0 {
		return nil
	}
	if dg.n == 1 {
		return []int{0}
	}

	order := make([]int, 0, dg.n)
	var visit func(id int)
	visit = func(id int) {
		if id < dg.n {
			order = append(order, id)
			return
		}
		m := dg.merges[id-dg.n]
		visit(m.A)
		visit(m.B)
	}
	visit(dg.n + len(dg.merges) - 1)
	return order
}

func (dg *Dendrogram) height(id int) float64 {
	if id < dg.n {
		return 0
	}
	return dg.merges[id-dg.n].Height
}

// Newick returns the dendrogram
// as a parenthetical tree,
// using the heights of the merges as branch lengths.
// Branches shorter than min
// are set to min.
func (dg *Dendrogram) Newick(labels []string, min float64) (string, error) {
	if len(labels) != dg.n {
		return "", fmt.Errorf("cluster: got %d labels, want %d", len(labels), dg.n)
	}
	if dg.n == 0 {
		return "", errors.New("cluster: empty dendrogram")
	}

	var b strings.Builder
	var write func(id int, parent float64)
	write = func(id int, parent float64) {
		if id < dg.n {
			b.WriteString(cleanLabel(labels[id]))
		} else {
			m := dg.merges[id-dg.n]
			b.WriteString("(")
			write(m.A, m.Height)
			b.WriteString(",")
			write(m.B, m.Height)
			b.WriteString(")")
		}
		if parent < 0 {
			return
		}
		l := parent - dg.height(id)
		if l < min {
			l = min
		}
		b.WriteString(":")
		b.WriteString(strconv.FormatFloat(l, 'f', -1, 64))
	}
	write(dg.n+len(dg.merges)-1, -1)
	b.WriteString(";")
	return b.String(), nil
}

var labelReplacer = strings.NewReplacer(
	" ", "_",
	"(", "_",
	")", "_",
	",", "_",
	":", "_",
	";", "_",
	"'", "_",
	"[", "_",
	"]", "_",
)

func cleanLabel(l string) string {
	return labelReplacer.Replace(strings.TrimSpace(l))
}
