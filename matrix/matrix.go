// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements an abundance matrix
// of the taxa observed in a set of samples.
//
// Rows of the matrix are taxa
// (or taxonomic groups),
// columns are samples,
// and values are percentages.
// Rows are kept in the order in which taxa are first observed,
// and columns in the order of the samples.
package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/js-arias/taxheat/sample"
	"github.com/js-arias/taxheat/taxon"
	"gonum.org/v1/gonum/floats"
)

// Universe is the ordered set of taxa
// observed in a collection of samples.
type Universe struct {
	ids []taxon.ID
	set map[taxon.ID]bool
}

// NewUniverse creates the universe of taxa
// from a list of samples.
// Taxa are stored in the order of the samples,
// and then in the order of observation
// in each sample.
func NewUniverse(samples []*sample.Sample) *Universe {
	u := &Universe{
		set: make(map[taxon.ID]bool),
	}
	for _, s := range samples {
		u.Add(s)
	}
	return u
}

// Add adds the taxa of a sample
// that are not already in the universe.
func (u *Universe) Add(s *sample.Sample) {
	for _, id := range s.IDs() {
		if u.set[id] {
			continue
		}
		u.set[id] = true
		u.ids = append(u.ids, id)
	}
}

// IDs returns the identities of the taxa in the universe.
func (u *Universe) IDs() []taxon.ID {
	ids := make([]taxon.ID, len(u.ids))
	copy(ids, u.ids)
	return ids
}

// Len returns the number of taxa in the universe.
func (u *Universe) Len() int {
	return len(u.ids)
}

// Options are the options used to build a matrix.
type Options struct {
	// Threshold is the minimum fraction
	// that a taxon must exceed in at least one sample
	// to be included in the matrix.
	// Values at or below the threshold
	// are stored as 0.
	Threshold float64

	// Level is the name of the taxonomic level
	// used to aggregate the taxa.
	// If empty,
	// taxa are not aggregated.
	Level string
}

// Matrix is an abundance matrix.
type Matrix struct {
	rows []string
	cols []string
	m    [][]float64
}

// Build builds an abundance matrix
// from a list of samples.
//
// If u is nil,
// the universe is build from the samples.
// Taxa of the universe not observed in any sample
// will be filtered by the threshold.
//
// If a taxonomic level is defined in the options,
// taxa will be grouped by its name at that level
// (using the nearest concrete name above it,
// if the level is a placeholder)
// and the abundances of the group will be summed
// before the threshold is applied.
func Build(samples []*sample.Sample, u *Universe, opt Options) (*Matrix, error) {
	if len(samples) == 0 {
		return nil, errors.New("matrix: no samples")
	}
	if math.IsNaN(opt.Threshold) || opt.Threshold < 0 || opt.Threshold >= 1 {
		return nil, fmt.Errorf("matrix: invalid threshold %g", opt.Threshold)
	}

	aggregate := opt.Level != ""
	var level taxon.Level
	if aggregate {
		var err error
		level, err = taxon.ParseLevel(opt.Level)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
	}

	cols := make([]string, 0, len(samples))
	for _, s := range samples {
		if slices.Contains(cols, s.Name()) {
			return nil, fmt.Errorf("matrix: sample %q repeated", s.Name())
		}
		cols = append(cols, s.Name())
	}

	if u == nil {
		u = NewUniverse(samples)
	}

	var rows []string
	var vals [][]float64
	groups := make(map[string]int)
	for _, id := range u.ids {
		v := make([]float64, len(samples))
		for j, s := range samples {
			v[j] = s.Abundance(id)
		}

		h := id.Hierarchy()
		if !aggregate {
			rows = append(rows, h.Name())
			vals = append(vals, v)
			continue
		}

		key := h.Fill().Level(level)
		if i, ok := groups[key]; ok {
			floats.Add(vals[i], v)
			continue
		}
		groups[key] = len(rows)
		rows = append(rows, key)
		vals = append(vals, v)
	}

	m := &Matrix{
		cols: cols,
	}
	for i, v := range vals {
		if floats.Max(v) <= opt.Threshold {
			continue
		}
		for j, a := range v {
			if a <= opt.Threshold {
				v[j] = 0
				continue
			}
			v[j] = a * 100
		}
		m.rows = append(m.rows, rows[i])
		m.m = append(m.m, v)
	}
	return m, nil
}

// At returns the value of a cell.
func (m *Matrix) At(r, c int) float64 {
	return m.m[r][c]
}

// Column returns the values of a sample column.
func (m *Matrix) Column(c int) []float64 {
	col := make([]float64, len(m.m))
	for i, r := range m.m {
		col[i] = r[c]
	}
	return col
}

// Dims returns the number of rows
// and columns of the matrix.
func (m *Matrix) Dims() (r, c int) {
	return len(m.rows), len(m.cols)
}

// Rename returns a new matrix
// with the sample columns relabeled.
func (m *Matrix) Rename(labels []string) (*Matrix, error) {
	if len(labels) != len(m.cols) {
		return nil, fmt.Errorf("matrix: got %d labels, want %d", len(labels), len(m.cols))
	}

	nm := &Matrix{
		rows: slices.Clone(m.rows),
		cols: slices.Clone(labels),
		m:    make([][]float64, len(m.m)),
	}
	for i, r := range m.m {
		nm.m[i] = slices.Clone(r)
	}
	return nm, nil
}

// Row returns the values of a taxon row.
func (m *Matrix) Row(r int) []float64 {
	return slices.Clone(m.m[r])
}

// Rows returns the names of the rows.
// Different taxa with the same display name
// are kept as different rows.
func (m *Matrix) Rows() []string {
	return slices.Clone(m.rows)
}

// Samples returns the names of the sample columns.
func (m *Matrix) Samples() []string {
	return slices.Clone(m.cols)
}

// TSV writes a matrix as a TSV file.
//
// The first column is the taxon name,
// and it is followed by a column for each sample.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, m.cols...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, r := range m.m {
		row := make([]string, 0, len(header))
		row = append(row, m.rows[i])
		for _, v := range r {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
