// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annot implements color annotations
// of the rows of an abundance matrix,
// indicating the pathways associated with each taxon.
package annot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"slices"
)

// ErrTooManyPathways is returned when there are more pathways
// than colors in the palette.
var ErrTooManyPathways = errors.New("too many pathways")

// Palette is the list of colors assigned to the pathways,
// in order of assignation
// (the Pastel1 scheme of ColorBrewer).
var Palette = []color.RGBA{
	{251, 180, 174, 255},
	{179, 205, 227, 255},
	{204, 235, 197, 255},
	{222, 203, 228, 255},
	{254, 217, 166, 255},
	{255, 255, 204, 255},
	{229, 216, 189, 255},
	{253, 218, 236, 255},
	{242, 242, 242, 255},
}

// Neutral is the color of a row
// not associated with a pathway.
var Neutral = color.RGBA{255, 255, 255, 255}

// A TaxaIndexer returns the display names of the taxa
// associated with a pathway.
type TaxaIndexer interface {
	Taxa(pathway string) []string
}

// Annotation is a set of color columns,
// one for each pathway,
// aligned with the rows of an abundance matrix.
type Annotation struct {
	rows  []string
	paths []string

	// in[p][r] is true if row r
	// is associated with pathway p.
	in [][]bool
}

// New creates a new annotation
// for the given pathways and matrix rows.
// Each pathway receives the next color of the palette;
// colors are never reused.
func New(pathways []string, idx TaxaIndexer, rows []string) (*Annotation, error) {
	if len(pathways) > len(Palette) {
		return nil, fmt.Errorf("%w: got %d, maximum %d", ErrTooManyPathways, len(pathways), len(Palette))
	}

	a := &Annotation{
		rows:  slices.Clone(rows),
		paths: slices.Clone(pathways),
		in:    make([][]bool, len(pathways)),
	}
	for p, pw := range pathways {
		taxa := make(map[string]bool)
		for _, tx := range idx.Taxa(pw) {
			taxa[tx] = true
		}

		in := make([]bool, len(rows))
		for r, n := range rows {
			in[r] = taxa[n]
		}
		a.in[p] = in
	}
	return a, nil
}

// Color returns the color of a row
// in the column of a pathway.
func (a *Annotation) Color(row, p int) color.Color {
	if a.in[p][row] {
		return Palette[p]
	}
	return Neutral
}

// Column returns the colors of the rows
// in the column of a pathway.
func (a *Annotation) Column(p int) []color.Color {
	col := make([]color.Color, len(a.rows))
	for r := range a.rows {
		col[r] = a.Color(r, p)
	}
	return col
}

// Has returns true if a row
// is associated with a pathway.
func (a *Annotation) Has(row, p int) bool {
	return a.in[p][row]
}

// Pathways returns the pathways of the annotation.
func (a *Annotation) Pathways() []string {
	return slices.Clone(a.paths)
}

// PathwayColor returns the color assigned to a pathway.
func (a *Annotation) PathwayColor(p int) color.Color {
	return Palette[p]
}

// Rows returns the row names of the annotation.
func (a *Annotation) Rows() []string {
	return slices.Clone(a.rows)
}

// TSV writes the annotation as a TSV file.
// Colors are written as hexadecimal RGB values.
func (a *Annotation) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, a.paths...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for r, n := range a.rows {
		row := make([]string, 0, len(header))
		row = append(row, n)
		for p := range a.paths {
			row = append(row, hex(a.Color(r, p)))
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

func hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
