// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heatmap implements a heat map plot
// of an abundance matrix,
// with optional annotation columns for the rows.
package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/js-arias/taxheat/annot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Data is a matrix of values
// with named rows and columns.
type Data interface {
	Dims() (r, c int)
	At(r, c int) float64
	Rows() []string
	Samples() []string
}

// Heatmap is a heat map of a matrix.
type Heatmap struct {
	// Matrix values
	Data Data

	// Annotation of the rows.
	// It is optional.
	Annot *annot.Annotation

	// Order of rows and columns,
	// as indexes of the data.
	// If nil,
	// the order of the data is used.
	RowOrder []int
	ColOrder []int

	// Max is the value
	// painted with the most intense color.
	// Larger values are capped.
	// If zero,
	// the maximum value of the data is used.
	Max float64

	// Color scheme,
	// by default, Iridescent.
	Gradient Gradienter

	// If true,
	// the value of each cell is printed on the cell.
	Values bool

	Title string
}

// gap between the annotation columns
// and the matrix.
const gap = 0.25

// Plot returns the heat map as a plot.
func (h *Heatmap) Plot() (*plot.Plot, error) {
	nr, nc := h.Data.Dims()
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("heatmap: empty matrix")
	}

	rows, err := order(h.RowOrder, nr)
	if err != nil {
		return nil, fmt.Errorf("heatmap: rows: %v", err)
	}
	cols, err := order(h.ColOrder, nc)
	if err != nil {
		return nil, fmt.Errorf("heatmap: columns: %v", err)
	}
	if h.Annot != nil && len(h.Annot.Rows()) != nr {
		return nil, fmt.Errorf("heatmap: annotation with %d rows, want %d", len(h.Annot.Rows()), nr)
	}

	grad := h.Gradient
	if grad == nil {
		grad = Iridescent{}
	}
	max := h.Max
	if max <= 0 {
		for r := 0; r < nr; r++ {
			for c := 0; c < nc; c++ {
				max = math.Max(max, h.Data.At(r, c))
			}
		}
	}
	if max <= 0 {
		max = 1
	}

	p := plot.New()
	p.Title.Text = h.Title
	p.HideAxes()
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	cp := &cells{
		data: h.Data,
		rows: rows,
		cols: cols,
		max:  max,
		grad: grad,
	}
	if h.Values {
		sty := p.Y.Tick.Label
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YCenter
		cp.label = &sty
	}
	p.Add(cp)

	names := h.Data.Rows()
	var yTicks []plot.Tick
	for i, r := range rows {
		yTicks = append(yTicks, plot.Tick{
			Value: float64(nr-i) - 0.5,
			Label: names[r],
		})
	}

	samples := h.Data.Samples()
	var xTicks []plot.Tick
	for i, c := range cols {
		xTicks = append(xTicks, plot.Tick{
			Value: float64(i) + 0.5,
			Label: samples[c],
		})
	}

	if h.Annot != nil && len(h.Annot.Pathways()) > 0 {
		ap := &annotation{
			a:    h.Annot,
			rows: rows,
		}
		p.Add(ap)
		for i, pw := range h.Annot.Pathways() {
			xTicks = append(xTicks, plot.Tick{
				Value: ap.x(i) + 0.5,
				Label: pw,
			})
			p.Legend.Add(pw, box{h.Annot.PathwayColor(i)})
		}
	}

	for _, v := range []float64{0, max / 2, max} {
		l := strconv.FormatFloat(v, 'f', 2, 64)
		if v == max && h.Max > 0 {
			l = "≥" + l
		}
		p.Legend.Add(l, box{grad.Gradient(v / max)})
	}
	p.Legend.Top = true
	p.Legend.Left = false

	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	return p, nil
}

// Save stores the heat map in a file
// the format is taken from the file extension
// (e.g., ".png", ".svg", ".pdf").
// Size is set by the number of rows and columns.
func (h *Heatmap) Save(name string) error {
	p, err := h.Plot()
	if err != nil {
		return err
	}

	nr, nc := h.Data.Dims()
	if h.Annot != nil {
		nc += len(h.Annot.Pathways())
	}
	w := vg.Length(nc)*cellSize + 4*vg.Inch
	ht := vg.Length(nr)*cellSize + 3*vg.Inch
	if err := p.Save(w, ht, name); err != nil {
		return fmt.Errorf("heatmap: %v", err)
	}
	return nil
}

// cellSize is the size of a cell in the output image.
const cellSize = vg.Length(14)

// order validates a permutation of n indexes.
// A nil permutation is the identity.
func order(perm []int, n int) ([]int, error) {
	if perm == nil {
		perm = make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		return perm, nil
	}
	if len(perm) != n {
		return nil, fmt.Errorf("got %d indexes, want %d", len(perm), n)
	}
	seen := make([]bool, n)
	for _, i := range perm {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("index %d out of range", i)
		}
		if seen[i] {
			return nil, fmt.Errorf("index %d repeated", i)
		}
		seen[i] = true
	}
	return perm, nil
}

// A cells plotter draws the matrix cells.
type cells struct {
	data Data
	rows []int
	cols []int
	max  float64
	grad Gradienter

	// style of the value labels,
	// nil if values are not printed.
	label *draw.TextStyle
}

// DataRange implements the plot.DataRanger interface.
func (cp *cells) DataRange() (xMin, xMax, yMin, yMax float64) {
	return 0, float64(len(cp.cols)), 0, float64(len(cp.rows))
}

// Plot implements the plot.Plotter interface.
func (cp *cells) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	n := len(cp.rows)
	for i, r := range cp.rows {
		top := trY(float64(n - i))
		bottom := trY(float64(n - i - 1))
		for j, col := range cp.cols {
			val := cp.data.At(r, col)
			v := val / cp.max
			if v > 1 {
				v = 1
			}
			cc := cp.grad.Gradient(v)
			left, right := trX(float64(j)), trX(float64(j+1))
			fillRect(c, cc, left, right, bottom, top)

			if cp.label == nil {
				continue
			}
			sty := *cp.label
			sty.Color = labelColor(cc)
			pt := vg.Point{
				X: (left + right) / 2,
				Y: (bottom + top) / 2,
			}
			c.FillText(sty, pt, ValueLabel(val))
		}
	}
}

// ValueLabel returns the text printed on a cell
// with the given value.
func ValueLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// labelColor returns a color
// that contrasts with the color of a cell.
func labelColor(bg color.Color) color.Color {
	r, g, b, _ := bg.RGBA()
	// relative luminance on 16-bit channels
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	if lum < 0.5 {
		return color.White
	}
	return color.Black
}

// An annotation plotter draws the annotation columns
// to the left of the matrix.
type annotation struct {
	a    *annot.Annotation
	rows []int
}

// x returns the left border of an annotation column.
func (ap *annotation) x(p int) float64 {
	return float64(p-len(ap.a.Pathways())) - gap
}

// DataRange implements the plot.DataRanger interface.
func (ap *annotation) DataRange() (xMin, xMax, yMin, yMax float64) {
	return ap.x(0), 0, 0, float64(len(ap.rows))
}

// Plot implements the plot.Plotter interface.
func (ap *annotation) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	n := len(ap.rows)
	for p := range ap.a.Pathways() {
		left := trX(ap.x(p))
		right := trX(ap.x(p) + 1)
		for i, r := range ap.rows {
			top := trY(float64(n - i))
			bottom := trY(float64(n - i - 1))
			fillRect(c, ap.a.Color(r, p), left, right, bottom, top)
		}
	}
}

func fillRect(c draw.Canvas, col color.Color, left, right, bottom, top vg.Length) {
	pts := []vg.Point{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
		{X: left, Y: top},
	}
	c.FillPolygon(col, pts)
}

// A box is a legend thumbnail.
type box struct {
	color color.Color
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b box) Thumbnail(c *draw.Canvas) {
	fillRect(*c, b.color, c.Min.X, c.Max.X, c.Min.Y, c.Max.Y)
}
