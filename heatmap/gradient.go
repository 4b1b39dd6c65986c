// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
)

// Gradienter returns a color for a value
// between 0 and 1.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// NewGradient returns a color scheme by its name.
func NewGradient(name string) (Gradienter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "iridescent":
		return Iridescent{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "rainbow":
		return Rainbow{}, nil
	case "gray", "grey":
		return Gray{}, nil
	}
	return nil, fmt.Errorf("unknown color scheme %q", name)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Rainbow is the smooth rainbow color scheme
// of Paul Tol.
type Rainbow struct{}

func (r Rainbow) Gradient(v float64) color.Color {
	return blind.Gradient(clamp(v))
}

// Gray is a gray scale,
// from white to black.
type Gray struct{}

func (g Gray) Gradient(v float64) color.Color {
	c := 255 - uint8(clamp(v)*255)
	return color.RGBA{c, c, c, 255}
}
