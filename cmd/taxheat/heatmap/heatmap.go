// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heatmap implements a command to draw
// an annotated heat map of the abundance matrix
// of a taxheat project.
package heatmap

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/cmd/taxheat/cfgflags"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: `heatmap [-o|--output <file>] [--title <text>]
	[--table <file>] [--values]
	` + cfgflags.Usage + `
	<project-file>`,
	Short: "draw a heat map of the abundance matrix",
	Long: `
Command heatmap reads the abundance table of a taxheat project, builds the
abundance matrix of the selected samples, and draws it as a heat map. If
pathways are selected, a column for each pathway is drawn at the left of the
matrix, with the taxa associated with the pathway painted with the color of
the pathway.

The argument of the command is the name of the project file.

The analysis parameters of the project are used, and they can be overridden
with the command flags (the parameter file is not modified). If a dimension
of the matrix is clustered, the samples (or taxa) are sorted using the order
of the dendrogram.

By default, the heat map is stored as 'heatmap.png'. Use the flag --output,
or -o, to set a different file name. The format of the image is set by the
file extension (".png", ".svg", ".pdf", ".eps", ".jpg", or ".tif").

By default, the title of the heat map is the list of samples. Use the flag
--title to set a different title.

If the flag --values is defined, the value of each cell (as a percentage) is
printed on the cell.

If the flag --table is defined, the codes and descriptions of the selected
pathways will be written in the indicated file.
` + cfgflags.Help,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var title string
var tableFile string
var values bool
var flags cfgflags.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "heatmap.png", "")
	c.Flags().StringVar(&output, "o", "heatmap.png", "")
	c.Flags().StringVar(&title, "title", "", "")
	c.Flags().StringVar(&tableFile, "table", "", "")
	c.Flags().BoolVar(&values, "values", false, "")
	flags.Set(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	cfg, err := p.Config()
	if err != nil {
		return err
	}
	if _, err := flags.Apply(c.Flags(), cfg); err != nil {
		return err
	}

	res, err := p.Analyze(cfg)
	if err != nil {
		return err
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(c.Stderr(), "warning: sample %q not found in abundance table\n", s)
	}

	if title == "" {
		title = strings.Join(res.Matrix.Samples(), "; ")
	}
	h, err := res.Heatmap(title)
	if err != nil {
		return err
	}
	h.Values = values
	if err := h.Save(output); err != nil {
		return err
	}

	if tableFile != "" {
		if err := writeTable(tableFile, res.Functions); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(name string, funcs []pathway.Function) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := pathway.WriteFunctions(f, funcs); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
