// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a command to write
// the abundance matrix of a taxheat project.
package matrix

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/cmd/taxheat/cfgflags"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: `matrix [-o|--output <file>] [--annot <file>]
	` + cfgflags.Usage + `
	<project-file>`,
	Short: "write the abundance matrix",
	Long: `
Command matrix reads the abundance table of a taxheat project, and writes the
abundance matrix of the selected samples as a tab-delimited file. Values in
the matrix are percentages. The rows are the taxa, using the most specific
name of each taxon, and the columns are the samples.

The argument of the command is the name of the project file.

The analysis parameters of the project are used, and they can be overridden
with the command flags (the parameter file is not modified).

By default, the matrix is written in the standard output. Use the flag
--output, or -o, to write the matrix into a file.

If the flag --annot is defined, and there are selected pathways, the
annotation of the taxa will be written in the indicated file, with the color
used for each taxon and pathway.
` + cfgflags.Help,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var annotFile string
var flags cfgflags.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&annotFile, "annot", "", "")
	flags.Set(c.Flags())
}

func run(c *command.Command, args []string) (err error) {
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

	if annotFile != "" && res.Annot != nil {
		if err := writeFile(annotFile, res.Annot.TSV); err != nil {
			return err
		}
	}

	if output == "" {
		if err := res.Matrix.TSV(c.Stdout()); err != nil {
			return fmt.Errorf("while writing matrix: %v", err)
		}
		return nil
	}
	return writeFile(output, res.Matrix.TSV)
}

func writeFile(name string, tsv func(io.Writer) error) (err error) {
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

	if err := tsv(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
