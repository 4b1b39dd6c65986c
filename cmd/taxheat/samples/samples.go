// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package samples implements a command to print
// the list of samples in a taxheat project.
package samples

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: "samples [--sort] [--count] <project-file>",
	Short: "print a list of the samples in a project",
	Long: `
Command samples reads the abundance table of a taxheat project and prints the
sample names in the standard output.

The argument of the command is the name of the project file.

By default, samples are printed in the order of the abundance table. Use the
flag --sort to print them in alphabetical order.

If the flag --count is defined, the number of taxa observed in each sample
is printed after the sample name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sortFlag bool
var countFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&sortFlag, "sort", false, "")
	c.Flags().BoolVar(&countFlag, "count", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	names, err := p.SampleNames()
	if err != nil {
		return err
	}
	if sortFlag {
		slices.Sort(names)
	}

	if !countFlag {
		for _, n := range names {
			fmt.Fprintf(c.Stdout(), "%s\n", n)
		}
		return nil
	}

	ls, _, err := p.Samples(names, true)
	if err != nil {
		return err
	}
	for _, s := range ls {
		var n int
		for _, id := range s.IDs() {
			if s.Abundance(id) > 0 {
				n++
			}
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", s.Name(), n)
	}
	return nil
}
