// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the taxa associated with a pathway.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: "taxa <project-file> <pathway>...",
	Short: "print the taxa associated with a pathway",
	Long: `
Command taxa reads the taxon dictionary, the function dictionary, and the
parent mapping of a taxheat project, and prints the names of the taxa
associated with one or more pathways.

The first argument of the command is the name of the project file. The rest
of the arguments are pathway codes. A pathway code matches any function that
contains the code (for example, "PWY-5430" matches "PWY-5430-1").

Taxa are printed by decreasing confidence of the taxon assignation, and each
taxon name is printed only once per pathway.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting pathway code")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	idx, err := p.Index()
	if err != nil {
		return err
	}

	for _, pw := range args[1:] {
		for _, tx := range idx.Taxa(pw) {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", pw, tx)
		}
	}
	return nil
}
