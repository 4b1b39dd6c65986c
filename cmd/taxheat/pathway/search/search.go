// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package search implements a command to search
// pathways by its description.
package search

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: "search <project-file> <term>...",
	Short: "search pathways by description",
	Long: `
Command search reads the function dictionary of a taxheat project, and prints
the codes and descriptions of the pathways with a description that contains
the search term, regardless of the case. Only the first 9 matching pathways
are printed, as only 9 pathways can be used to annotate a heat map.

The first argument of the command is the name of the project file. The rest
of the arguments are the search term.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting search term")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	funcs, err := p.Functions()
	if err != nil {
		return err
	}
	idx, err := pathway.New(nil, funcs, nil)
	if err != nil {
		return err
	}

	term := strings.Join(args[1:], " ")
	for _, code := range idx.Search(term) {
		for _, f := range idx.Describe([]string{code}) {
			if f.Code != code {
				continue
			}
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", f.Code, f.Description)
			break
		}
	}
	return nil
}
