// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements a command to write
// the descriptions of the selected pathways.
package table

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: "table [--pathway <list>] [--search <term>] <project-file>",
	Short: "write a table of pathway descriptions",
	Long: `
Command table reads the function dictionary of a taxheat project, and writes
the codes and descriptions of the selected pathways as a tab-delimited file
in the standard output. Functions are listed in the order of the selection,
and each selected code includes any function that contains the code.

The argument of the command is the name of the project file.

By default, the pathways selected in the analysis parameters of the project
are used. Use the flag --pathway, with a comma separated list of codes, or the
flag --search, with a term to search in the pathway descriptions, to define a
different selection.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var pathwayList string
var searchTerm string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&pathwayList, "pathway", "", "")
	c.Flags().StringVar(&searchTerm, "search", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	spec := pathway.Spec{
		Names:  split(pathwayList),
		Search: searchTerm,
	}
	if len(spec.Names) == 0 && spec.Search == "" {
		cfg, err := p.Config()
		if err != nil {
			return err
		}
		spec.Names = cfg.Pathways
		spec.Search = cfg.Search
	}

	funcs, err := p.Functions()
	if err != nil {
		return err
	}
	idx, err := pathway.New(nil, funcs, nil)
	if err != nil {
		return err
	}
	codes, err := idx.Select(spec)
	if err != nil {
		return err
	}

	if err := pathway.WriteFunctions(c.Stdout(), idx.Describe(codes)); err != nil {
		return fmt.Errorf("while writing table: %v", err)
	}
	return nil
}

func split(s string) []string {
	var ls []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		ls = append(ls, v)
	}
	return ls
}
