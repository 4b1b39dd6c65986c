// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add data tables
// to a taxheat project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/analysis"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/project"
	"github.com/js-arias/taxheat/sample"
)

var Command = &command.Command{
	Usage: `add [--abundance <file>] [--taxa <file>]
	[--functions <file>] [--parent <file>] [--params <file>]
	<project-file>`,
	Short: "add data tables to a taxheat project",
	Long: `
Command add reads one or more data tables, and add them to a taxheat project.
Each table is read before it is added to the project, so only valid tables
are added.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The flag --abundance sets the abundance table. The flag --taxa sets the taxon
dictionary, the flag --functions sets the function dictionary, and the flag
--parent sets the mapping of functions to taxon features. The flag --params
sets the analysis parameters file. If a table is already defined in the
project, it will be replaced.

See "taxheat help abundance-files", "taxheat help dictionary-files", and
"taxheat help param-files" to learn about the format of the tables.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var abundanceFile string
var taxaFile string
var functionsFile string
var parentFile string
var paramsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&abundanceFile, "abundance", "", "")
	c.Flags().StringVar(&taxaFile, "taxa", "", "")
	c.Flags().StringVar(&functionsFile, "functions", "", "")
	c.Flags().StringVar(&parentFile, "parent", "", "")
	c.Flags().StringVar(&paramsFile, "params", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	tables := []struct {
		set  project.Dataset
		name string
		read func(f *os.File) error
	}{
		{project.Abundance, abundanceFile, readAbundance},
		{project.Taxa, taxaFile, readTaxa},
		{project.Functions, functionsFile, readFunctions},
		{project.Parent, parentFile, readParent},
		{project.Params, paramsFile, readParams},
	}

	var added bool
	for _, t := range tables {
		if t.name == "" {
			continue
		}
		if err := checkTable(t.name, t.read); err != nil {
			return err
		}
		if prev := p.Add(t.set, t.name); prev != "" && prev != t.name {
			fmt.Fprintf(c.Stderr(), "%s: %q replaced by %q\n", t.set, prev, t.name)
		}
		added = true
	}
	if !added {
		return c.UsageError("expecting a data table")
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func checkTable(name string, read func(f *os.File) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

func readAbundance(f *os.File) error {
	_, _, err := sample.ReadTSV(f, nil, true)
	return err
}

func readTaxa(f *os.File) error {
	taxa, err := pathway.ReadTaxa(f)
	if err != nil {
		return err
	}
	_, err = pathway.New(taxa, nil, nil)
	return err
}

func readFunctions(f *os.File) error {
	_, err := pathway.ReadFunctions(f)
	return err
}

func readParent(f *os.File) error {
	_, err := pathway.ReadParent(f)
	return err
}

func readParams(f *os.File) error {
	_, err := analysis.ReadConfig(f)
	return err
}
