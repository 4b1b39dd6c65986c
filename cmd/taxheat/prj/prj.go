// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/analysis"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/project"
	"github.com/js-arias/taxheat/sample"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a taxheat project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if name := p.Path(project.Abundance); name != "" {
		if err := readAbundance(c.Stdout(), name); err != nil {
			return err
		}
	}
	if name := p.Path(project.Taxa); name != "" {
		if err := readTaxa(c.Stdout(), name); err != nil {
			return err
		}
	}
	if name := p.Path(project.Functions); name != "" {
		if err := readFunctions(c.Stdout(), name); err != nil {
			return err
		}
	}
	if name := p.Path(project.Parent); name != "" {
		if err := readParent(c.Stdout(), name); err != nil {
			return err
		}
	}

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	printConfig(c.Stdout(), p.Path(project.Params), cfg)
	return nil
}

func readAbundance(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	ls, _, err := sample.ReadTSV(f, nil, true)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	taxa := make(map[string]bool)
	for _, s := range ls {
		for _, id := range s.IDs() {
			taxa[id.String()] = true
		}
	}

	fmt.Fprintf(w, "Abundance table:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tsamples: %d\n", len(ls))
	fmt.Fprintf(w, "\ttaxa: %d\n", len(taxa))
	fmt.Fprintf(w, "\n")
	return nil
}

func readTaxa(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	taxa, err := pathway.ReadTaxa(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	fmt.Fprintf(w, "Taxon dictionary:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tfeatures: %d\n", len(taxa))
	fmt.Fprintf(w, "\n")
	return nil
}

func readFunctions(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	funcs, err := pathway.ReadFunctions(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	fmt.Fprintf(w, "Function dictionary:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tpathways: %d\n", len(funcs))
	fmt.Fprintf(w, "\n")
	return nil
}

func readParent(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	links, err := pathway.ReadParent(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	funcs := make(map[string]bool)
	for _, l := range links {
		funcs[l.Function] = true
	}

	fmt.Fprintf(w, "Parent mapping:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tlinks: %d\n", len(links))
	fmt.Fprintf(w, "\tfunctions: %d\n", len(funcs))
	fmt.Fprintf(w, "\n")
	return nil
}

func printConfig(w io.Writer, name string, cfg *analysis.Config) {
	fmt.Fprintf(w, "Analysis parameters:\n")
	if name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)
	}
	if len(cfg.Samples) > 0 {
		fmt.Fprintf(w, "\tsamples: %s\n", strings.Join(cfg.Samples, ", "))
	} else {
		fmt.Fprintf(w, "\tsamples: all\n")
	}
	fmt.Fprintf(w, "\tthreshold: %.3f%%\n", cfg.Threshold)
	if cfg.Level != "" {
		fmt.Fprintf(w, "\tlevel: %s\n", cfg.Level)
	}
	if len(cfg.Pathways) > 0 {
		fmt.Fprintf(w, "\tpathways: %s\n", strings.Join(cfg.Pathways, ", "))
	}
	if cfg.Search != "" {
		fmt.Fprintf(w, "\tsearch: %q\n", cfg.Search)
	}
	fmt.Fprintf(w, "\tcluster: %s\n", cfg.Cluster)
	fmt.Fprintf(w, "\n")
}
