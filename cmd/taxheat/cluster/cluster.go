// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster implements a command to cluster
// the samples or taxa of a taxheat project.
package cluster

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/analysis"
	"github.com/js-arias/taxheat/cluster"
	"github.com/js-arias/taxheat/cmd/taxheat/cfgflags"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: `cluster [-o|--output <file>] [--name <tree-name>]
	[--newick] [--terms <file>]
	` + cfgflags.Usage + `
	<project-file>`,
	Short: "cluster samples or taxa",
	Long: `
Command cluster reads the abundance table of a taxheat project, builds the
abundance matrix of the selected samples, and clusters the samples (or the
taxa) using the Aitchison distance and complete linkage. The resulting
dendrogram is written as a tree.

The argument of the command is the name of the project file.

The analysis parameters of the project are used, and they can be overridden
with the command flags (the parameter file is not modified). If the cluster
parameter is "none", samples are clustered.

By default, the tree is written as a tab-delimited tree file, in which the
distances are interpreted as million years, and terminals have age 0. In a
tree file, terminal names are stored in canonical form (e.g., "CC01B" is
stored as "Cc01b"), and labels that are repeated (e.g., two taxa with the same
genus name) are suffixed with their position in the matrix. Use the flag
--terms to write a tab-delimited table with the terminal name used in the
tree for each label of the matrix. Use the flag --newick to write the tree in
parenthetical format, using the distances as branch lengths, and the labels
of the matrix as terminal names.

By default, the tree is written in the standard output. Use the flag
--output, or -o, to write the tree into a file.

By default, the name of the tree is the clustered dimension ("samples" or
"taxa"). Use the flag --name to set a different name.
` + cfgflags.Help,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var treeName string
var newick bool
var termsFile string
var flags cfgflags.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().BoolVar(&newick, "newick", false, "")
	c.Flags().StringVar(&termsFile, "terms", "", "")
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
	if cfg.Cluster == analysis.ClusterNone {
		cfg.Cluster = analysis.ClusterSamples
	}

	res, err := p.Analyze(cfg)
	if err != nil {
		return err
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(c.Stderr(), "warning: sample %q not found in abundance table\n", s)
	}
	if treeName == "" {
		treeName = res.Cluster
	}

	w := c.Stdout()
	if output != "" {
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}

	if newick {
		nw, err := res.Dendrogram.Newick(res.Labels(), 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", nw)
		return nil
	}

	tc, terms, err := res.Tree(treeName)
	if err != nil {
		return err
	}
	if termsFile != "" {
		if err := writeTerms(termsFile, terms, res.Labels()); err != nil {
			return err
		}
	}
	if err := tc.TSV(w); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

func writeTerms(name string, terms, labels []string) (err error) {
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

	if err := cluster.WriteTerms(f, terms, labels); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
