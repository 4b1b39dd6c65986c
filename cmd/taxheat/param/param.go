// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the analysis parameters of a taxheat project.
package param

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/analysis"
	"github.com/js-arias/taxheat/cmd/taxheat/cfgflags"
	"github.com/js-arias/taxheat/project"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	` + cfgflags.Usage + `
	<project-file>`,
	Short: "manage analysis parameters",
	Long: `
Command param manages the analysis parameters defined for a taxheat project.
These parameters define the samples, the filtering and aggregation of the
abundance matrix, the pathways used to annotate the taxa, and the options of
the heat map.

The argument of the command is the name of the project file.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the analysis
parameters.

By default, any change on the parameters will be stored in the current
parameters file. If the project does not have a parameters file, a new one
will be created with the name 'params.tab'. Use the flag --file to define a
new parameters file.
` + cfgflags.Help,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var flags cfgflags.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
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

	if addFile != "" {
		if _, err := analysis.ReadConfigFile(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	cfg, err := p.Config()
	if err != nil {
		return err
	}

	changed, err := flags.Apply(c.Flags(), cfg)
	if err != nil {
		return err
	}
	if !changed && paramFile == "" {
		if err := cfg.TSV(c.Stdout()); err != nil {
			return fmt.Errorf("while writing parameters: %v", err)
		}
		return nil
	}

	if paramFile == "" {
		paramFile = p.Path(project.Params)
		if paramFile == "" {
			paramFile = "params.tab"
		}
	}
	if err := cfg.WriteFile(paramFile); err != nil {
		return err
	}
	p.Add(project.Params, paramFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}
