// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/taxheat/analysis"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/sample"
)

// Config reads the analysis parameters
// of a project.
// If no parameter file is defined,
// it returns the default configuration.
func (p *Project) Config() (*analysis.Config, error) {
	name := p.Path(Params)
	if name == "" {
		return analysis.DefaultConfig(), nil
	}
	return analysis.ReadConfigFile(name)
}

// SampleNames returns the names of the samples
// in the abundance table of a project.
func (p *Project) SampleNames() ([]string, error) {
	name := p.Path(Abundance)
	if name == "" {
		return nil, fmt.Errorf("abundance table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cols, err := sample.Columns(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return cols, nil
}

// Samples reads the indicated samples
// from the abundance table of a project.
// If no names are given,
// all samples are read.
func (p *Project) Samples(names []string, strict bool) (ls []*sample.Sample, skipped []string, err error) {
	name := p.Path(Abundance)
	if name == "" {
		return nil, nil, fmt.Errorf("abundance table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	ls, skipped, err = sample.ReadTSV(f, names, strict)
	if err != nil {
		return nil, nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return ls, skipped, nil
}

// Functions reads the function dictionary
// of a project.
func (p *Project) Functions() ([]pathway.Function, error) {
	name := p.Path(Functions)
	if name == "" {
		return nil, fmt.Errorf("function dictionary not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	funcs, err := pathway.ReadFunctions(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return funcs, nil
}

// Index reads the taxon dictionary,
// the function dictionary,
// and the parent mapping of a project,
// and returns a pathway index.
func (p *Project) Index() (*pathway.Index, error) {
	name := p.Path(Taxa)
	if name == "" {
		return nil, fmt.Errorf("taxon dictionary not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	taxa, err := pathway.ReadTaxa(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}

	funcs, err := p.Functions()
	if err != nil {
		return nil, err
	}

	name = p.Path(Parent)
	if name == "" {
		return nil, fmt.Errorf("parent mapping not defined in project %q", p.name)
	}
	f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	links, err := pathway.ReadParent(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}

	idx, err := pathway.New(taxa, funcs, links)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", p.name, err)
	}
	return idx, nil
}

// Analyze runs an analysis
// using the data tables of a project.
// The pathway index is read
// only if the configuration selects pathways.
func (p *Project) Analyze(cfg *analysis.Config) (*analysis.Result, error) {
	var in analysis.Inputs
	if len(cfg.Pathways) > 0 || cfg.Search != "" {
		idx, err := p.Index()
		if err != nil {
			return nil, err
		}
		in.Index = idx
	}

	name := p.Path(Abundance)
	if name == "" {
		return nil, fmt.Errorf("abundance table not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in.Abundance = f

	res, err := analysis.Run(cfg, in)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return res, nil
}
