// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package analysis implements the pipeline
// that builds an annotated abundance matrix
// from a set of samples
// and a pathway index.
package analysis

import (
	"errors"
	"fmt"
	"io"

	"github.com/js-arias/taxheat/aitchison"
	"github.com/js-arias/taxheat/annot"
	"github.com/js-arias/taxheat/cluster"
	"github.com/js-arias/taxheat/heatmap"
	"github.com/js-arias/taxheat/matrix"
	"github.com/js-arias/taxheat/pathway"
	"github.com/js-arias/taxheat/sample"
	"github.com/js-arias/timetree"
)

// Inputs are the data sources of an analysis.
type Inputs struct {
	// Abundance table
	Abundance io.Reader

	// Pathway index.
	// It is required only if pathways are selected.
	Index *pathway.Index
}

// Result is the result of an analysis.
type Result struct {
	Matrix *matrix.Matrix

	// Requested samples
	// not found in the abundance table
	// (only in non-strict mode).
	Skipped []string

	// Selected pathways,
	// and its descriptions.
	Pathways  []string
	Functions []pathway.Function

	// Row annotation,
	// nil if no pathway is selected.
	Annot *annot.Annotation

	// Cluster of samples or taxa,
	// nil if no clustering was done.
	Dendrogram *cluster.Dendrogram
	Cluster    string

	cfg *Config
}

// Run executes an analysis.
func Run(cfg *Config, in Inputs) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if in.Abundance == nil {
		return nil, errors.New("undefined abundance table")
	}

	samples, skipped, err := sample.ReadTSV(in.Abundance, cfg.Samples, cfg.Strict)
	if err != nil {
		return nil, fmt.Errorf("abundance table: %w", err)
	}
	if len(samples) == 0 {
		if len(skipped) > 0 {
			return nil, fmt.Errorf("no samples to analyze: %w: %q", sample.ErrUnknownSample, skipped)
		}
		return nil, errors.New("no samples to analyze")
	}

	m, err := matrix.Build(samples, nil, matrix.Options{
		Threshold: cfg.Threshold / 100,
		Level:     cfg.Level,
	})
	if err != nil {
		return nil, err
	}
	if len(cfg.Names) > 0 {
		m, err = m.Rename(cfg.Names)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Matrix:  m,
		Skipped: skipped,
		Cluster: cfg.Cluster,
		cfg:     cfg,
	}

	spec := pathway.Spec{
		Names:  cfg.Pathways,
		Search: cfg.Search,
	}
	if len(spec.Names) > 0 || spec.Search != "" {
		if in.Index == nil {
			return nil, errors.New("pathways selected without a pathway index")
		}
		paths, err := in.Index.Select(spec)
		if err != nil {
			return nil, err
		}
		if len(paths) > 0 {
			a, err := annot.New(paths, in.Index, m.Rows())
			if err != nil {
				return nil, err
			}
			res.Pathways = paths
			res.Functions = in.Index.Describe(paths)
			res.Annot = a
		}
	}

	var vecs [][]float64
	nr, nc := m.Dims()
	switch cfg.Cluster {
	case ClusterSamples:
		for c := 0; c < nc; c++ {
			vecs = append(vecs, m.Column(c))
		}
	case ClusterTaxa:
		for r := 0; r < nr; r++ {
			vecs = append(vecs, m.Row(r))
		}
	}
	if len(vecs) > 0 {
		d := aitchison.Pairwise(vecs, aitchison.Distance)
		res.Dendrogram = cluster.Complete(d)
	}

	return res, nil
}

// Labels returns the labels of the clustered terminals.
func (r *Result) Labels() []string {
	switch r.Cluster {
	case ClusterSamples:
		return r.Matrix.Samples()
	case ClusterTaxa:
		return r.Matrix.Rows()
	}
	return nil
}

// Heatmap returns a heat map of the result.
// If there is a dendrogram,
// the clustered dimension is sorted
// using the dendrogram order.
func (r *Result) Heatmap(title string) (*heatmap.Heatmap, error) {
	grad, err := heatmap.NewGradient(r.cfg.Color)
	if err != nil {
		return nil, err
	}

	h := &heatmap.Heatmap{
		Data:     r.Matrix,
		Annot:    r.Annot,
		Max:      r.cfg.Max,
		Gradient: grad,
		Title:    title,
	}
	if r.Dendrogram != nil {
		switch r.Cluster {
		case ClusterSamples:
			h.ColOrder = r.Dendrogram.Order()
		case ClusterTaxa:
			h.RowOrder = r.Dendrogram.Order()
		}
	}
	return h, nil
}

// Tree returns the dendrogram
// as a time tree collection,
// and the name of each terminal in the tree,
// in the order of the labels.
func (r *Result) Tree(name string) (*timetree.Collection, []string, error) {
	if r.Dendrogram == nil {
		return nil, nil, errors.New("analysis without clustering")
	}
	return r.Dendrogram.Tree(name, r.Labels())
}
