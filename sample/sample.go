// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements the relative abundances
// of the taxa observed in a survey sample.
package sample

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/js-arias/taxheat/taxon"
)

// ErrLookupMiss is returned by strict lookups
// when a taxon is not observed in a sample.
var ErrLookupMiss = errors.New("taxon not observed in sample")

// ErrUnknownSample is returned when a requested sample
// is not defined in a data source.
var ErrUnknownSample = errors.New("unknown sample")

// Row is an observation of a taxon in a sample.
type Row struct {
	Taxon taxon.Hierarchy

	// Relative abundance of the taxon,
	// as a fraction between 0 and 1.
	Abundance float64
}

// Sample is the set of relative abundances
// of the taxa in a sample.
// A sample is immutable once created.
type Sample struct {
	name  string
	ids   []taxon.ID
	abund map[taxon.ID]float64
}

// New creates a new sample from a list of observations.
// An abundance outside [0, 1] is an error.
// If a taxon is observed more than once,
// only the first observation is kept.
func New(name string, rows []Row) (*Sample, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, errors.New("empty sample name")
	}

	s := &Sample{
		name:  name,
		ids:   make([]taxon.ID, 0, len(rows)),
		abund: make(map[taxon.ID]float64, len(rows)),
	}
	for i, r := range rows {
		if math.IsNaN(r.Abundance) || r.Abundance < 0 || r.Abundance > 1 {
			return nil, fmt.Errorf("sample %q: row %d: taxon %q: %w: abundance %g outside [0, 1]", name, i, r.Taxon.Name(), taxon.ErrIntegrity, r.Abundance)
		}

		id := r.Taxon.ID()
		if _, ok := s.abund[id]; ok {
			continue
		}
		s.ids = append(s.ids, id)
		s.abund[id] = r.Abundance
	}
	return s, nil
}

// Name returns the name of the sample.
func (s *Sample) Name() string {
	return s.name
}

// Abundance returns the relative abundance
// of a taxon in the sample.
// If the taxon is not observed,
// it returns 0.
func (s *Sample) Abundance(id taxon.ID) float64 {
	return s.abund[id]
}

// StrictAbundance returns the relative abundance
// of a taxon in the sample,
// or ErrLookupMiss if the taxon is not observed.
func (s *Sample) StrictAbundance(id taxon.ID) (float64, error) {
	a, ok := s.abund[id]
	if !ok {
		return 0, fmt.Errorf("sample %q: taxon %q: %w", s.name, id, ErrLookupMiss)
	}
	return a, nil
}

// Has returns true if the taxon
// is observed in the sample.
func (s *Sample) Has(id taxon.ID) bool {
	_, ok := s.abund[id]
	return ok
}

// IDs returns the identities of the taxa in the sample
// in the order in which they were observed.
func (s *Sample) IDs() []taxon.ID {
	ids := make([]taxon.ID, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Len returns the number of taxa in the sample.
func (s *Sample) Len() int {
	return len(s.ids)
}
