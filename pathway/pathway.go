// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathway implements an index
// of the taxa associated with metabolic pathways.
//
// The index is built from three tables:
// a taxon dictionary
// (feature identifier, taxon lineage, and confidence),
// a function dictionary
// (pathway code and description),
// and a parent mapping
// (pathway code and feature identifier).
package pathway

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/taxheat/taxon"
)

// MaxPathways is the maximum number of pathways
// returned by a search.
const MaxPathways = 9

// ErrInvalidSpec is returned when a pathway selection
// is not valid.
var ErrInvalidSpec = errors.New("invalid pathway selection")

// Taxon is an entry of a taxon dictionary.
type Taxon struct {
	// Identifier of the feature
	// (e.g., a sequence variant).
	ID string

	// Lineage of the taxon,
	// with levels separated by semicolons.
	Lineage string

	// Confidence of the assignation
	// of the feature to the taxon.
	Confidence float64
}

// Function is an entry of a function dictionary.
type Function struct {
	Code        string
	Description string
}

// Link is an entry of a parent mapping.
type Link struct {
	Function string
	Taxon    string
}

type entry struct {
	id   string
	name string
	conf float64
}

// Index is an index of pathways and taxa.
type Index struct {
	taxa  []entry
	funcs []Function
	links []Link
}

// New creates a new index.
// The display name of each taxon
// is the resolved name of its lineage.
func New(taxa []Taxon, funcs []Function, links []Link) (*Index, error) {
	idx := &Index{
		taxa:  make([]entry, 0, len(taxa)),
		funcs: slices.Clone(funcs),
		links: slices.Clone(links),
	}
	for _, tx := range taxa {
		h, err := taxon.Parse(tx.Lineage)
		if err != nil {
			return nil, fmt.Errorf("taxon dictionary: feature %q: %w", tx.ID, err)
		}
		idx.taxa = append(idx.taxa, entry{
			id:   strings.TrimSpace(tx.ID),
			name: h.Name(),
			conf: tx.Confidence,
		})
	}
	return idx, nil
}

// Taxa returns the display names of the taxa
// associated with a pathway.
//
// Any pathway code in the parent mapping
// that contains the given pathway
// is used.
// Names are sorted by confidence,
// from the highest,
// and if a name is found more than once,
// only the occurrence with the highest confidence is kept.
// Ties are kept in the order of the taxon dictionary.
func (idx *Index) Taxa(pathway string) []string {
	pathway = strings.TrimSpace(pathway)
	if pathway == "" {
		return nil
	}

	ids := make(map[string]bool)
	for _, l := range idx.links {
		if !strings.Contains(l.Function, pathway) {
			continue
		}
		ids[strings.TrimSpace(l.Taxon)] = true
	}
	if len(ids) == 0 {
		return nil
	}

	var cands []entry
	for _, e := range idx.taxa {
		if !ids[e.id] {
			continue
		}
		cands = append(cands, e)
	}
	slices.SortStableFunc(cands, func(a, b entry) int {
		return cmp.Compare(b.conf, a.conf)
	})

	seen := make(map[string]bool, len(cands))
	names := make([]string, 0, len(cands))
	for _, e := range cands {
		if seen[e.name] {
			continue
		}
		seen[e.name] = true
		names = append(names, e.name)
	}
	return names
}

// Search returns the codes of the pathways
// with a description that contains the given term,
// regardless of the case.
// Codes are returned in the order of the function dictionary,
// up to MaxPathways codes.
func (idx *Index) Search(term string) []string {
	term = strings.ToLower(term)

	var codes []string
	for _, f := range idx.funcs {
		if !strings.Contains(strings.ToLower(f.Description), term) {
			continue
		}
		if slices.Contains(codes, f.Code) {
			continue
		}
		codes = append(codes, f.Code)
		if len(codes) == MaxPathways {
			break
		}
	}
	return codes
}

// Describe returns the entries of the function dictionary
// with a code that contains any of the given codes.
// Entries are returned in the order of the codes,
// and then in the order of the dictionary.
func (idx *Index) Describe(codes []string) []Function {
	var fs []Function
	used := make([]bool, len(idx.funcs))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		for i, f := range idx.funcs {
			if used[i] || !strings.Contains(f.Code, c) {
				continue
			}
			used[i] = true
			fs = append(fs, f)
		}
	}
	return fs
}

// Spec is a pathway selection.
// At most one of its fields should be defined.
type Spec struct {
	// A list of pathway codes.
	Names []string

	// A term to search
	// in the pathway descriptions.
	Search string
}

// Select returns the pathway codes
// of a pathway selection.
// If the selection is empty
// it returns no pathways.
func (idx *Index) Select(s Spec) ([]string, error) {
	search := strings.TrimSpace(s.Search)
	if len(s.Names) > 0 && search != "" {
		return nil, fmt.Errorf("%w: both a pathway list and a search term", ErrInvalidSpec)
	}
	if search != "" {
		return idx.Search(search), nil
	}

	names := make([]string, 0, len(s.Names))
	for _, n := range s.Names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("%w: empty pathway name", ErrInvalidSpec)
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil, nil
	}
	return names, nil
}
