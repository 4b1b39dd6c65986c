// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxon

import (
	"fmt"
	"strings"
)

// Hierarchy is a taxonomic classification
// ordered from domain to genus.
type Hierarchy [NumLevels]string

// New creates a hierarchy from the names
// of the six levels,
// starting at domain.
// Empty names are stored as the no assignment marker.
func New(levels ...string) (Hierarchy, error) {
	var h Hierarchy
	if len(levels) != NumLevels {
		return h, fmt.Errorf("%w: found %d levels, want %d", ErrIntegrity, len(levels), NumLevels)
	}
	for i, n := range levels {
		h[i] = clean(n)
	}
	return h, nil
}

// Parse reads a lineage with the levels
// separated by semicolons
// (e.g., "d__Bacteria; p__Bacteroidota; g__Bacteroides").
// Missing levels at the end of the lineage
// are padded with the no assignment marker.
func Parse(lineage string) (Hierarchy, error) {
	var h Hierarchy
	lineage = strings.TrimSpace(lineage)
	if lineage == "" {
		return h, fmt.Errorf("%w: empty lineage", ErrIntegrity)
	}

	levels := strings.Split(lineage, ";")
	if len(levels) > NumLevels {
		return h, fmt.Errorf("%w: lineage %q: found %d levels, want %d", ErrIntegrity, lineage, len(levels), NumLevels)
	}
	for i := range h {
		if i < len(levels) {
			h[i] = clean(levels[i])
			continue
		}
		h[i] = NoAssignment
	}
	return h, nil
}

func clean(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return NoAssignment
	}
	return name
}

// ID returns the identity of the hierarchy.
func (h Hierarchy) ID() ID {
	return ID(h)
}

// Level returns the name stored at the given level.
func (h Hierarchy) Level(l Level) string {
	if l < Domain || l > Genus {
		return ""
	}
	return h[l]
}

// Name returns the display name of the hierarchy:
// the most specific level that is not a placeholder.
// If every level is a placeholder,
// the domain value is returned as is.
func (h Hierarchy) Name() string {
	for l := Genus; l > Domain; l-- {
		if !IsPlaceholder(l, h[l]) {
			return h[l]
		}
	}
	return h[Domain]
}

// Fill returns a new hierarchy
// in which each placeholder level
// takes the name of the level above it.
// A placeholder domain is kept.
func (h Hierarchy) Fill() Hierarchy {
	f := h
	for l := Phylum; l <= Genus; l++ {
		if IsPlaceholder(l, f[l]) {
			f[l] = f[l-1]
		}
	}
	return f
}

// Lineage returns the concrete names of the hierarchy
// joined by "; ",
// skipping the placeholders.
func (h Hierarchy) Lineage() string {
	names := make([]string, 0, NumLevels)
	for l, n := range h {
		if IsPlaceholder(Level(l), n) {
			continue
		}
		names = append(names, n)
	}
	return strings.Join(names, "; ")
}

// String returns the six levels of the hierarchy
// joined by semicolons.
func (h Hierarchy) String() string {
	return strings.Join(h[:], ";")
}

// ID is the identity of a hierarchy.
// Two records are the same taxon
// if and only if their identities are equal.
type ID [NumLevels]string

// Hierarchy returns the hierarchy of an identity.
func (id ID) Hierarchy() Hierarchy {
	return Hierarchy(id)
}

// String returns the six levels of the identity
// joined by semicolons.
func (id ID) String() string {
	return strings.Join(id[:], ";")
}
