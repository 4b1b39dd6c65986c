// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxon implements the six-level taxonomic hierarchy
// used to classify the organisms of an abundance survey.
//
// A hierarchy is read from domain to genus,
// and any level can be a placeholder
// (either "no assignment",
// or "uncultured at this level").
// The identity of a hierarchy is the exact content
// of its six levels,
// placeholders included,
// so it can be used as a join key
// across independently read samples.
package taxon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIntegrity is returned when a taxonomic record,
// or a value associated with it,
// is malformed.
var ErrIntegrity = errors.New("invalid taxonomic data")

// ErrLevel is returned when a taxonomic level name
// is not one of the six recognized levels.
var ErrLevel = errors.New("invalid taxonomic level")

// Level is a taxonomic level.
type Level int

// Valid taxonomic levels,
// from the least to the most specific.
const (
	Domain Level = iota
	Phylum
	Class
	Order
	Family
	Genus
)

// NumLevels is the number of levels in a hierarchy.
const NumLevels = 6

var levelNames = [NumLevels]string{
	"domain",
	"phylum",
	"class",
	"order",
	"family",
	"genus",
}

// Prefixes used by the taxonomic levels
// in classification outputs
// (e.g., "g__Bacteroides").
var levelPrefix = [NumLevels]string{
	"d__",
	"p__",
	"c__",
	"o__",
	"f__",
	"g__",
}

// String returns the name of the level.
func (l Level) String() string {
	if l < Domain || l > Genus {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Levels returns the taxonomic levels
// from the least to the most specific.
func Levels() []Level {
	return []Level{Domain, Phylum, Class, Order, Family, Genus}
}

// ParseLevel returns the level with the given name.
// The name "classification" is accepted
// as a synonym of class.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "classification" {
		return Class, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return Domain, fmt.Errorf("%w: %q", ErrLevel, name)
}

// NoAssignment is the placeholder
// for a level without an assigned name.
const NoAssignment = "__"

const uncultured = "uncultured"

// IsPlaceholder returns true if the name of a level
// is a placeholder:
// an empty value,
// the no assignment marker,
// or the uncultured marker of that level
// (e.g., "f__uncultured" for a family).
func IsPlaceholder(l Level, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == NoAssignment {
		return true
	}
	if l < Domain || l > Genus {
		return false
	}
	return name == levelPrefix[l]+uncultured
}
