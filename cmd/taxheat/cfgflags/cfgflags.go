// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cfgflags implements the command flags
// used to override the analysis parameters
// of a taxheat project.
package cfgflags

import (
	"flag"
	"strconv"
	"strings"

	"github.com/js-arias/taxheat/analysis"
)

// Usage is the usage line of the flags.
const Usage = `[--sample <list>] [--strict <bool>]
	[--threshold <value>] [--level <level>]
	[--pathway <list>] [--search <term>]
	[--max <value>] [--color <scheme>] [--names <list>]
	[--cluster <dimension>]`

// Help is the description of the flags.
const Help = `
The flag --sample sets the samples used in the analysis, as a comma separated
list. The order of the list is the order of the matrix columns. The flag
--strict with the value "true" makes unknown samples an error; otherwise
unknown samples are skipped, and reported as warnings.

The flag --threshold sets the percentage at or below which abundance values
are ignored. The flag --level sets the taxonomic level used to aggregate
taxa (domain, phylum, class, order, family, or genus).

The flag --pathway sets the pathways used to annotate the taxa, as a comma
separated list of codes (up to 9 pathways). Alternatively, the flag --search
sets a term to search in the pathway descriptions.

The flag --max sets the value painted with the most intense color in the heat
map. The flag --color sets the color scheme ("iridescent", "incandescent",
"rainbow", or "gray"). The flag --names sets the labels of the sample
columns, as a comma separated list.

The flag --cluster sets the dimension of the matrix that is clustered, using
the Aitchison distance and complete linkage. Valid values are "samples",
"taxa", and "none".
`

// Flags store the values of the flags.
type Flags struct {
	samples   string
	strict    string
	threshold float64
	level     string
	pathways  string
	search    string
	max       float64
	color     string
	names     string
	cluster   string
}

// Set defines the flags in a flag set.
func (f *Flags) Set(fs *flag.FlagSet) {
	fs.StringVar(&f.samples, "sample", "", "")
	fs.StringVar(&f.strict, "strict", "", "")
	fs.Float64Var(&f.threshold, "threshold", 0, "")
	fs.StringVar(&f.level, "level", "", "")
	fs.StringVar(&f.pathways, "pathway", "", "")
	fs.StringVar(&f.search, "search", "", "")
	fs.Float64Var(&f.max, "max", 0, "")
	fs.StringVar(&f.color, "color", "", "")
	fs.StringVar(&f.names, "names", "", "")
	fs.StringVar(&f.cluster, "cluster", "", "")
}

// Apply sets the values of the flags
// that were defined in the command line
// into a configuration.
// It returns true if any value was set.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *analysis.Config) (bool, error) {
	var err error
	var changed, pw, search bool
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "sample":
			cfg.Samples = list(f.samples)
		case "strict":
			var s bool
			s, err = strconv.ParseBool(f.strict)
			cfg.Strict = s
		case "threshold":
			cfg.Threshold = f.threshold
		case "level":
			cfg.Level = strings.ToLower(strings.TrimSpace(f.level))
		case "pathway":
			cfg.Pathways = list(f.pathways)
			pw = true
		case "search":
			cfg.Search = strings.TrimSpace(f.search)
			search = true
		case "max":
			cfg.Max = f.max
		case "color":
			cfg.Color = strings.ToLower(strings.TrimSpace(f.color))
		case "names":
			cfg.Names = list(f.names)
		case "cluster":
			cfg.Cluster = strings.ToLower(strings.TrimSpace(f.cluster))
		default:
			return
		}
		changed = true
	})
	if err != nil {
		return false, err
	}

	// a pathway selection in the command line
	// replaces the selection of the parameter file
	if pw && !search {
		cfg.Search = ""
	}
	if search && !pw {
		cfg.Pathways = nil
	}

	if err := cfg.Validate(); err != nil {
		return false, err
	}
	return changed, nil
}

func list(s string) []string {
	var ls []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		ls = append(ls, v)
	}
	return ls
}
