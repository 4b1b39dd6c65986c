// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/timetree"
)

// millionYears is used to transform heights
// (interpreted as million years)
// into ages in years.
const millionYears = 1_000_000

// age returns the age of a node in years.
func (dg *Dendrogram) age(id int) int64 {
	return int64(math.Round(dg.height(id) * millionYears))
}

// Terms returns the names used for the terminals
// of a tree built from the given labels.
// Terminal names in a time tree are case insensitive
// and must be unique,
// so a label that collides with a previous one
// is suffixed with its position
// (starting from 1).
func Terms(labels []string) []string {
	terms := make([]string, len(labels))
	used := make(map[string]bool, len(labels))
	for i, l := range labels {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			l = "terminal"
		}
		t := l
		for k := 0; used[strings.ToLower(t)]; k++ {
			if k == 0 {
				t = fmt.Sprintf("%s %d", l, i+1)
				continue
			}
			t = fmt.Sprintf("%s %d.%d", l, i+1, k)
		}
		used[strings.ToLower(t)] = true
		terms[i] = t
	}
	return terms
}

// Tree returns the dendrogram as a time tree collection
// with a single tree.
// Heights are interpreted as million years,
// so terminals have age 0
// and each node has the age of its merge
// (rounded to years).
//
// It also returns the name of each terminal in the tree,
// in the order of the labels,
// as the tree stores names in a canonical form.
func (dg *Dendrogram) Tree(name string, labels []string) (*timetree.Collection, []string, error) {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	if name == "" {
		return nil, nil, errors.New("cluster: empty tree name")
	}
	if dg.n < 2 {
		return nil, nil, fmt.Errorf("cluster: tree %q: at least two terminals required", name)
	}
	if len(labels) != dg.n {
		return nil, nil, fmt.Errorf("cluster: tree %q: got %d labels, want %d", name, len(labels), dg.n)
	}

	terms := Terms(labels)
	names := make([]string, dg.n)

	root := dg.n + len(dg.merges) - 1
	t := timetree.New(name, dg.age(root))

	var add func(id, node int) error
	add = func(id, node int) error {
		m := dg.merges[id-dg.n]
		pa := dg.age(id)
		for _, c := range []int{m.A, m.B} {
			ca := dg.age(c)
			if ca > pa {
				ca = pa
			}
			if c < dg.n {
				nid, err := t.Add(node, pa, terms[c])
				if err != nil {
					return err
				}
				names[c] = t.Taxon(nid)
				continue
			}
			nid, err := t.Add(node, pa-ca, "")
			if err != nil {
				return err
			}
			if err := add(c, nid); err != nil {
				return err
			}
		}
		return nil
	}
	if err := add(root, t.Root()); err != nil {
		return nil, nil, fmt.Errorf("cluster: tree %q: %v", name, err)
	}
	t.Format()
	if err := t.Validate(); err != nil {
		return nil, nil, fmt.Errorf("cluster: tree %q: %v", name, err)
	}

	c := timetree.NewCollection()
	if err := c.Add(t); err != nil {
		return nil, nil, fmt.Errorf("cluster: tree %q: %v", name, err)
	}
	return c, names, nil
}

// WriteTerms writes a TSV table
// with the name of each terminal in a tree
// and its original label.
func WriteTerms(w io.Writer, terms, labels []string) error {
	if len(terms) != len(labels) {
		return fmt.Errorf("cluster: got %d labels, want %d", len(labels), len(terms))
	}

	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"index", "term", "label"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, t := range terms {
		row := []string{
			strconv.Itoa(i),
			t,
			labels[i],
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
