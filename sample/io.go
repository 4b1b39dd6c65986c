// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/taxheat/taxon"
)

// Columns returns the names of the sample columns
// defined in the header of an abundance table.
func Columns(r io.Reader) ([]string, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	_, cols, err := readHeader(head)
	if err != nil {
		return nil, err
	}
	return cols, nil
}

// ReadTSV reads the samples with the given names
// from an abundance table in a TSV file.
//
// The TSV file must contain the six taxonomic levels
// (domain, phylum, class, order, family, and genus)
// followed by a column for each sample,
// with the relative abundance of the taxon
// in that sample
// (as a fraction between 0 and 1).
// Empty level cells are read as the no assignment marker,
// and empty abundance cells are read as 0.
//
// Here is an example file:
//
//	domain	phylum	class	order	family	genus	AA1	BB2
//	d__Bacteria	p__Bacteroidota	c__Bacteroidia	o__Bacteroidales	f__Bacteroidaceae	g__Bacteroides	0.120000	0.003000
//	d__Bacteria	p__Chloroflexi	c__Anaerolineae	o__Anaerolineales	f__Anaerolineaceae	g__uncultured	0.010000	0.250000
//
// Samples are returned in the order of the names.
// If no name is given,
// all the samples in the file are returned,
// in the order of the file columns.
// If strict is true,
// a requested name without a column is an ErrUnknownSample error;
// otherwise it is skipped,
// and returned in the list of skipped names,
// so the caller can report it.
func ReadTSV(r io.Reader, names []string, strict bool) (samples []*Sample, skipped []string, err error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("while reading header: %v", err)
	}
	levels, cols, err := readHeader(head)
	if err != nil {
		return nil, nil, err
	}
	fields := make(map[string]int, len(cols))
	for i, h := range head {
		h = strings.Join(strings.Fields(h), " ")
		if _, ok := fields[h]; ok {
			continue
		}
		fields[h] = i
	}

	if len(names) == 0 {
		names = cols
	}
	var sel []string
	for _, n := range names {
		n = strings.Join(strings.Fields(n), " ")
		if slices.Contains(sel, n) || slices.Contains(skipped, n) {
			return nil, nil, fmt.Errorf("sample %q requested more than once", n)
		}
		if !slices.Contains(cols, n) {
			if strict {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSample, n)
			}
			skipped = append(skipped, n)
			continue
		}
		sel = append(sel, n)
	}

	rows := make(map[string][]Row, len(sel))
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		var lv [taxon.NumLevels]string
		for i, c := range levels {
			lv[i] = row[c]
		}
		h, err := taxon.New(lv[:]...)
		if err != nil {
			return nil, nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		for _, s := range sel {
			v := strings.TrimSpace(row[fields[s]])
			if v == "" {
				rows[s] = append(rows[s], Row{Taxon: h})
				continue
			}
			a, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("on row %d: field %q: %v", ln, s, err)
			}
			rows[s] = append(rows[s], Row{Taxon: h, Abundance: a})
		}
	}

	samples = make([]*Sample, 0, len(sel))
	for _, s := range sel {
		smp, err := New(s, rows[s])
		if err != nil {
			return nil, nil, err
		}
		samples = append(samples, smp)
	}
	return samples, skipped, nil
}

// readHeader returns the column of each taxonomic level
// and the names of the sample columns.
func readHeader(head []string) ([taxon.NumLevels]int, []string, error) {
	var levels [taxon.NumLevels]int
	for i := range levels {
		levels[i] = -1
	}

	var cols []string
	for i, h := range head {
		h = strings.Join(strings.Fields(h), " ")
		if l, err := taxon.ParseLevel(h); err == nil {
			if levels[l] < 0 {
				levels[l] = i
			}
			continue
		}
		if h == "" || slices.Contains(cols, h) {
			continue
		}
		cols = append(cols, h)
	}

	for l, c := range levels {
		if c < 0 {
			return levels, nil, fmt.Errorf("expecting field %q", taxon.Level(l))
		}
	}
	return levels, cols, nil
}

// TSV writes a set of samples as an abundance table.
// Taxa are written in the order in which they are first observed
// across the samples.
func TSV(w io.Writer, samples []*Sample) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := make([]string, 0, taxon.NumLevels+len(samples))
	for _, l := range taxon.Levels() {
		header = append(header, l.String())
	}
	for _, s := range samples {
		header = append(header, s.Name())
	}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	seen := make(map[taxon.ID]bool)
	for _, s := range samples {
		for _, id := range s.ids {
			if seen[id] {
				continue
			}
			seen[id] = true

			row := make([]string, 0, len(header))
			row = append(row, id[:]...)
			for _, o := range samples {
				row = append(row, strconv.FormatFloat(o.Abundance(id), 'f', 6, 64))
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
