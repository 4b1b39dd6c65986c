// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pathway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTaxa reads a taxon dictionary from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - feature id, the identifier of the feature
//   - taxon, the lineage of the taxon
//   - confidence, the confidence of the assignation
//
// Here is an example file:
//
//	Feature ID	Taxon	Confidence
//	4b5eeb300368260019c1fbc7a3c718fc	d__Bacteria; p__Bacteroidota; c__Bacteroidia; o__Bacteroidales; f__Bacteroidaceae; g__Bacteroides	0.9999
//	fe30ff0f71a38a39cf1717ec2be3a2fc	d__Bacteria; p__Firmicutes; c__Clostridia	0.8730
func ReadTaxa(r io.Reader) ([]Taxon, error) {
	tab, fields, err := newReader(r, "feature id", "taxon", "confidence")
	if err != nil {
		return nil, err
	}

	var taxa []Taxon
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "feature id"
		id := strings.TrimSpace(row[fields[f]])
		if id == "" {
			continue
		}

		f = "taxon"
		lineage := strings.TrimSpace(row[fields[f]])
		if lineage == "" {
			continue
		}

		f = "confidence"
		conf, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %q: %v", ln, f, row[fields[f]], err)
		}

		taxa = append(taxa, Taxon{
			ID:         id,
			Lineage:    lineage,
			Confidence: conf,
		})
	}
	return taxa, nil
}

// ReadFunctions reads a function dictionary from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - pathway, the code of the pathway
//   - description, a description of the pathway
//
// Here is an example file:
//
//	pathway	description
//	PWY-1361	benzoyl-CoA degradation I (aerobic)
//	PWY-5430	meta-cleavage pathway of aromatic compounds
func ReadFunctions(r io.Reader) ([]Function, error) {
	tab, fields, err := newReader(r, "pathway", "description")
	if err != nil {
		return nil, err
	}

	var funcs []Function
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "pathway"
		code := strings.TrimSpace(row[fields[f]])
		if code == "" {
			continue
		}

		f = "description"
		desc := strings.Join(strings.Fields(row[fields[f]]), " ")

		funcs = append(funcs, Function{
			Code:        code,
			Description: desc,
		})
	}
	return funcs, nil
}

// ReadParent reads a parent mapping from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - function, the code of a pathway
//   - taxon, the feature identifier of a taxon
//
// Any other field will be ignored.
//
// Here is an example file:
//
//	sample	function	taxon
//	AA1	PWY-1361	4b5eeb300368260019c1fbc7a3c718fc
//	AA1	PWY-5430	fe30ff0f71a38a39cf1717ec2be3a2fc
func ReadParent(r io.Reader) ([]Link, error) {
	tab, fields, err := newReader(r, "function", "taxon")
	if err != nil {
		return nil, err
	}

	var links []Link
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "function"
		fn := strings.TrimSpace(row[fields[f]])

		f = "taxon"
		tx := strings.TrimSpace(row[fields[f]])
		if fn == "" || tx == "" {
			continue
		}

		links = append(links, Link{
			Function: fn,
			Taxon:    tx,
		})
	}
	return links, nil
}

func newReader(r io.Reader, fs ...string) (*csv.Reader, map[string]int, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.Join(strings.Fields(h), " "))
		fields[h] = i
	}
	for _, h := range fs {
		if _, ok := fields[h]; !ok {
			return nil, nil, fmt.Errorf("expecting field %q", h)
		}
	}
	return tab, fields, nil
}

// WriteFunctions writes a list of pathways
// and its descriptions
// as a TSV file.
func WriteFunctions(w io.Writer, funcs []Function) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"pathway", "description"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, f := range funcs {
		row := []string{
			f.Code,
			f.Description,
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
