// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package analysis

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/taxheat/heatmap"
	"github.com/js-arias/taxheat/taxon"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters
const (
	// Cluster is the dimension of the matrix
	// that is clustered:
	// "samples", "taxa", or "none".
	Cluster Param = "cluster"

	// Color is the color scheme of the heat map.
	Color Param = "color"

	// Level is the taxonomic level used to aggregate taxa.
	Level Param = "level"

	// Max is the value painted with the most intense color
	// in the heat map.
	Max Param = "max"

	// Name is a label used for a sample column.
	// It can be repeated.
	Name Param = "name"

	// Pathway is the code of a pathway.
	// It can be repeated.
	Pathway Param = "pathway"

	// Sample is the name of a sample.
	// It can be repeated.
	Sample Param = "sample"

	// Search is a term to search in the pathway descriptions.
	Search Param = "search"

	// Strict indicates that unknown samples are an error.
	Strict Param = "strict"

	// Threshold is the abundance percentage
	// at or below which values are ignored.
	Threshold Param = "threshold"
)

// Valid values for the Cluster parameter.
const (
	ClusterSamples = "samples"
	ClusterTaxa    = "taxa"
	ClusterNone    = "none"
)

// Config is the configuration of an analysis.
type Config struct {
	// Samples in the order of the matrix columns.
	// If empty,
	// all samples are used.
	Samples []string

	// If Strict is true,
	// unknown samples are an error,
	// otherwise they are ignored.
	Strict bool

	// Threshold as a percentage
	// (i.e., 2 for 2%).
	Threshold float64

	// Aggregation level.
	// If empty,
	// each taxon is a row.
	Level string

	// Pathways to annotate,
	// either as a list of codes
	// or as a search term.
	Pathways []string
	Search   string

	// Heat map options
	Max   float64
	Color string

	// Labels of the sample columns.
	Names []string

	// Clustered dimension.
	Cluster string
}

// DefaultConfig returns a configuration
// with the default values.
func DefaultConfig() *Config {
	return &Config{
		Color:   "iridescent",
		Cluster: ClusterSamples,
	}
}

// Validate returns an error
// if a value of the configuration is invalid.
func (cfg *Config) Validate() error {
	if t := cfg.Threshold; math.IsNaN(t) || t < 0 || t >= 100 {
		return fmt.Errorf("invalid threshold %.6f", cfg.Threshold)
	}
	if math.IsNaN(cfg.Max) || cfg.Max < 0 {
		return fmt.Errorf("invalid max value %.6f", cfg.Max)
	}
	if cfg.Level != "" {
		if _, err := taxon.ParseLevel(cfg.Level); err != nil {
			return err
		}
	}
	switch cfg.Cluster {
	case ClusterSamples, ClusterTaxa, ClusterNone:
	default:
		return fmt.Errorf("unknown cluster option %q", cfg.Cluster)
	}
	if _, err := heatmap.NewGradient(cfg.Color); err != nil {
		return err
	}
	return nil
}

var header = []string{
	"parameter",
	"value",
}

// ReadConfig reads a configuration from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Parameters that accept multiple values
// (sample, pathway, name)
// can be repeated,
// and the order of the file is preserved.
// Unknown parameters are ignored.
//
// Here is an example file:
//
//	# taxheat parameters
//	parameter	value
//	sample	AA1
//	sample	AA2
//	threshold	2
//	level	genus
//	pathway	PWY-5430
//	pathway	PWY-1361
//	cluster	samples
func ReadConfig(r io.Reader) (*Config, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	cfg := DefaultConfig()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(strings.TrimSpace(row[fields[f]])))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		switch p {
		case Cluster:
			cfg.Cluster = strings.ToLower(v)
		case Color:
			cfg.Color = strings.ToLower(v)
		case Level:
			cfg.Level = strings.ToLower(v)
		case Max:
			m, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			cfg.Max = m
		case Name:
			cfg.Names = append(cfg.Names, v)
		case Pathway:
			cfg.Pathways = append(cfg.Pathways, v)
		case Sample:
			cfg.Samples = append(cfg.Samples, v)
		case Search:
			cfg.Search = v
		case Strict:
			s, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			cfg.Strict = s
		case Threshold:
			t, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			cfg.Threshold = t
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfigFile reads a configuration from a file.
func ReadConfigFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return cfg, nil
}

// TSV writes a configuration as a TSV file.
func (cfg *Config) TSV(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	var rows [][]string
	for _, s := range cfg.Samples {
		rows = append(rows, []string{string(Sample), s})
	}
	rows = append(rows, []string{string(Strict), strconv.FormatBool(cfg.Strict)})
	rows = append(rows, []string{string(Threshold), strconv.FormatFloat(cfg.Threshold, 'f', -1, 64)})
	if cfg.Level != "" {
		rows = append(rows, []string{string(Level), cfg.Level})
	}
	for _, p := range cfg.Pathways {
		rows = append(rows, []string{string(Pathway), p})
	}
	if cfg.Search != "" {
		rows = append(rows, []string{string(Search), cfg.Search})
	}
	rows = append(rows, []string{string(Max), strconv.FormatFloat(cfg.Max, 'f', -1, 64)})
	if cfg.Color != "" {
		rows = append(rows, []string{string(Color), cfg.Color})
	}
	for _, n := range cfg.Names {
		rows = append(rows, []string{string(Name), n})
	}
	rows = append(rows, []string{string(Cluster), cfg.Cluster})

	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// WriteFile writes a configuration into a file.
func (cfg *Config) WriteFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# taxheat parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	if err := cfg.TSV(bw); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", name, err)
	}
	return nil
}
