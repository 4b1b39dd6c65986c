// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// TaxHeat is a tool to compare the taxonomic composition of samples
// using heat maps annotated with metabolic pathways.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/cmd/taxheat/add"
	"github.com/js-arias/taxheat/cmd/taxheat/cluster"
	"github.com/js-arias/taxheat/cmd/taxheat/heatmap"
	"github.com/js-arias/taxheat/cmd/taxheat/matrix"
	"github.com/js-arias/taxheat/cmd/taxheat/param"
	"github.com/js-arias/taxheat/cmd/taxheat/pathway"
	"github.com/js-arias/taxheat/cmd/taxheat/prj"
	"github.com/js-arias/taxheat/cmd/taxheat/samples"
)

var app = &command.Command{
	Usage: "taxheat <command> [<argument>...]",
	Short: "a tool for comparison of taxonomic abundances",
}

func init() {
	app.Add(add.Command)
	app.Add(cluster.Command)
	app.Add(heatmap.Command)
	app.Add(matrix.Command)
	app.Add(param.Command)
	app.Add(pathway.Command)
	app.Add(prj.Command)
	app.Add(samples.Command)
}

func main() {
	app.Main()
}
