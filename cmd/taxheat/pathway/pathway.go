// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathway is a metapackage for commands
// that dealt with metabolic pathways.
package pathway

import (
	"github.com/js-arias/command"
	"github.com/js-arias/taxheat/cmd/taxheat/pathway/search"
	"github.com/js-arias/taxheat/cmd/taxheat/pathway/table"
	"github.com/js-arias/taxheat/cmd/taxheat/pathway/taxa"
)

var Command = &command.Command{
	Usage: "pathway <command> [<argument>...]",
	Short: "commands for metabolic pathways",
}

func init() {
	Command.Add(search.Command)
	Command.Add(table.Command)
	Command.Add(taxa.Command)
}
