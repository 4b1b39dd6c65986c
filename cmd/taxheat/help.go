// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(abundanceFilesGuide)
	app.Add(dictionaryFilesGuide)
	app.Add(paramFilesGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
TaxHeat requires several tables to build an annotated abundance matrix. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best way to
edit or view this file is by using taxheat commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# taxheat project files
	dataset	path
	abundance	abundance.tab
	functions	function-dictionary.tab
	params	params.tab
	parent	parent.tab
	taxa	taxon-dictionary.tab

The valid file types are:

- Abundance tables. Defined by the dataset keyword "abundance". This file
  contains the relative abundance of each taxon in each sample. See
  "taxheat help abundance-files".
- Function dictionaries. Defined by the dataset keyword "functions". This file
  contains the description of each pathway. See
  "taxheat help dictionary-files".
- Parent mappings. Defined by the dataset keyword "parent". This file
  associates each function with the taxon features that perform it. See
  "taxheat help dictionary-files".
- Taxon dictionaries. Defined by the dataset keyword "taxa". This file
  contains the lineage of each taxon feature. See
  "taxheat help dictionary-files".
- Analysis parameters. Defined by the dataset keyword "params". See
  "taxheat help param-files".

The recommended way to add files to a project is by using the command
'taxheat add'.
	`,
}

var abundanceFilesGuide = &command.Command{
	Usage: "abundance-files",
	Short: "about abundance tables",
	Long: `
An abundance table is a tab-delimited file with the relative abundance of the
taxa in one or more samples. It must contain the following columns:

	- domain
	- phylum
	- class (or classification)
	- order
	- family
	- genus

with the taxonomic name of each level. Empty cells, or the value "__", are
interpreted as levels without assignment. Names like "g__uncultured" are
also interpreted as placeholders. The name used for a taxon is the most
specific name that is not a placeholder.

Any other column is a sample, and its values are the relative abundances of
each taxon in the sample, as a fraction between 0 and 1. Empty cells are
read as 0.

Here is an example file:

	# abundance table
	domain	phylum	class	order	family	genus	AA1	BB2
	d__Bacteria	p__Bacteroidota	c__Bacteroidia	o__Bacteroidales	f__Bacteroidaceae	g__Bacteroides	0.12	0.003
	d__Bacteria	p__Chloroflexi	c__Anaerolineae	o__Anaerolineales	f__Anaerolineaceae	g__uncultured	0.01	0.25

In a taxheat project, the abundance table is indicated with the "abundance"
keyword.
	`,
}

var dictionaryFilesGuide = &command.Command{
	Usage: "dictionary-files",
	Short: "about taxon and function dictionaries",
	Long: `
Three tables are used to associate taxa with metabolic pathways. All of them
are tab-delimited files.

The taxon dictionary associates a taxon feature (for example, the hash of an
amplicon sequence) with a lineage, and the confidence of the assignation. It
must contain the following columns:

	- feature id  the identifier of the feature
	- taxon       the lineage, with the levels separated by ";"
	- confidence  the confidence of the assignation

Here is an example file:

	Feature ID	Taxon	Confidence
	4b5eeb30	d__Bacteria; p__Firmicutes; c__Clostridia; o__Clostridiales; f__Clostridiaceae; g__Clostridium	0.95

The taxa associated with a pathway are listed by decreasing confidence, and
each taxon name is listed only once.

The function dictionary contains the description of each pathway. It must
contain the following columns:

	- pathway      the code of the pathway
	- description  the description of the pathway

Here is an example file:

	pathway	description
	PWY-5430	meta-cleavage pathway of aromatic compounds
	PWY-1361	benzoyl-CoA degradation I (aerobic)

The parent mapping associates each function with the features that perform
it. It must contain the following columns:

	- function  the code of the pathway
	- taxon     the identifier of the feature

Other columns are ignored. Here is an example file:

	sample	function	taxon
	AA1	PWY-5430	4b5eeb30

In a taxheat project, the taxon dictionary is indicated with the "taxa"
keyword, the function dictionary with the "functions" keyword, and the parent
mapping with the "parent" keyword.
	`,
}

var paramFilesGuide = &command.Command{
	Usage: "param-files",
	Short: "about analysis parameter files",
	Long: `
The analysis parameters of a taxheat project are stored in a tab-delimited
file with the following columns:

	- parameter  the name of the parameter
	- value      the value of the parameter

The valid parameters are:

	- sample     a sample to be used. It can be repeated, and the order
	             of the file is the order of the matrix columns. If no
	             sample is given, all samples are used.
	- strict     if true, an unknown sample is an error.
	- threshold  a percentage. Values at or below the threshold are
	             ignored, and taxa without any value above the threshold
	             are removed.
	- level      the taxonomic level used to aggregate taxa.
	- pathway    a pathway code. It can be repeated, up to 9 pathways.
	- search     a term to search in the pathway descriptions. The first
	             9 matching pathways are used.
	- max        the value painted with the most intense color in a heat
	             map.
	- color      the color scheme of a heat map. Valid values are
	             "iridescent", "incandescent", "rainbow", and "gray".
	- name       a label for a sample column. It can be repeated.
	- cluster    the dimension of the matrix that is clustered. Valid
	             values are "samples", "taxa", and "none".

Here is an example file:

	# taxheat parameters
	parameter	value
	sample	AA1
	sample	BB2
	threshold	2
	level	genus
	pathway	PWY-5430
	pathway	PWY-1361
	cluster	samples

In a taxheat project, the parameter file is indicated with the "params"
keyword. The recommended way to edit the parameters is by using the command
'taxheat param'.
	`,
}
