// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(orthoXMLGuide)
	app.Add(projectsGuide)
	app.Add(taxonomyFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Hogevo requires several files to read and process gene family data. To reduce
the burden of keeping track of many files, a single project file is used to
hold the reference of all files required in the analysis. This guide explains
the structure of the file, but most of the time, the best and most secure way
to edit or view this file is by using hogevo commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# hogevo project files
	dataset	path
	groups	families.orthoxml
	taxonomy	taxonomy.tree

The valid file types are:

- Gene families. Defined by the dataset keyword "groups". This file contains
  the gene families, with their hierarchical orthologous groups, in the form
  of an orthoXML document. The recommended way to add a gene family file is
  by using the command 'hogevo data set'.
- Taxonomy. Defined by the dataset keyword "taxonomy". This file contains the
  species tree used to locate the ancestral genomes, in the form of a newick
  file. The recommended way to add a taxonomy is by using the command
  'hogevo data set'.
- Time-calibrated trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. If no
  taxonomy is defined, the first tree in this file will be used as the
  taxonomy. The recommended way to add a tree file is by using the command
  'hogevo data set'.
	`,
}

var orthoXMLGuide = &command.Command{
	Usage: "orthoxml-files",
	Short: "about orthoXML files",
	Long: `
In hogevo, gene families are stored in an orthoXML file. OrthoXML is an XML
schema designed to describe orthology relationships, either as flat groups of
orthologous genes or as hierarchical orthologous groups, in which each group
can contain nested groups of orthologs and paralogs.

The recommended way to interact with an orthoXML file is by using the command
"hogevo data set" to add the file to a project. As orthoXML files can be
quite large, hogevo also accepts gzip-compressed orthoXML files.

An orthoXML document has two main blocks. The first block defines the extant
species, each one with one or more databases, and the collection of the genes
of the species:

	<species name="HUMAN" NCBITaxId="9606">
	  <database name="HUMANfake" version="0.1">
	    <genes>
	      <gene id="1" protId="HUMAN1" geneId="HUMANg1" />
	      <gene id="2" protId="HUMAN2" geneId="HUMANg2" />
	    </genes>
	  </database>
	</species>

The second block defines the groups. Each top level <orthologGroup> element
is a gene family, and the nested <orthologGroup>, <paralogGroup>, and
<geneRef> elements define the internal structure of the family:

	<groups>
	  <orthologGroup id="3">
	    <property name="TaxRange" value="Vertebrata"/>
	    <orthologGroup>
	      <property name="TaxRange" value="Euarchontoglires"/>
	      <paralogGroup>
	        <geneRef id="3" />
	        <geneRef id="33" />
	      </paralogGroup>
	    </orthologGroup>
	    <geneRef id="53" />
	  </orthologGroup>
	</groups>

The TaxRange property indicates the taxon in which an ortholog group is
located, and must match a taxon name in the project taxonomy.

In a hogevo project, the file that contains the gene families is indicated
with the "groups" keyword.
	`,
}

var taxonomyFilesGuide = &command.Command{
	Usage: "taxonomy-files",
	Short: "about taxonomy files",
	Long: `
In hogevo, the taxonomy is the species tree used to define the location of
the ancestral genomes. Each terminal of the tree is an extant species with a
sequenced genome, and each internal node is an ancestral genome.

The recommended way to interact with the taxonomy of a hogevo project is by
using the command "hogevo data set".

The preferred form of a taxonomy is a newick file:

	((((HUMAN,PANTR)Primates,(MOUSE,RATNO)Rodents),CANFA)Mammalia,XENTR);

All terminals must be named, and each name, of terminals or internal nodes,
must be unique. Internal nodes can be unnamed; unnamed nodes will be named
automatically using the names of their descendants, so the node will be
usable in commands that require the name of an ancestral genome.

A taxonomy can also be defined with a time-calibrated tree, stored in a
tab-delimited file with the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	primates	0	-1	90000000
	primates	1	0	0	Loris
	primates	2	0	60000000
	primates	3	2	0	Tarsius
	primates	4	2	0	Homo

If the project defines both a taxonomy and a tree file, the taxonomy takes
precedence; the tree file will be used only when no taxonomy is defined.

In a hogevo project, the file that contains the taxonomy is indicated with
the "taxonomy" keyword, and a tree file with the "trees" keyword.
	`,
}
