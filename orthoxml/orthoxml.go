// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package orthoxml implements a reader
// for the orthoXML format,
// an XML format used to store orthology relationships
// between the genes of a collection of genomes.
//
// In an orthoXML document,
// genes are defined per species,
// and then referenced
// from a forest of hierarchical orthologous groups,
// in which each group is a gene family
// at a given taxonomic level.
//
// See the format definition at:
// <https://orthoxml.org>.
package orthoxml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/js-arias/hogevo/genome"
	"github.com/js-arias/hogevo/logger"
	"github.com/klauspost/pgzip"
	"go.uber.org/zap"
)

// A Document is the content of an orthoXML file.
type Document struct {
	XMLName xml.Name `xml:"orthoXML"`

	// Program that created the document
	Origin        string `xml:"origin,attr"`
	OriginVersion string `xml:"originVersion,attr"`

	// Version of the orthoXML format
	Version string `xml:"version,attr"`

	Species []Species `xml:"species"`
	Groups  []*Group  `xml:"groups>orthologGroup"`
}

// A Species is the definition
// of the genes of an extant genome.
type Species struct {
	Name      string     `xml:"name,attr"`
	TaxID     string     `xml:"NCBITaxId,attr"`
	Databases []Database `xml:"database"`
}

// A Database is a set of genes of a species
// defined from a particular source database.
type Database struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
	Genes   []Gene `xml:"genes>gene"`
}

// A Gene is the definition of a gene.
// The ID field is the internal identifier
// used by the gene references
// of the orthologous groups,
// and must be unique across the whole document.
// The other identifiers are external IDs
// and can be empty.
type Gene struct {
	ID     string `xml:"id,attr"`
	ProtID string `xml:"protId,attr"`
	GeneID string `xml:"geneId,attr"`
}

// A Group is a hierarchical orthologous group.
// The members of the group can be gene references,
// nested orthologous groups,
// or paralogous groups.
type Group struct {
	ID         string     `xml:"id,attr"`
	Properties []Property `xml:"property"`
	GeneRefs   []GeneRef  `xml:"geneRef"`
	Subgroups  []*Group   `xml:"orthologGroup"`
	Paralogs   []*Group   `xml:"paralogGroup"`
}

// A GeneRef is a reference to a gene
// defined in the species section of the document.
type GeneRef struct {
	ID string `xml:"id,attr"`
}

// A Property is a tag-value annotation of a group.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// TaxRange returns the taxonomic level of a group,
// as indicated by the "TaxRange" property.
// It returns an empty string
// if the group has no defined level.
func (g *Group) TaxRange() string {
	for _, p := range g.Properties {
		if p.Name == "TaxRange" {
			return p.Value
		}
	}
	return ""
}

// IsEmpty returns true if a group has no members.
func (g *Group) IsEmpty() bool {
	return len(g.GeneRefs) == 0 && len(g.Subgroups) == 0 && len(g.Paralogs) == 0
}

// Read reads an orthoXML document from r.
// Gzip compressed documents are detected
// and expanded automatically.
func Read(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("orthoxml: %v", err)
	}

	var xr io.Reader = br
	if magic[0] == 0x1f && magic[1] == 0x8b {
		logger.Debug("orthoxml: gzip compressed document")
		z, err := pgzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("orthoxml: %v", err)
		}
		defer z.Close()
		xr = z
	}

	d := &Document{}
	dec := xml.NewDecoder(xr)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("orthoxml: %v", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	logger.Info("orthoxml: document read",
		zap.String("origin", d.Origin),
		zap.Int("species", len(d.Species)),
		zap.Int("genes", d.lenGenes()),
		zap.Int("groups", len(d.Groups)),
	)
	return d, nil
}

// Validate checks the document constraints:
// gene IDs must be non-empty
// and unique across all species,
// and top level groups must have members.
func (d *Document) validate() error {
	ids := make(map[string]bool, d.lenGenes())
	for _, sp := range d.Species {
		for _, db := range sp.Databases {
			for _, g := range db.Genes {
				if g.ID == "" {
					return fmt.Errorf("orthoxml: species %q: gene without ID: %w", sp.Name, genome.ErrInvalidArgument)
				}
				if ids[g.ID] {
					return fmt.Errorf("orthoxml: species %q: repeated gene ID %q: %w", sp.Name, g.ID, genome.ErrInvalidArgument)
				}
				ids[g.ID] = true
			}
		}
	}

	for i, g := range d.Groups {
		if g.IsEmpty() {
			return fmt.Errorf("orthoxml: group %d [ID %q]: group without members: %w", i+1, g.ID, genome.ErrInvalidArgument)
		}
	}
	return nil
}

// LenGenes returns the number of genes
// defined in the document.
func (d *Document) lenGenes() int {
	var n int
	for _, sp := range d.Species {
		for _, db := range sp.Databases {
			n += len(db.Genes)
		}
	}
	return n
}
