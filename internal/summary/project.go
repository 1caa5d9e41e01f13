// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary projects UniProtKB entries into flat summaries, renders
// them as text and persists them as JSON or YAML.
package summary

import (
	"strings"

	"github.com/pdiddy/drugtarget/internal/uniprot"
	"github.com/pdiddy/drugtarget/pkg/types"
)

// locationSeparator joins the location and topology of one subcellular
// location entry.
const locationSeparator = " ; "

// domainCategories are the feature categories reported as domains.
var domainCategories = map[string]bool{
	uniprot.CategoryDomain:            true,
	uniprot.CategoryRegion:            true,
	uniprot.CategoryTopologicalDomain: true,
}

// Project extracts the curated fields of e. Paths missing from the entry
// become nil fields; list fields are always non-nil.
func Project(e *uniprot.Entry) types.Summary {
	s := types.Summary{
		GeneNames:            []*string{},
		Keywords:             []*string{},
		SubcellularLocations: []string{},
		Domains:              []types.Domain{},
		PDBEntries:           []string{},
		Functions:            []string{},
	}
	if e == nil {
		return s
	}

	s.Accession = e.PrimaryAccession
	s.ProteinName = proteinName(e.ProteinDescription)

	for _, g := range e.Genes {
		if g.GeneName == nil {
			continue
		}
		s.GeneNames = append(s.GeneNames, g.GeneName.Value)
	}

	if e.Organism != nil {
		s.Organism = e.Organism.ScientificName
	}
	if e.Sequence != nil {
		s.Length = e.Sequence.Length
		s.Mass = e.Sequence.SequenceMass()
	}

	for _, kw := range e.Keywords {
		s.Keywords = append(s.Keywords, kw.Value)
	}

	for _, c := range e.Comments {
		switch c.CommentType {
		case uniprot.CommentSubcellularLocation:
			for _, loc := range c.SubcellularLocations {
				s.SubcellularLocations = append(s.SubcellularLocations, formatLocation(loc))
			}
		case uniprot.CommentFunction:
			s.Functions = append(s.Functions, joinTexts(c.Texts))
		}
	}

	for _, f := range e.Features {
		if !domainCategories[f.Category] {
			continue
		}
		s.Domains = append(s.Domains, domainOf(f))
	}

	for _, xr := range e.CrossReferences {
		if xr.Database != uniprot.DatabasePDB {
			continue
		}
		s.PDBEntries = append(s.PDBEntries, xr.ID)
	}
	s.PDBCount = len(s.PDBEntries)

	return s
}

func proteinName(pd *uniprot.ProteinDescription) *string {
	if pd == nil || pd.RecommendedName == nil || pd.RecommendedName.FullName == nil {
		return nil
	}
	return pd.RecommendedName.FullName.Value
}

// formatLocation joins whichever of location and topology carry text. A
// topology-only entry yields the topology text with no separator.
func formatLocation(loc uniprot.SubcellularLocation) string {
	var parts []string
	if v := loc.Location.String(); v != "" {
		parts = append(parts, v)
	}
	if v := loc.Topology.String(); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, locationSeparator)
}

func joinTexts(texts []uniprot.Value) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// domainOf names the domain by its description, falling back to the
// feature type.
func domainOf(f uniprot.Feature) types.Domain {
	var d types.Domain
	switch {
	case f.Description != "":
		d.Name = ptr(f.Description)
	case f.Type != "":
		d.Name = ptr(f.Type)
	}
	if f.Location != nil {
		if f.Location.Start != nil {
			d.Start = f.Location.Start.Value
		}
		if f.Location.End != nil {
			d.End = f.Location.End.Value
		}
	}
	return d
}

func ptr[T any](v T) *T { return &v }
