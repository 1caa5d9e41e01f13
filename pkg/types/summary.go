// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for drugtarget.
//
// Summary is the flat projection of a UniProtKB entry. Pointer fields are
// nil when the upstream record does not carry the value; they serialize as
// an explicit null rather than being omitted.
package types

// Summary holds the curated fields extracted from one UniProtKB entry.
type Summary struct {
	// Accession is the primary accession of the entry (e.g. "P04637").
	Accession string `json:"primaryAccession" yaml:"primaryAccession"`

	// ProteinName is the recommended full name.
	ProteinName *string `json:"proteinName" yaml:"proteinName"`

	// GeneNames lists the gene name of every gene entry that has one.
	// An entry whose gene name carries no value is kept as nil.
	GeneNames []*string `json:"geneNames" yaml:"geneNames"`

	// Organism is the scientific name of the source organism.
	Organism *string `json:"organism" yaml:"organism"`

	// Length is the sequence length in amino acids.
	Length *int `json:"length" yaml:"length"`

	// Mass is the sequence mass in Daltons.
	Mass *int `json:"sequence_mw" yaml:"sequence_mw"`

	Keywords []*string `json:"keywords" yaml:"keywords"`

	// SubcellularLocations holds one "location ; topology" string per
	// location entry, in encounter order.
	SubcellularLocations []string `json:"subcellular_locations" yaml:"subcellular_locations"`

	// Domains lists domain, region and topological domain features in
	// source order.
	Domains []Domain `json:"domains" yaml:"domains"`

	// PDBCount is the number of PDB cross-references.
	PDBCount int `json:"pdb_count" yaml:"pdb_count"`

	// PDBEntries lists PDB identifiers in source order.
	PDBEntries []string `json:"pdb_entries" yaml:"pdb_entries"`

	// Functions holds one entry per FUNCTION comment.
	Functions []string `json:"functions" yaml:"functions"`
}

// Domain is an annotated span of the sequence.
type Domain struct {
	Name  *string `json:"name" yaml:"name"`
	Start *int    `json:"start" yaml:"start"`
	End   *int    `json:"end" yaml:"end"`
}
