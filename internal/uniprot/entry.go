// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

// Comment types read by the projector.
const (
	CommentFunction            = "FUNCTION"
	CommentSubcellularLocation = "SUBCELLULAR_LOCATION"
)

// Feature categories treated as domain annotations.
const (
	CategoryDomain            = "DOMAIN"
	CategoryRegion            = "REGION"
	CategoryTopologicalDomain = "TOPOLOGICAL_DOMAIN"
)

// DatabasePDB is the cross-reference database name for structures.
const DatabasePDB = "PDB"

// Entry is the subset of a UniProtKB JSON entry that drugtarget reads.
// Every nested object is a pointer or slice so that a missing path decodes
// to nil instead of a zero value.
type Entry struct {
	PrimaryAccession   string              `json:"primaryAccession"`
	ProteinDescription *ProteinDescription `json:"proteinDescription,omitempty"`
	Genes              []Gene              `json:"genes,omitempty"`
	Organism           *Organism           `json:"organism,omitempty"`
	Sequence           *Sequence           `json:"sequence,omitempty"`
	Keywords           []Keyword           `json:"keywords,omitempty"`
	Comments           []Comment           `json:"comments,omitempty"`
	Features           []Feature           `json:"features,omitempty"`
	CrossReferences    []CrossReference    `json:"uniProtKBCrossReferences,omitempty"`
}

// Value is the common {"value": ...} wrapper used throughout the schema.
type Value struct {
	Value *string `json:"value,omitempty"`
}

// String returns the wrapped text, or "" when v or its value is nil.
func (v *Value) String() string {
	if v == nil || v.Value == nil {
		return ""
	}
	return *v.Value
}

type ProteinDescription struct {
	RecommendedName *ProteinName `json:"recommendedName,omitempty"`
}

type ProteinName struct {
	FullName *Value `json:"fullName,omitempty"`
}

type Gene struct {
	GeneName *Value `json:"geneName,omitempty"`
}

type Organism struct {
	ScientificName *string `json:"scientificName,omitempty"`
	TaxonID        int     `json:"taxonId,omitempty"`
}

type Sequence struct {
	Length *int `json:"length,omitempty"`
	Mass   *int `json:"mass,omitempty"`
	// MolWeight is the key current UniProtKB releases use for the mass.
	MolWeight *int `json:"molWeight,omitempty"`
}

// SequenceMass returns the sequence mass, preferring "mass" and falling
// back to "molWeight".
func (s *Sequence) SequenceMass() *int {
	if s == nil {
		return nil
	}
	if s.Mass != nil {
		return s.Mass
	}
	return s.MolWeight
}

type Keyword struct {
	ID    string  `json:"id,omitempty"`
	Value *string `json:"value,omitempty"`
}

// Comment is a free-text or structured annotation. Only the fields used by
// FUNCTION and SUBCELLULAR_LOCATION comments are decoded.
type Comment struct {
	CommentType          string                `json:"commentType"`
	Texts                []Value               `json:"texts,omitempty"`
	SubcellularLocations []SubcellularLocation `json:"subcellularLocations,omitempty"`
}

type SubcellularLocation struct {
	Location *Value `json:"location,omitempty"`
	Topology *Value `json:"topology,omitempty"`
}

type Feature struct {
	Type        string           `json:"type,omitempty"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
	Location    *FeatureLocation `json:"location,omitempty"`
}

type FeatureLocation struct {
	Start *Position `json:"start,omitempty"`
	End   *Position `json:"end,omitempty"`
}

type Position struct {
	Value    *int   `json:"value,omitempty"`
	Modifier string `json:"modifier,omitempty"`
}

type CrossReference struct {
	Database string `json:"database"`
	ID       string `json:"id"`
}

// searchResponse is the body of GET /uniprotkb/search.
type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	PrimaryAccession string `json:"primaryAccession"`
}
