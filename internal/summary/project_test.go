// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/drugtarget/internal/uniprot"
	"github.com/pdiddy/drugtarget/pkg/types"
)

const fullEntryJSON = `{
  "primaryAccession": "P04637",
  "proteinDescription": {
    "recommendedName": {"fullName": {"value": "Cellular tumor antigen p53"}}
  },
  "genes": [
    {"geneName": {"value": "TP53"}},
    {"orfNames": [{"value": "ORF1"}]},
    {"geneName": {}}
  ],
  "organism": {"scientificName": "Homo sapiens"},
  "sequence": {"length": 393, "mass": 43653},
  "keywords": [{"value": "Activator"}, {"value": "Apoptosis"}, {"id": "KW-9999"}],
  "comments": [
    {"commentType": "FUNCTION", "texts": [{"value": "Acts as a tumor suppressor."}, {"value": "Induces growth arrest."}]},
    {"commentType": "SUBCELLULAR_LOCATION", "subcellularLocations": [
      {"location": {"value": "Cytoplasm"}},
      {"location": {"value": "Nucleus"}, "topology": {"value": "Peripheral membrane protein"}},
      {"topology": {"value": "Single-pass membrane protein"}},
      {"location": {}, "topology": {"value": "Lipid-anchor"}}
    ]},
    {"commentType": "INTERACTION"},
    {"commentType": "FUNCTION", "texts": [{"value": "Second function block."}]}
  ],
  "features": [
    {"type": "Region", "category": "REGION", "description": "Disordered",
     "location": {"start": {"value": 1}, "end": {"value": 83}}},
    {"type": "Modified residue", "category": "PTM", "description": "Phosphoserine",
     "location": {"start": {"value": 6}, "end": {"value": 6}}},
    {"type": "Domain", "category": "DOMAIN", "description": "",
     "location": {"start": {"value": 100}, "end": {"value": 200}}},
    {"type": "Topological domain", "category": "TOPOLOGICAL_DOMAIN", "description": "Cytoplasmic",
     "location": {"start": {"value": 210}}}
  ],
  "uniProtKBCrossReferences": [
    {"database": "EMBL", "id": "X02469"},
    {"database": "PDB", "id": "1A1U"},
    {"database": "PDB", "id": "1AIE"},
    {"database": "RefSeq", "id": "NP_000537.3"}
  ]
}`

func decodeEntry(t *testing.T, raw string) *uniprot.Entry {
	t.Helper()
	var e uniprot.Entry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return &e
}

func TestProject_FullEntry(t *testing.T) {
	s := Project(decodeEntry(t, fullEntryJSON))

	assert.Equal(t, "P04637", s.Accession)
	require.NotNil(t, s.ProteinName)
	assert.Equal(t, "Cellular tumor antigen p53", *s.ProteinName)

	// Entry without geneName is skipped; geneName without value is nil.
	require.Len(t, s.GeneNames, 2)
	assert.Equal(t, "TP53", *s.GeneNames[0])
	assert.Nil(t, s.GeneNames[1])

	assert.Equal(t, "Homo sapiens", *s.Organism)
	assert.Equal(t, 393, *s.Length)
	assert.Equal(t, 43653, *s.Mass)

	require.Len(t, s.Keywords, 3)
	assert.Equal(t, "Activator", *s.Keywords[0])
	assert.Nil(t, s.Keywords[2])

	assert.Equal(t, []string{
		"Cytoplasm",
		"Nucleus ; Peripheral membrane protein",
		"Single-pass membrane protein",
		"Lipid-anchor",
	}, s.SubcellularLocations)

	assert.Equal(t, []string{
		"Acts as a tumor suppressor. Induces growth arrest.",
		"Second function block.",
	}, s.Functions)

	assert.Equal(t, 2, s.PDBCount)
	assert.Equal(t, []string{"1A1U", "1AIE"}, s.PDBEntries)
}

func TestProject_DomainsInSourceOrder(t *testing.T) {
	s := Project(decodeEntry(t, fullEntryJSON))

	require.Len(t, s.Domains, 3)

	assert.Equal(t, "Disordered", *s.Domains[0].Name)
	assert.Equal(t, 1, *s.Domains[0].Start)
	assert.Equal(t, 83, *s.Domains[0].End)

	// Empty description falls back to the feature type.
	assert.Equal(t, "Domain", *s.Domains[1].Name)
	assert.Equal(t, 100, *s.Domains[1].Start)

	assert.Equal(t, "Cytoplasmic", *s.Domains[2].Name)
	assert.Equal(t, 210, *s.Domains[2].Start)
	assert.Nil(t, s.Domains[2].End)
}

func TestProject_KeepsAllDomains(t *testing.T) {
	var e uniprot.Entry
	for i := 1; i <= 8; i++ {
		start, end := i*10, i*10+5
		e.Features = append(e.Features, uniprot.Feature{
			Type:     "Region",
			Category: uniprot.CategoryRegion,
			Location: &uniprot.FeatureLocation{
				Start: &uniprot.Position{Value: &start},
				End:   &uniprot.Position{Value: &end},
			},
		})
	}

	s := Project(&e)
	require.Len(t, s.Domains, 8)
	for i, d := range s.Domains {
		assert.Equal(t, (i+1)*10, *d.Start)
	}
}

func TestProject_EmptyEntry(t *testing.T) {
	s := Project(decodeEntry(t, `{"primaryAccession": "Q00001"}`))

	assert.Equal(t, "Q00001", s.Accession)
	assert.Nil(t, s.ProteinName)
	assert.Nil(t, s.Organism)
	assert.Nil(t, s.Length)
	assert.Nil(t, s.Mass)

	// Lists are empty, not nil, so they serialize as [].
	assert.NotNil(t, s.GeneNames)
	assert.Empty(t, s.GeneNames)
	assert.NotNil(t, s.Keywords)
	assert.NotNil(t, s.SubcellularLocations)
	assert.NotNil(t, s.Domains)
	assert.NotNil(t, s.PDBEntries)
	assert.NotNil(t, s.Functions)
	assert.Equal(t, 0, s.PDBCount)
}

func TestProject_PartialPaths(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, s types.Summary)
	}{
		{
			name: "protein description without recommended name",
			raw:  `{"proteinDescription": {"submissionNames": []}}`,
			want: func(t *testing.T, s types.Summary) { assert.Nil(t, s.ProteinName) },
		},
		{
			name: "recommended name without full name",
			raw:  `{"proteinDescription": {"recommendedName": {}}}`,
			want: func(t *testing.T, s types.Summary) { assert.Nil(t, s.ProteinName) },
		},
		{
			name: "organism without scientific name",
			raw:  `{"organism": {"taxonId": 9606}}`,
			want: func(t *testing.T, s types.Summary) { assert.Nil(t, s.Organism) },
		},
		{
			name: "sequence with molWeight only",
			raw:  `{"sequence": {"length": 10, "molWeight": 1200}}`,
			want: func(t *testing.T, s types.Summary) {
				assert.Equal(t, 10, *s.Length)
				assert.Equal(t, 1200, *s.Mass)
			},
		},
		{
			name: "feature without location",
			raw:  `{"features": [{"type": "Domain", "category": "DOMAIN"}]}`,
			want: func(t *testing.T, s types.Summary) {
				require.Len(t, s.Domains, 1)
				assert.Equal(t, "Domain", *s.Domains[0].Name)
				assert.Nil(t, s.Domains[0].Start)
				assert.Nil(t, s.Domains[0].End)
			},
		},
		{
			name: "feature without description or type",
			raw:  `{"features": [{"category": "REGION", "location": {"end": {"value": 5}}}]}`,
			want: func(t *testing.T, s types.Summary) {
				require.Len(t, s.Domains, 1)
				assert.Nil(t, s.Domains[0].Name)
				assert.Nil(t, s.Domains[0].Start)
				assert.Equal(t, 5, *s.Domains[0].End)
			},
		},
		{
			name: "location entry with neither value",
			raw:  `{"comments": [{"commentType": "SUBCELLULAR_LOCATION", "subcellularLocations": [{}]}]}`,
			want: func(t *testing.T, s types.Summary) {
				assert.Equal(t, []string{""}, s.SubcellularLocations)
			},
		},
		{
			name: "function comment without texts",
			raw:  `{"comments": [{"commentType": "FUNCTION"}]}`,
			want: func(t *testing.T, s types.Summary) {
				assert.Equal(t, []string{""}, s.Functions)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Project(decodeEntry(t, tt.raw)))
		})
	}
}

func TestProject_NoGenes(t *testing.T) {
	s := Project(decodeEntry(t, `{"primaryAccession": "P0DTC2", "genes": []}`))
	assert.Empty(t, s.GeneNames)
}

func TestProject_NilEntry(t *testing.T) {
	s := Project(nil)
	assert.Equal(t, "", s.Accession)
	assert.NotNil(t, s.Domains)
}
