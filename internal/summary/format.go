// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/drugtarget/pkg/types"
)

// Display limits for WriteText. The Summary itself is never trimmed.
const (
	maxPDBShown      = 5
	maxLocationShown = 3
	maxDomainShown   = 5
	maxFunctionChars = 400
)

// missing is printed in place of an absent value.
const missing = "N/A"

// WriteText writes s to w in the fixed human-readable layout.
func WriteText(s types.Summary, w io.Writer) error {
	var b strings.Builder

	b.WriteString("\n=== UniProt Summary ===\n")
	fmt.Fprintf(&b, "Accession: %s\n", orMissing(s.Accession))
	fmt.Fprintf(&b, "Protein:   %s\n", str(s.ProteinName))
	fmt.Fprintf(&b, "Gene(s):   %s\n", strings.Join(presentGenes(s.GeneNames), ", "))
	fmt.Fprintf(&b, "Organism:  %s\n", str(s.Organism))
	fmt.Fprintf(&b, "Length:    %s aa, Mass: %s Da\n", num(s.Length), num(s.Mass))
	fmt.Fprintf(&b, "PDB entries: %d, IDs: %s\n", s.PDBCount, strings.Join(head(s.PDBEntries, maxPDBShown), ", "))

	locations := strings.Join(head(s.SubcellularLocations, maxLocationShown), ", ")
	if locations == "" {
		locations = missing
	}
	fmt.Fprintf(&b, "Subcellular locations: %s\n", locations)

	b.WriteString("Domains (first 5):\n")
	for _, d := range head(s.Domains, maxDomainShown) {
		fmt.Fprintf(&b, " - %s (%s-%s)\n", str(d.Name), num(d.Start), num(d.End))
	}

	if len(s.Functions) > 0 {
		b.WriteString("Function (short):\n")
		fmt.Fprintf(&b, "  %s\n", truncateRunes(s.Functions[0], maxFunctionChars))
	}
	b.WriteString("=======================\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func presentGenes(genes []*string) []string {
	out := make([]string, 0, len(genes))
	for _, g := range genes {
		if g != nil && *g != "" {
			out = append(out, *g)
		}
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// truncateRunes returns at most n characters of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func str(p *string) string {
	if p == nil {
		return missing
	}
	return *p
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func num(p *int) string {
	if p == nil {
		return missing
	}
	return strconv.Itoa(*p)
}
