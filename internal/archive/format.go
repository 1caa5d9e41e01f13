// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes lookups as a human-readable table to w.
func FormatTable(lookups []Lookup, w io.Writer) {
	if len(lookups) == 0 {
		fmt.Fprintln(w, "No archived lookups.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-10s  %-40s  %-10s  %s\n",
		"Fetched", "Accession", "Protein", "Gene", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, l := range lookups {
		fmt.Fprintf(w, "%-20s  %-10s  %-40s  %-10s  %s\n",
			l.FetchedAt.Local().Format("2006-01-02 15:04:05"),
			l.Accession,
			truncate(l.ProteinName, 40),
			l.Gene,
			l.OutputPath)
	}
	fmt.Fprintf(w, "\n%d lookups\n", len(lookups))
}

// FormatJSON writes lookups as indented JSON to w.
func FormatJSON(lookups []Lookup, w io.Writer) error {
	if lookups == nil {
		lookups = []Lookup{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lookups)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
