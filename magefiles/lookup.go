//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Lookup builds the CLI and fetches a sample entry. Set ACCESSION to pick
// another entry (default P04637).
func Lookup() error {
	mg.Deps(Build)
	acc := os.Getenv("ACCESSION")
	if acc == "" {
		acc = "P04637"
	}
	return sh.RunV(filepath.Join(binDir, binName), "--id", acc, "--out", filepath.Join(binDir, acc+".json"))
}
