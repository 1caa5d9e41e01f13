// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/drugtarget/internal/archive"
	"github.com/pdiddy/drugtarget/internal/logger"
	"github.com/pdiddy/drugtarget/internal/lookup"
	"github.com/pdiddy/drugtarget/internal/summary"
	"github.com/pdiddy/drugtarget/internal/uniprot"
)

func init() {
	f := rootCmd.Flags()
	f.String("id", "", "UniProt accession (e.g. P04637)")
	f.String("gene", "", "gene symbol (e.g. TP53)")
	f.String("organism", uniprot.DefaultOrganism, "organism name for --gene")
	f.String("out", summary.DefaultOutputPath, "output file (.json, .yaml or .yml)")
	f.String("format", "", "output format: json or yaml (default: from --out extension)")
	f.Duration("timeout", uniprot.DefaultTimeout, "HTTP request timeout")
	rootCmd.MarkFlagsMutuallyExclusive("id", "gene")
}

func runLookup(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	gene, _ := cmd.Flags().GetString("gene")

	sel := uniprot.Selector{
		Accession: id,
		Gene:      gene,
		Organism:  viper.GetString(keyOrganism),
	}
	if sel.IsEmpty() {
		return uniprot.ErrNoSelector
	}

	out := outputConfig(viper.GetViper())
	if _, err := summary.ResolveFormat(out.Path, out.Format); err != nil {
		return err
	}
	opts := lookup.Options{Selector: sel, Output: out}

	if out.ArchivePath != "" {
		store, err := archive.Open(out.ArchivePath)
		if err != nil {
			logger.Warn("archive unavailable", zap.String("path", out.ArchivePath), zap.Error(err))
		} else {
			defer store.Close()
			opts.Archive = store
		}
	}

	client := uniprot.NewClient(uniProtConfig(viper.GetViper()))
	if _, err := lookup.Run(cmd.Context(), client, opts, cmd.OutOrStdout()); err != nil {
		return &lookupError{err: err}
	}
	return nil
}
