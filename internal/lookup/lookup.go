// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup runs one resolve, project, present and persist pass for a
// single UniProtKB entry.
package lookup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/drugtarget/internal/archive"
	"github.com/pdiddy/drugtarget/internal/logger"
	"github.com/pdiddy/drugtarget/internal/summary"
	"github.com/pdiddy/drugtarget/internal/uniprot"
	"github.com/pdiddy/drugtarget/pkg/types"
)

// Resolver fetches the raw entry named by a selector. *uniprot.Client
// implements it.
type Resolver interface {
	Resolve(ctx context.Context, sel uniprot.Selector) (*uniprot.Entry, error)
}

// Recorder archives a completed lookup. *archive.Store implements it.
type Recorder interface {
	Record(ctx context.Context, sum types.Summary, q archive.Query, outputPath string) (archive.Lookup, error)
}

// Options configures Run.
type Options struct {
	Selector uniprot.Selector
	Output   types.OutputConfig
	// Archive, when set, receives every successful lookup.
	Archive Recorder
}

// Result is the outcome of a successful Run.
type Result struct {
	Summary types.Summary
	Path    string
	Format  types.OutputFormat
}

// Run resolves the selected entry, prints its summary to w and writes the
// summary file. Nothing is printed or written when resolution fails.
func Run(ctx context.Context, r Resolver, opts Options, w io.Writer) (Result, error) {
	if opts.Selector.IsEmpty() {
		return Result{}, uniprot.ErrNoSelector
	}
	// Validate the format before touching the network.
	if _, err := summary.ResolveFormat(opts.Output.Path, opts.Output.Format); err != nil {
		return Result{}, err
	}

	entry, err := r.Resolve(ctx, opts.Selector)
	if err != nil {
		return Result{}, err
	}
	logger.Info("entry resolved", zap.String("accession", entry.PrimaryAccession))

	sum := summary.Project(entry)

	if err := summary.WriteText(sum, w); err != nil {
		return Result{}, fmt.Errorf("writing summary: %w", err)
	}

	path, format, err := summary.Save(sum, opts.Output.Path, opts.Output.Format)
	if err != nil {
		return Result{}, fmt.Errorf("saving summary: %w", err)
	}
	fmt.Fprintf(w, "Saved %s to %s\n", summary.FormatLabel(format), path)

	if opts.Archive != nil {
		q := archive.Query{Gene: opts.Selector.Gene, Organism: opts.Selector.Organism}
		if strings.TrimSpace(opts.Selector.Accession) != "" {
			q = archive.Query{}
		}
		rec, err := opts.Archive.Record(ctx, sum, q, path)
		if err != nil {
			logger.Warn("archiving lookup failed", zap.Error(err))
		} else {
			logger.Debug("lookup archived", zap.String("id", rec.ID))
		}
	}

	return Result{Summary: sum, Path: path, Format: format}, nil
}
