// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot resolves UniProtKB entries by accession or by gene symbol
// and organism through the UniProt REST API.
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/drugtarget/internal/httputil"
	"github.com/pdiddy/drugtarget/internal/logger"
	"github.com/pdiddy/drugtarget/pkg/types"
)

// uniProtBase is the UniProtKB REST root. Declared as a var so tests can
// substitute an httptest server.
var uniProtBase = "https://rest.uniprot.org/uniprotkb"

const (
	// DefaultOrganism is used when a gene search names no organism.
	DefaultOrganism = "Homo sapiens"

	// DefaultTimeout bounds each upstream request.
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "drugtarget/0.1"
)

var (
	// ErrNotFound is returned when a gene search has no results.
	ErrNotFound = errors.New("no results found for gene + organism")

	// ErrNoSelector is returned when neither an accession nor a gene is given.
	ErrNoSelector = errors.New("specify an accession or a gene symbol")
)

// Selector names the entry to resolve. Accession takes precedence over Gene.
type Selector struct {
	Accession string
	Gene      string
	Organism  string
}

// IsEmpty reports whether the selector names nothing to look up.
func (s Selector) IsEmpty() bool {
	return strings.TrimSpace(s.Accession) == "" && strings.TrimSpace(s.Gene) == ""
}

// Client talks to the UniProtKB REST API.
type Client struct {
	HTTP *http.Client
	cfg  types.UniProtConfig
}

// NewClient returns a Client for cfg. A zero timeout means DefaultTimeout.
func NewClient(cfg types.UniProtConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

func (c *Client) baseURL() string {
	if c.cfg.BaseURL != "" {
		return strings.TrimSuffix(c.cfg.BaseURL, "/")
	}
	return uniProtBase
}

// Resolve fetches the entry named by sel.
func (c *Client) Resolve(ctx context.Context, sel Selector) (*Entry, error) {
	switch {
	case strings.TrimSpace(sel.Accession) != "":
		return c.FetchEntry(ctx, strings.TrimSpace(sel.Accession))
	case strings.TrimSpace(sel.Gene) != "":
		return c.SearchByGene(ctx, strings.TrimSpace(sel.Gene), sel.Organism)
	default:
		return nil, ErrNoSelector
	}
}

// FetchEntry retrieves a single entry by accession.
func (c *Client) FetchEntry(ctx context.Context, accession string) (*Entry, error) {
	reqURL := c.baseURL() + "/" + url.PathEscape(accession) + ".json"
	logger.Debug("fetching entry", zap.String("accession", accession), zap.String("url", reqURL))

	var entry Entry
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.cfg.UserAgent, &entry); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", accession, err)
	}
	return &entry, nil
}

// SearchAccession returns the accession of the first entry whose gene name
// matches gene exactly in organism. When several entries match, the first
// one returned by the service wins.
func (c *Client) SearchAccession(ctx context.Context, gene, organism string) (string, error) {
	if organism == "" {
		organism = DefaultOrganism
	}
	reqURL := c.baseURL() + "/search?" + searchParams(gene, organism).Encode()
	logger.Debug("searching by gene", zap.String("gene", gene), zap.String("organism", organism), zap.String("url", reqURL))

	var sr searchResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.cfg.UserAgent, &sr); err != nil {
		return "", fmt.Errorf("searching %s (%s): %w", gene, organism, err)
	}
	if len(sr.Results) == 0 {
		return "", ErrNotFound
	}
	acc := sr.Results[0].PrimaryAccession
	if acc == "" {
		return "", fmt.Errorf("search result for %s has no accession", gene)
	}
	logger.Debug("gene resolved", zap.String("gene", gene), zap.String("accession", acc))
	return acc, nil
}

// SearchByGene resolves gene and organism to an accession and fetches it.
func (c *Client) SearchByGene(ctx context.Context, gene, organism string) (*Entry, error) {
	acc, err := c.SearchAccession(ctx, gene, organism)
	if err != nil {
		return nil, err
	}
	return c.FetchEntry(ctx, acc)
}

// searchParams builds the query string for an exact gene + organism search
// limited to a single result.
func searchParams(gene, organism string) url.Values {
	return url.Values{
		"query":  {fmt.Sprintf("gene_exact:%s AND organism_name:%s", gene, organism)},
		"format": {"json"},
		"size":   {"1"},
	}
}
