// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used for upstream requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 15s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "drugtarget/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// UniProtConfig holds settings for the UniProtKB client.
type UniProtConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the UniProtKB REST root
	// (default "https://rest.uniprot.org/uniprotkb").
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// OutputFormat selects the serialization used for a persisted Summary.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for the persist stage.
type OutputConfig struct {
	// Path is the destination file (default "uniprot_result.json").
	Path string `json:"path" yaml:"path"`

	// Format overrides the format inferred from the Path extension.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// ArchivePath is an optional SQLite database that records each lookup.
	ArchivePath string `json:"archive_path,omitempty" yaml:"archive_path,omitempty"`
}
