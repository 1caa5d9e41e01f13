// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/drugtarget/internal/summary"
	"github.com/pdiddy/drugtarget/internal/uniprot"
	"github.com/pdiddy/drugtarget/pkg/types"
)

// Config keys. Nested keys map to DRUGTARGET_UNIPROT_BASE_URL and so on.
const (
	keyBaseURL   = "uniprot.base_url"
	keyTimeout   = "http.timeout"
	keyUserAgent = "http.user_agent"
	keyOrganism  = "organism"
	keyOut       = "out"
	keyFormat    = "format"
	keyArchive   = "archive"
	keyLogLevel  = "log_level"
)

const defaultUserAgent = "drugtarget/0.1"

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBaseURL, "https://rest.uniprot.org/uniprotkb")
	v.SetDefault(keyTimeout, uniprot.DefaultTimeout)
	v.SetDefault(keyUserAgent, defaultUserAgent)
	v.SetDefault(keyOrganism, uniprot.DefaultOrganism)
	v.SetDefault(keyOut, summary.DefaultOutputPath)
	v.SetDefault(keyLogLevel, "warn")
}

// uniProtConfig assembles client settings from v.
func uniProtConfig(v *viper.Viper) types.UniProtConfig {
	return types.UniProtConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration(keyTimeout),
			UserAgent: v.GetString(keyUserAgent),
		},
		BaseURL: v.GetString(keyBaseURL),
	}
}

// outputConfig assembles persist settings from v.
func outputConfig(v *viper.Viper) types.OutputConfig {
	return types.OutputConfig{
		Path:        v.GetString(keyOut),
		Format:      types.OutputFormat(v.GetString(keyFormat)),
		ArchivePath: v.GetString(keyArchive),
	}
}
