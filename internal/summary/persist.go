// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drugtarget/pkg/types"
)

// DefaultOutputPath is where Save writes when no path is given.
const DefaultOutputPath = "uniprot_result.json"

// ResolveFormat returns the explicit format if set, otherwise the format
// implied by the path extension (.yaml/.yml for YAML, JSON for the rest).
func ResolveFormat(path string, explicit types.OutputFormat) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(string(explicit))) {
	case types.FormatJSON:
		return types.FormatJSON, nil
	case types.FormatYAML, "yml":
		return types.FormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported format %q: use json or yaml", explicit)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	default:
		return types.FormatJSON, nil
	}
}

// Encode writes s to w in format. JSON is indented by two spaces.
func Encode(s types.Summary, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Save serializes s to path and returns the path written and the format
// used. The file is written to a temp file in the same directory and
// renamed into place.
func Save(s types.Summary, path string, format types.OutputFormat) (string, types.OutputFormat, error) {
	if path == "" {
		path = DefaultOutputPath
	}
	format, err := ResolveFormat(path, format)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := Encode(s, format, &buf); err != nil {
		return "", "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".drugtarget-*.tmp")
	if err != nil {
		return "", "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(buf.Bytes())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", "", fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", "", fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", "", fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, format, nil
}

// Load reads a Summary previously written by Save. The format is detected
// from the content, so a YAML file saved under a .json name still loads.
func Load(path string) (types.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Summary{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return types.Summary{}, fmt.Errorf("%s is empty", path)
	}
	return Decode(data, DetectFormat(data))
}

// DetectFormat reports JSON when data starts with an object, YAML otherwise.
func DetectFormat(data []byte) types.OutputFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return types.FormatJSON
	}
	return types.FormatYAML
}

// Decode parses data in format into a Summary.
func Decode(data []byte, format types.OutputFormat) (types.Summary, error) {
	var s types.Summary
	switch format {
	case types.FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return types.Summary{}, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return types.Summary{}, fmt.Errorf("parsing JSON: %w", err)
		}
	}
	return s, nil
}

// FormatLabel is the upper-case name used in user-facing messages.
func FormatLabel(format types.OutputFormat) string {
	if format == types.FormatYAML {
		return "YAML"
	}
	return "JSON"
}
