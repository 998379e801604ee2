// File: format.go
// Title: Token Stream Document Formats
// Description: Enumerates the document formats a token stream can be stored
//              in and detects the format from a file extension.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial format detection

package stream

import (
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
)

// Format identifies a token stream document encoding
type Format int

const (
	// FormatYAML is the default document format
	FormatYAML Format = iota

	// FormatJSON reads the same shape as YAML
	FormatJSON

	// FormatTOML stores tokens as an array of tables
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatYAML, mdwerror.Newf("unsupported token stream format: %s", name).
			WithCode(mdwerror.CodeUnsupported).
			WithOperation("stream.ParseFormat")
	}
}

// Patterns returns the file name patterns DetectFormat recognises
func Patterns() []string {
	return []string{"*.yaml", "*.yml", "*.json", "*.toml"}
}

// DetectFormat determines the document format from the file extension
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatYAML, mdwerror.Newf("cannot detect token stream format of %s", path).
			WithCode(mdwerror.CodeUnsupported).
			WithOperation("stream.DetectFormat").
			WithDetail("extension", ext)
	}
}
