// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     elements
// Description: Loading and writing element tables in TOML and YAML
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package elements

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

//go:embed data/iupac.toml
var iupacData []byte

// Format selects the serialization of a table file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps "toml", "yaml" and "yml" to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTOML, mdwerror.Newf("unsupported table format %q", s).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

// FormatFromPath derives the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseFormat(ext)
}

// document is the on-disk layout: a list of [[element]] tables
type document struct {
	Elements []Entry `toml:"element" yaml:"element"`
}

// Parse decodes and validates a table
func Parse(data []byte, format Format) (*Table, error) {
	var doc document

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, mdwerror.Wrap(err, "decoding TOML element table").
				WithCode(mdwerror.CodeInvalidTable)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, mdwerror.Wrap(err, "decoding YAML element table").
				WithCode(mdwerror.CodeInvalidTable)
		}
	default:
		return nil, mdwerror.Newf("unsupported table format %v", format).
			WithCode(mdwerror.CodeInvalidInput)
	}

	return NewTable(doc.Elements)
}

// LoadFile reads a table from path; the extension selects the format
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "element table not found").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "reading element table").
			WithCode(mdwerror.CodeInvalidTable).
			WithDetail("path", path)
	}

	t, err := Parse(data, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("loading %s", path)).
			WithDetail("path", path)
	}
	return t, nil
}

// Encode writes t to w in the given format
func Encode(w io.Writer, t *Table, format Format) error {
	doc := document{Elements: t.Entries()}

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return mdwerror.Newf("unsupported table format %v", format).
			WithCode(mdwerror.CodeInvalidInput)
	}
}
