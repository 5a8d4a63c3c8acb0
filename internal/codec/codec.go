// Package codec encodes and decodes snapshots for file-backed storage and
// export. Decoding is strict: the document must match the snapshot schema
// before it is mapped onto domain types.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/siteworks/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the on-disk representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrMalformed marks a document that is not a structurally valid snapshot.
var ErrMalformed = errors.New("malformed snapshot")

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes s. Output is deterministic for a given snapshot, so
// encoding a decoded document reproduces it byte for byte.
func Encode(s *domain.Snapshot, f Format) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("encoding snapshot: nil snapshot")
	}
	c := s.Clone()
	c.Normalize()

	switch f {
	case FormatJSON, "":
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding snapshot json: %w", err)
		}
		return append(b, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encoding snapshot yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("closing yaml encoder: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("encoding snapshot: unknown format %q", f)
	}
}

// Decode parses and structurally validates data. Any failure wraps
// ErrMalformed so callers can tell a corrupt document from an I/O error.
func Decode(data []byte, f Format) (*domain.Snapshot, error) {
	raw := data
	if f == FormatYAML {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		plainTimestampsAsStrings(&root)
		var doc any
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		raw = converted
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}

	var s domain.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	s.Normalize()
	return &s, nil
}

// plainTimestampsAsStrings keeps unquoted dates such as 2024-02-12 as the
// text the user wrote. yaml.v3 would otherwise decode them to time.Time,
// which marshals to RFC 3339 and no longer matches the date layout.
func plainTimestampsAsStrings(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
	}
	for _, c := range n.Content {
		plainTimestampsAsStrings(c)
	}
}
