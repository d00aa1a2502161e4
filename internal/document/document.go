// Package document decodes graph descriptions (JSON or YAML) into
// core.Document values and validates their required fields.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pangraph/core"
)

var (
	// ErrUnknownFormat is returned for a format name that is not recognised.
	ErrUnknownFormat = errors.New("document: unknown format")

	// ErrInvalid wraps field validation failures.
	ErrInvalid = errors.New("document: invalid graph description")
)

// Format selects the serialization of the input.
type Format int

const (
	// FormatAuto sniffs the input: a leading '{' means JSON, anything else YAML.
	FormatAuto Format = iota
	// FormatJSON decodes JSON.
	FormatJSON
	// FormatYAML decodes YAML.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps "json", "yaml"/"yml" and "auto" (or "") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

var validate = validator.New()

// Decode reads r fully and decodes it with DecodeBytes.
func Decode(r io.Reader, f Format) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return DecodeBytes(data, f)
}

// Load decodes the file at path. FormatAuto falls back to the extension
// before sniffing the content.
func Load(path string, f Format) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	if f == FormatAuto {
		f = FormatFromPath(path)
	}
	return DecodeBytes(data, f)
}

// DecodeBytes decodes and validates one graph description.
//
// Errors:
//   - core.ErrNilDocument when the input is empty or its top level is not an
//     object (a JSON array, a YAML scalar, null, ...).
//   - ErrInvalid when required fields are missing (nodes, edge endpoints).
//   - syntax errors from the underlying decoder.
func DecodeBytes(data []byte, f Format) (*core.Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("document: empty input: %w", core.ErrNilDocument)
	}
	if f == FormatAuto {
		f = FormatYAML
		if trimmed[0] == '{' {
			f = FormatJSON
		}
	}

	var doc core.Document
	switch f {
	case FormatJSON:
		if trimmed[0] != '{' {
			return nil, fmt.Errorf("document: top level is not an object: %w", core.ErrNilDocument)
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("document: json: %w", err)
		}
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(trimmed, &root); err != nil {
			return nil, fmt.Errorf("document: yaml: %w", err)
		}
		if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
			return nil, fmt.Errorf("document: top level is not a mapping: %w", core.ErrNilDocument)
		}
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("document: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &doc, nil
}
