package graphfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a graph definition, choosing the decoder by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	doc, err := Decode(data, format, path)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	if doc.Name == "" {
		doc.Name = defaultName(path)
	}
	return doc, nil
}

// Decode parses data in the given format. filename is used in HCL
// diagnostics only.
func Decode(data []byte, format Format, filename string) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatHCL:
		return decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return &doc, nil
}

// Encode renders doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatHCL:
		return encodeHCL(doc), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Save writes doc to path, choosing the encoder by extension.
func Save(doc *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(doc, format)
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write graph file: %w", err)
	}
	return nil
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
