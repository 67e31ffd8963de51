package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// FormatFor maps a file name to its Format by extension.
// Unknown extensions (and none) are treated as text.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Parse dispatches r to the parser for f.
func Parse(r io.Reader, f Format) (Report, error) {
	switch f {
	case FormatText:
		return ParseText(r)
	case FormatCSV:
		return ParseCSV(r)
	case FormatXLSX:
		return ParseXLSX(r)
	case FormatYAML:
		return ParseYAML(r)
	case FormatJSON:
		return ParseJSON(r)
	default:
		return Report{}, fmt.Errorf("Parse: %q: %w", f, ErrUnsupportedFormat)
	}
}

// LoadFile opens path and parses it according to its extension.
func LoadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	rep, err := Parse(f, FormatFor(path))
	if err != nil {
		return rep, fmt.Errorf("LoadFile: %s: %w", filepath.Base(path), err)
	}

	return rep, nil
}
