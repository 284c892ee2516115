// Package formats defines the Converter interface and a registry for
// pluggable order-file formats. To add a new format, create a package
// that implements Converter and calls Register from its init function.
// The registry detects formats by content first and falls back to file
// extension matching, so uploads with misleading names still route to
// the right converter.
package formats

import (
	"path/filepath"
	"strings"
)

// OutputFile is a single rendered artifact produced from one order file.
type OutputFile struct {
	Name     string
	Data     []byte
	Category string // "packlist", "report" or "summary"
}

// Summary is the file-level outcome a converter reports alongside its
// rendered outputs.
type Summary struct {
	OrderNumber string
	OrderDate   string
	TotalOrders int
	TotalBooks  int
	Branches    int
	Warnings    []string
}

// Converter handles detection and conversion of a specific order-file format.
type Converter interface {
	// Name returns a human-readable format name.
	Name() string

	// Extensions returns file extensions this converter handles,
	// including the leading dot (e.g. ".dat").
	Extensions() []string

	// Match returns true if data looks like this format.
	Match(data []byte) bool

	// Convert processes one order file and returns the rendered packing
	// list artifacts plus the file summary. The original filename is
	// part of the input because the print-run number is derived from it.
	Convert(filename string, data []byte) ([]OutputFile, *Summary, error)
}

var registry []Converter

// Register adds a converter to the global registry. Call this from
// an init function in your format package.
func Register(c Converter) {
	registry = append(registry, c)
}

// Detect identifies the correct converter for a file. It checks content
// first, then falls back to extension matching.
func Detect(filename string, data []byte) Converter {
	for _, c := range registry {
		if c.Match(data) {
			return c
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, c := range registry {
		for _, e := range c.Extensions() {
			if ext == e {
				return c
			}
		}
	}
	return nil
}

// All returns every registered converter.
func All() []Converter {
	return registry
}

// SanitizeFilename replaces characters that are unsafe in file paths
// and strips control characters to prevent header injection.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1 // drop control characters
		}
		return r
	}, name)
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "_")
	}
	if name == "" {
		name = "unnamed"
	}
	return name
}
