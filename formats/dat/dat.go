// Package dat implements the KCB fixed-width DAT order-file converter.
// It is automatically registered with the formats registry on import.
package dat

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KennedyTaragon/Packing-List-Generator/formats"
	"github.com/KennedyTaragon/Packing-List-Generator/packlist"
	parser "github.com/KennedyTaragon/Packing-List-Generator/parsers/dat"
)

// registered is the instance placed in the formats registry on import.
var registered = &converter{catalog: parser.DefaultCatalog()}

func init() {
	formats.Register(registered)
}

// SetDefaultCatalog replaces the style catalog used by the registered
// converter. Call once at startup, before any conversion runs.
func SetDefaultCatalog(cat *parser.Catalog) {
	registered.catalog = cat
}

type converter struct {
	catalog *parser.Catalog
}

// NewConverter returns a DAT converter backed by a custom style catalog.
// The registered default uses the built-in KCB catalog.
func NewConverter(cat *parser.Catalog) formats.Converter {
	return &converter{catalog: cat}
}

func (c *converter) Name() string {
	return "KCB cheque-book order file (DAT)"
}

func (c *converter) Extensions() []string {
	return []string{".dat"}
}

// Match checks the first non-blank line for the DAT record shape: a
// two-digit bank id followed by a record-type discriminator. DAT files
// carry no magic bytes, so this is a structural check, not a signature.
func (c *converter) Match(data []byte) bool {
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := strings.TrimRight(string(raw), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 3 {
			return false
		}
		if !isDigit(line[0]) || !isDigit(line[1]) {
			return false
		}
		switch line[2] {
		case '0', '1', '4':
			return true
		}
		return false
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Convert parses the order file, expands it into books, groups them by
// delivery branch, and renders the packing-list workbook plus the CSV
// manifest and text summary.
func (c *converter) Convert(filename string, data []byte) ([]formats.OutputFile, *formats.Summary, error) {
	res := parser.Parse(filename, data, c.catalog)

	orderNumber := "KCB-" + res.Metadata.RunNumber
	pages := packlist.Build(res.Books, orderNumber, res.Metadata.FileDate)

	workbook, err := packlist.Workbook(pages)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering packing lists: %w", err)
	}
	manifest, err := packlist.Manifest(pages)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering book manifest: %w", err)
	}

	base := "PackingList_" + formats.SanitizeFilename(orderNumber)
	files := []formats.OutputFile{
		{Name: base + ".xlsx", Data: workbook, Category: "packlist"},
		{Name: base + "_books.csv", Data: manifest, Category: "report"},
		{Name: base + "_summary.txt", Data: []byte(packlist.Summary(pages)), Category: "summary"},
	}

	summary := &formats.Summary{
		OrderNumber: orderNumber,
		OrderDate:   res.Metadata.FileDate,
		TotalOrders: res.Metadata.TotalOrders,
		TotalBooks:  res.Metadata.TotalBooks,
		Branches:    len(pages),
	}
	for _, diag := range res.Diagnostics {
		summary.Warnings = append(summary.Warnings, diag.Message)
	}
	return files, summary, nil
}
