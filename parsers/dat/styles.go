package dat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StyleInfo describes the physical book template selected by a 2-character
// style code: printed description, currency, and leaves per book.
type StyleInfo struct {
	Description string `yaml:"description"`
	Currency    string `yaml:"currency"`
	Leaves      int    `yaml:"leaves"`
}

// Catalog holds the book-style lookup tables. It is read-only configuration
// data: built once (built-in defaults or a YAML file) and never mutated, so
// a single Catalog is safe to share across files and goroutines.
type Catalog struct {
	Styles     map[string]StyleInfo `yaml:"styles"`
	Increments map[string]int       `yaml:"increments"`
}

// Defaults applied when a style code is not in the catalog. Unknown codes
// are not errors; they degrade metadata quality and nothing else.
const (
	defaultDescription = "Unknown"
	defaultCurrency    = "KES"
	defaultLeaves      = 50
	defaultIncrement   = 50
)

// defaultStyles contains the built-in KCB book styles.
var defaultStyles = map[string]StyleInfo{
	"01": {Description: "Personal KES", Currency: "KES", Leaves: 50},
	"02": {Description: "Corporate KES", Currency: "KES", Leaves: 100},
	"25": {Description: "South African Rand Small", Currency: "ZAR", Leaves: 50},
	"45": {Description: "South African Rand Large", Currency: "ZAR", Leaves: 100},
	"31": {Description: "Sterling Pound Small", Currency: "GBP", Leaves: 50},
	"51": {Description: "Sterling Pound Large", Currency: "GBP", Leaves: 100},
	"32": {Description: "USA Dollar Small", Currency: "USD", Leaves: 50},
	"52": {Description: "USA Dollar Large", Currency: "USD", Leaves: 100},
	"40": {Description: "EURO Small", Currency: "EUR", Leaves: 50},
	"69": {Description: "EURO Large", Currency: "EUR", Leaves: 100},
	"71": {Description: "KES Banker's Cheques", Currency: "KES", Leaves: 100},
	"72": {Description: "USD Banker's Cheques", Currency: "USD", Leaves: 100},
	"73": {Description: "GBP Banker's Cheques", Currency: "GBP", Leaves: 100},
	"74": {Description: "EUR Banker's Cheques", Currency: "EUR", Leaves: 100},
}

// defaultIncrements holds the per-style starting-serial step for each
// subsequent book within a multi-book order.
var defaultIncrements = map[string]int{
	"01": 50, "02": 100, "25": 50, "45": 100, "31": 50, "51": 100,
	"32": 50, "52": 100, "40": 50, "69": 100, "71": 100, "72": 100,
	"73": 100, "74": 100,
}

// DefaultCatalog returns the built-in KCB style catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{Styles: defaultStyles, Increments: defaultIncrements}
}

// LoadCatalog reads a YAML style catalog from path. Styles or increments
// missing from the file keep their built-in values, so a partial file can
// override a single style without restating the rest.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style catalog: %w", err)
	}
	var loaded Catalog
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing style catalog %s: %w", path, err)
	}

	cat := &Catalog{
		Styles:     make(map[string]StyleInfo, len(defaultStyles)),
		Increments: make(map[string]int, len(defaultIncrements)),
	}
	for code, info := range defaultStyles {
		cat.Styles[code] = info
	}
	for code, inc := range defaultIncrements {
		cat.Increments[code] = inc
	}
	for code, info := range loaded.Styles {
		cat.Styles[code] = info
	}
	for code, inc := range loaded.Increments {
		cat.Increments[code] = inc
	}
	return cat, nil
}

// Style resolves a style code, falling back to the documented defaults
// for unrecognized codes.
func (c *Catalog) Style(code string) StyleInfo {
	if info, ok := c.Styles[code]; ok {
		return info
	}
	return StyleInfo{
		Description: defaultDescription,
		Currency:    defaultCurrency,
		Leaves:      defaultLeaves,
	}
}

// Increment returns the serial step for a style code, defaulting to 50.
func (c *Catalog) Increment(code string) int {
	if inc, ok := c.Increments[code]; ok {
		return inc
	}
	return defaultIncrement
}
