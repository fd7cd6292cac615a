// Package importer reads exported sheets back into memory.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/sheet"
)

// Totals are the derived figures as they were written into an export file.
type Totals struct {
	Expenses    decimal.Decimal
	Investments decimal.Decimal
	Remaining   decimal.Decimal
}

// Result is a parsed export: the rebuilt sheet plus the totals the file claimed.
type Result struct {
	Sheet     *sheet.Sheet
	Stored    Totals
	HasTotals bool
}

// Parser converts an export payload into a Result.
type Parser interface {
	Parse(r io.Reader) (*Result, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForFile returns the parser matching the file extension of path.
func (r *Registry) ForFile(path string) (Parser, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	p := r.Get(ext)
	if p == nil {
		return nil, fmt.Errorf("no parser for %q files", ext)
	}
	return p, nil
}

// DefaultRegistry returns a registry with the JSON and CSV parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONParser{})
	r.Register(&CSVParser{})
	return r
}

// Load opens path and parses it with the parser chosen by extension.
func (r *Registry) Load(path string) (*Result, error) {
	p, err := r.ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return res, nil
}
