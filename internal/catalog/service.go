// Package catalog describes the fixed expense and investment categories and
// resolves bare keys to the sheet setter that owns them.
package catalog

import (
	"fmt"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

// Category is a line item shown on the form.
type Category struct {
	Key   string
	Label string
	Kind  model.Kind
}

// Service provides in-memory lookup over the categories.
type Service struct {
	categories []Category
	byKey      map[string]Category
}

// NewService creates a Service from a slice of categories.
func NewService(categories []Category) *Service {
	byKey := make(map[string]Category, len(categories))
	for _, c := range categories {
		byKey[c.Key] = c
	}
	return &Service{categories: categories, byKey: byKey}
}

// All returns all categories.
func (s *Service) All() []Category {
	return s.categories
}

// Get returns a category by key.
func (s *Service) Get(key string) (Category, bool) {
	c, ok := s.byKey[key]
	return c, ok
}

// Exists reports whether a key names a category.
func (s *Service) Exists(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// ByKind returns all categories of the given kind.
func (s *Service) ByKind(kind model.Kind) []Category {
	var result []Category
	for _, c := range s.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Label returns the display label for key, or the key itself if unknown.
func (s *Service) Label(key string) string {
	if c, ok := s.byKey[key]; ok {
		return c.Label
	}
	return key
}

// Apply sets the entry named by key on sh, whichever kind it belongs to.
func (s *Service) Apply(sh *sheet.Sheet, key, text string) error {
	c, ok := s.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, key)
	}
	switch c.Kind {
	case model.KindExpense:
		return sh.SetExpenseItem(key, text)
	case model.KindInvestment:
		return sh.SetInvestmentItem(key, text)
	default:
		return fmt.Errorf("category %q has unsupported kind %q", key, c.Kind)
	}
}
