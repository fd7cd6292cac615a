// Package assign parses the key=value assignments accepted on the command line.
package assign

import (
	"fmt"
	"strings"
)

// Assignment sets the text of one category.
type Assignment struct {
	Key   string
	Value string
}

// Format returns an assignment like "groceries=400".
func Format(key, value string) string {
	return key + "=" + value
}

// Parse splits "groceries=400" into key and value. The value may be empty to
// blank a field; the key is lower-cased and must be non-empty.
func Parse(s string) (Assignment, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("invalid assignment %q: expected key=value", s)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Assignment{}, fmt.Errorf("invalid assignment %q: empty key", s)
	}
	return Assignment{Key: key, Value: value}, nil
}

// ParseAll parses each string in order, stopping at the first error.
func ParseAll(in []string) ([]Assignment, error) {
	out := make([]Assignment, 0, len(in))
	for _, s := range in {
		a, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
