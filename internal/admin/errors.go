package admin

import (
	"errors"
	"sort"
	"strings"
)

// ErrProductNotFound is returned by update/toggle/delete when no product has
// the requested id.
var ErrProductNotFound = errors.New("product not found")

// ValidationError carries per-field messages for an admin form submission
// that violates the save contract. The store is left untouched when one is
// returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid product: " + strings.Join(parts, "; ")
}
