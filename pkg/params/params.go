// Package params validates raw query strings against per-route schemas,
// producing typed, defaulted values. A schema also declares which of
// its fields the route loader actually depends on, so navigations that
// only change unrelated fields do not re-run the loader.
package params

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/waybill/pkg/core"
)

// Kind is the accepted type of a search field.
type Kind int

const (
	String Kind = iota
	Int
	Enum
)

// Field declares one search-string field: its name, accepted kind,
// enum members (for Enum), and the default applied when omitted.
type Field struct {
	Name    string
	Kind    Kind
	Members []string
	Default string
}

// Schema is a route's declarative search-parameter contract.
type Schema struct {
	fields []Field
	deps   []string
}

// NewSchema builds a schema from its field declarations.
func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// WithDeps declares the subset of fields the loader depends on.
// Without a declaration, every field counts as a dep.
func (s *Schema) WithDeps(names ...string) *Schema {
	s.deps = names
	return s
}

// Values is the typed result of parsing a query string. Every declared
// field is present (parsed or defaulted); undeclared fields are
// dropped.
type Values map[string]string

// Get returns the value of a field.
func (v Values) Get(name string) string {
	return v[name]
}

// GetInt returns an Int field as int. Parse already validated the
// syntax, so a missing or malformed value just yields 0.
func (v Values) GetInt(name string) int {
	n, _ := strconv.Atoi(v[name])
	return n
}

// Parse validates a raw query string against the schema. Any field
// failing its type or enum constraint yields a core.ValidationError;
// the caller must abort navigation before any fetch.
func (s *Schema) Parse(rawQuery string) (Values, error) {
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, &core.ValidationError{Field: rawQuery, Reason: "malformed query string"}
	}

	values := make(Values, len(s.fields))
	for _, field := range s.fields {
		raw := query.Get(field.Name)
		if raw == "" {
			values[field.Name] = field.Default
			continue
		}

		switch field.Kind {
		case Int:
			if _, err := strconv.Atoi(raw); err != nil {
				return nil, &core.ValidationError{Field: field.Name, Reason: "expected an integer, got " + strconv.Quote(raw)}
			}
		case Enum:
			if !contains(field.Members, raw) {
				return nil, &core.ValidationError{
					Field:  field.Name,
					Reason: strconv.Quote(raw) + " is not one of [" + strings.Join(field.Members, ", ") + "]",
				}
			}
		}
		values[field.Name] = raw
	}

	return values, nil
}

// Deps projects the parsed values to the loader-relevant subset and
// serializes it deterministically (sorted name=value pairs). The
// orchestrator re-runs a loader only when this string changes between
// navigations.
func (s *Schema) Deps(values Values) string {
	names := s.deps
	if names == nil {
		names = make([]string, 0, len(s.fields))
		for _, field := range s.fields {
			names = append(names, field.Name)
		}
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	pairs := make([]string, 0, len(sorted))
	for _, name := range sorted {
		pairs = append(pairs, name+"="+values[name])
	}
	return strings.Join(pairs, "&")
}

func contains(members []string, value string) bool {
	for _, m := range members {
		if m == value {
			return true
		}
	}
	return false
}
