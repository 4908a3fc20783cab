package api

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Filter holds list filtering/sort/pagination criteria before
// serialization. Values may be scalars (string, int, ...), nested
// maps for grouped criteria, or string slices for repeated fields.
type Filter map[string]any

// EncodeFilter serializes a filter into the query-string form the
// vendor API expects. Nested maps use bracket notation
// (order[type]=ASC&order[coverage]=DESC), slices repeat the key
// (tag=a&tag=b), and scalars encode as name=value. Nesting is one
// level deep: the wire contract has no encoding for a map inside a
// nested map, so EncodeFilter panics on one rather than emitting
// something the backend cannot parse.
//
// Keys are emitted in lexicographic order at every level, so identical
// filters always serialize identically. The serialized string doubles
// as the cache key discriminator, which must be byte-stable.
func EncodeFilter(f Filter) string {
	if len(f) == 0 {
		return ""
	}

	var pairs []string
	for _, key := range sortedKeys(f) {
		switch value := f[key].(type) {
		case map[string]string:
			nested := make([]string, 0, len(value))
			for child := range value {
				nested = append(nested, child)
			}
			sort.Strings(nested)
			for _, child := range nested {
				pairs = append(pairs, bracketPair(key, child, value[child]))
			}
		case map[string]any:
			nested := make([]string, 0, len(value))
			for child := range value {
				nested = append(nested, child)
			}
			sort.Strings(nested)
			for _, child := range nested {
				switch value[child].(type) {
				case map[string]any, map[string]string:
					panic(fmt.Sprintf("filter %q: nesting deeper than one level is not supported", key))
				}
				pairs = append(pairs, bracketPair(key, child, fmt.Sprint(value[child])))
			}
		case []string:
			for _, item := range value {
				pairs = append(pairs, key+"="+url.QueryEscape(item))
			}
		default:
			pairs = append(pairs, key+"="+url.QueryEscape(fmt.Sprint(value)))
		}
	}

	return strings.Join(pairs, "&")
}

// bracketPair renders parent[child]=value. Bracket characters stay
// literal; only the value is escaped, matching the backend's parser.
func bracketPair(parent, child, value string) string {
	return parent + "[" + child + "]=" + url.QueryEscape(value)
}

func sortedKeys(f Filter) []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
