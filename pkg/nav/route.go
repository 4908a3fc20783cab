// Package nav binds URL-style navigation to route loaders: it matches a
// path against a declarative route tree, validates search parameters,
// gates entry on the session, runs loaders through the query cache, and
// commits results only for the latest navigation.
package nav

import (
	"context"
	"strings"

	"github.com/aretw0/waybill/pkg/params"
)

// Session is the read-only view of the operator session a guard or
// loader may consult.
type Session interface {
	Token() string
	Role() string
}

// Guard is a route entry predicate. A non-nil error (conventionally a
// *core.AuthorizationError) blocks the route before any fetch.
type Guard func(s Session) error

// LoaderFunc produces the data a route and its descendants need.
// Loaders fetch through lc.Cache, read ancestor results via
// lc.LoaderData, and signal absence by returning a *core.NotFoundError.
type LoaderFunc func(ctx context.Context, lc *LoadContext) (any, error)

// Route is one node of the route tree. Path patterns are segment-wise
// with ":name" captures; child paths are relative to the parent
// (e.g. "/orders/:id" with child "summary").
type Route struct {
	Name     string
	Path     string
	Guard    Guard
	Schema   *params.Schema
	Loader   LoaderFunc
	Boundary bool // declares an error-rendering contract
	Children []*Route
}

// match resolves a path to a root→leaf chain of routes plus captured
// path parameters.
func match(routes []*Route, path string) ([]*Route, map[string]string, bool) {
	segments := splitPath(path)
	for _, route := range routes {
		if chain, captured, ok := matchNode(route, segments, map[string]string{}); ok {
			return chain, captured, true
		}
	}
	return nil, nil, false
}

func matchNode(route *Route, segments []string, captured map[string]string) ([]*Route, map[string]string, bool) {
	pattern := splitPath(route.Path)
	if len(pattern) > len(segments) {
		return nil, nil, false
	}

	local := make(map[string]string, len(captured))
	for k, v := range captured {
		local[k] = v
	}
	for i, pat := range pattern {
		if strings.HasPrefix(pat, ":") {
			local[pat[1:]] = segments[i]
			continue
		}
		if pat != segments[i] {
			return nil, nil, false
		}
	}

	rest := segments[len(pattern):]
	if len(rest) == 0 {
		return []*Route{route}, local, true
	}
	for _, child := range route.Children {
		if chain, childCaptured, ok := matchNode(child, rest, local); ok {
			return append([]*Route{route}, chain...), childCaptured, true
		}
	}
	return nil, nil, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
