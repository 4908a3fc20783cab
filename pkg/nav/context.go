package nav

import (
	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/params"
)

// LoadContext is what a loader sees: the shared cache and session, the
// captured path parameters, the validated search values, and read
// access to the results of routes already committed in this
// navigation.
type LoadContext struct {
	Cache   *cache.Store
	Session Session
	Params  map[string]string
	Search  params.Values

	navigation *Navigation
}

// LoaderData returns the data an ancestor route committed earlier in
// the same navigation. Descendants read parent-loaded data here instead
// of re-declaring the fetch.
func (lc *LoadContext) LoaderData(routeName string) (any, bool) {
	if lc.navigation == nil {
		return nil, false
	}
	result, ok := lc.navigation.Results[routeName]
	if !ok || !result.OK() {
		return nil, false
	}
	return result.Data, true
}

// Navigation is the committed outcome of one Navigate call.
type Navigation struct {
	// Path is the requested path including the query string.
	Path string
	// Generation identifies this navigation; results of an older
	// generation are never committed.
	Generation uint64
	// Matched lists the names of the matched routes, root to leaf.
	Matched []string
	// Results holds the per-route loader outcomes committed so far.
	Results map[string]core.LoadResult
	// Result is the navigation outcome: the leaf result when every
	// loader committed, otherwise the first non-ready result.
	Result core.LoadResult
	// Boundary names the nearest route that declared an error-rendering
	// contract for a failed navigation ("" when none applies).
	Boundary string
}

// Data returns the committed data of the named route.
func (n *Navigation) Data(routeName string) (any, bool) {
	result, ok := n.Results[routeName]
	if !ok || !result.OK() {
		return nil, false
	}
	return result.Data, true
}
