package nav

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/params"
)

// Observer receives router activity notifications.
type Observer interface {
	Navigation()
	LoaderCommitted(route string, duration time.Duration)
	Superseded()
}

// Router walks the route tree for each navigation. One Router exists
// per console session; it owns the navigation generation counter and
// the per-route loader memos, and shares the query cache with the
// mutation controller.
type Router struct {
	routes   []*Route
	cache    *cache.Store
	session  Session
	logger   *slog.Logger
	observer Observer

	generation atomic.Uint64

	mu   sync.Mutex
	memo map[string]memoEntry
}

// memoEntry remembers a committed loader result keyed by route and path
// params. The loader re-runs only when its declared deps subset changes
// value, or after the memo is dropped by a cache invalidation.
type memoEntry struct {
	deps string
	data any
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithObserver installs an activity observer (e.g. metrics collectors).
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

// NewRouter creates a Router over the given route tree. The store and
// session are shared by reference with the rest of the console; the
// router registers an invalidation hook so stale data forces loaders to
// re-run on the next navigation.
func NewRouter(routes []*Route, store *cache.Store, session Session, opts ...Option) *Router {
	r := &Router{
		routes:  routes,
		cache:   store,
		session: session,
		logger:  slog.Default(),
		memo:    make(map[string]memoEntry),
	}
	for _, opt := range opts {
		opt(r)
	}

	// Any invalidation may concern any memoized loader, so drop them
	// all; the next navigation re-runs its loaders and the cache itself
	// decides which fetches actually hit the network.
	store.OnInvalidate(func(keys []string) {
		r.mu.Lock()
		r.memo = make(map[string]memoEntry)
		r.mu.Unlock()
	})

	return r
}

// Navigate resolves target (path plus optional query string) through
// the route tree: validate search params, gate, load, commit. The
// returned Navigation carries a tagged result per route and for the
// navigation as a whole; Navigate itself returns an error only for a
// target that matches no route.
func (r *Router) Navigate(ctx context.Context, target string) (*Navigation, error) {
	path, rawQuery, _ := strings.Cut(target, "?")

	chain, pathParams, ok := match(r.routes, path)
	if !ok {
		return nil, &core.NotFoundError{Resource: "route", ID: path}
	}

	generation := r.generation.Add(1)
	if r.observer != nil {
		r.observer.Navigation()
	}
	r.logger.Debug("navigation started", "path", target, "generation", generation)

	navigation := &Navigation{
		Path:       target,
		Generation: generation,
		Results:    make(map[string]core.LoadResult, len(chain)),
	}
	for _, route := range chain {
		navigation.Matched = append(navigation.Matched, route.Name)
	}

	// Search validation runs for the whole chain before any guard or
	// fetch: a ValidationError blocks entry into the route outright.
	searches := make(map[string]params.Values, len(chain))
	for i, route := range chain {
		if route.Schema == nil {
			continue
		}
		values, err := route.Schema.Parse(rawQuery)
		if err != nil {
			navigation.Result = core.Failed(err.Error())
			navigation.Boundary = boundaryFor(chain, i)
			return navigation, nil
		}
		searches[route.Name] = values
	}

	for i, route := range chain {
		// Gating. A failed guard never reaches Loading.
		if route.Guard != nil {
			if err := route.Guard(r.session); err != nil {
				result := core.Unauthorized(err.Error())
				navigation.Results[route.Name] = result
				navigation.Result = result
				navigation.Boundary = boundaryFor(chain, i)
				return navigation, nil
			}
		}

		if route.Loader == nil {
			continue
		}

		memoKey := route.Name + "|" + serializeParams(pathParams)
		deps := ""
		if route.Schema != nil {
			deps = route.Schema.Deps(searches[route.Name])
		}

		r.mu.Lock()
		memo, memoized := r.memo[memoKey]
		r.mu.Unlock()
		if memoized && memo.deps == deps {
			// Unrelated search fields changed (or nothing did): reuse
			// the committed result without re-running the loader.
			navigation.Results[route.Name] = core.Ready(memo.data)
			continue
		}

		lc := &LoadContext{
			Cache:      r.cache,
			Session:    r.session,
			Params:     pathParams,
			Search:     searches[route.Name],
			navigation: navigation,
		}

		start := time.Now()
		data, err := route.Loader(ctx, lc)
		result := classify(data, err)

		// Commit gate: a navigation that has been superseded must not
		// make its results visible. The cache keeps whatever the fetch
		// stored, but nothing is rendered or memoized.
		if r.generation.Load() != generation {
			r.logger.Warn("discarding superseded navigation", "path", target, "generation", generation)
			if r.observer != nil {
				r.observer.Superseded()
			}
			navigation.Result = core.Superseded()
			return navigation, nil
		}

		navigation.Results[route.Name] = result
		if result.OK() {
			if r.observer != nil {
				r.observer.LoaderCommitted(route.Name, time.Since(start))
			}
			r.mu.Lock()
			r.memo[memoKey] = memoEntry{deps: deps, data: result.Data}
			r.mu.Unlock()
			continue
		}

		// A failed loader stops the walk; descendants never run.
		navigation.Result = result
		navigation.Boundary = boundaryFor(chain, i)
		return navigation, nil
	}

	// Every loader committed; the navigation result is the leaf-most
	// loader's data (structural leaves inherit the nearest ancestor's).
	navigation.Result = core.Ready(nil)
	for i := len(chain) - 1; i >= 0; i-- {
		if result, ok := navigation.Results[chain[i].Name]; ok {
			navigation.Result = result
			break
		}
	}
	return navigation, nil
}

// Generation returns the latest navigation generation.
func (r *Router) Generation() uint64 {
	return r.generation.Load()
}

// classify maps a loader outcome to a tagged result so callers branch
// exhaustively instead of unwrapping errors.
func classify(data any, err error) core.LoadResult {
	if err == nil {
		return core.Ready(data)
	}
	var notFound *core.NotFoundError
	if errors.As(err, &notFound) {
		return core.NotFound(notFound.Error())
	}
	var unauthorized *core.AuthorizationError
	if errors.As(err, &unauthorized) {
		return core.Unauthorized(unauthorized.Error())
	}
	return core.Failed(err.Error())
}

// boundaryFor finds the nearest route at or above index i that declares
// an error boundary.
func boundaryFor(chain []*Route, i int) string {
	for ; i >= 0; i-- {
		if chain[i].Boundary {
			return chain[i].Name
		}
	}
	return ""
}

func serializeParams(pathParams map[string]string) string {
	if len(pathParams) == 0 {
		return ""
	}
	keys := make([]string, 0, len(pathParams))
	for k := range pathParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+pathParams[k])
	}
	return strings.Join(pairs, "&")
}
