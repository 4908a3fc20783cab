// Package cache implements the shared query cache: a key-addressed
// store of fetch results with staleness tracking and in-flight
// deduplication. It is the only mutable shared state of the data layer;
// entries change through exactly two paths, fetch resolution and
// invalidation.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Status is the lifecycle state of a cache entry.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusFresh   Status = "FRESH"
	StatusStale   Status = "STALE"
	StatusError   Status = "ERROR"
)

// Observer receives cache activity notifications (hit/miss counters).
// All methods must be safe for concurrent use.
type Observer interface {
	Hit()
	Miss()
	Join()
	Invalidated(count int)
	FetchFailed()
}

// flight is one in-progress fetch. Joiners hold the pointer and read
// the outcome after done is closed.
type flight struct {
	done  chan struct{}
	value any
	err   error
}

// entry is the stored state for one query key. Exactly one entry exists
// per key; it is created on first fetch and transitions in place.
type entry struct {
	status     Status
	value      any
	errMessage string
	timestamp  time.Time
	// generation increments on every invalidation. A fetch captures the
	// generation at start and may only commit a FRESH transition if it
	// still matches; this stops a slow fetch from resurrecting data that
	// was invalidated while it was in flight.
	generation uint64
	flight     *flight
}

// Store is the query cache. A console session owns exactly one Store,
// constructed at startup and passed by reference; there is no package
// level instance.
type Store struct {
	mu           sync.Mutex
	entries      map[string]*entry
	onInvalidate []func(keys []string)
	logger       *slog.Logger
	observer     Observer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithObserver installs an activity observer (e.g. metrics collectors).
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key builds a query key from a resource kind and an optional
// discriminator (an id, or a serialized filter string). Identical
// logical requests must always produce byte-identical keys, so callers
// are expected to serialize filters deterministically before calling.
func Key(kind string, discriminator ...string) string {
	if len(discriminator) == 0 {
		return kind
	}
	parts := append([]string{kind}, discriminator...)
	return strings.Join(parts, "/")
}

// EnsureQueryData returns the cached value for key, fetching it at most
// once. A FRESH entry is returned without invoking fetch. If a fetch
// for the same key is already in flight, the call joins it and receives
// the same outcome: at most one concurrent fetch per key, system-wide.
// Otherwise (miss, stale, or previous error) fetch runs once and its
// result transitions the entry to FRESH or ERROR.
//
// Errors from fetch propagate verbatim; the cache records them but
// never rewrites or swallows them. An ERROR entry retries on the next
// call.
func (s *Store) EnsureQueryData(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		switch e.status {
		case StatusFresh:
			value := e.value
			s.mu.Unlock()
			s.observe(func(o Observer) { o.Hit() })
			return value, nil
		case StatusPending:
			f := e.flight
			s.mu.Unlock()
			s.observe(func(o Observer) { o.Join() })
			select {
			case <-f.done:
				return f.value, f.err
			case <-ctx.Done():
				// The flight keeps running; only this caller gives up.
				return nil, ctx.Err()
			}
		}
		// STALE and ERROR fall through to a fresh fetch.
	} else {
		e = &entry{}
		s.entries[key] = e
	}

	f := &flight{done: make(chan struct{})}
	e.status = StatusPending
	e.flight = f
	gen := e.generation
	s.mu.Unlock()
	s.observe(func(o Observer) { o.Miss() })

	value, err := fetch(ctx)

	s.mu.Lock()
	f.value, f.err = value, err
	close(f.done)
	// Only the entry's current flight may transition it. A flight that
	// was displaced (invalidation during flight, then a re-fetch) still
	// delivers its outcome to every caller that joined it, but must not
	// touch the entry the newer flight now owns.
	if e.flight == f {
		e.flight = nil
		if e.generation == gen {
			if err != nil {
				e.status = StatusError
				e.errMessage = err.Error()
				s.observe(func(o Observer) { o.FetchFailed() })
			} else {
				e.status = StatusFresh
				e.value = value
			}
			e.timestamp = time.Now()
		} else {
			// Invalidated while in flight; the entry is already STALE and
			// the resolution must not be committed as FRESH.
			s.logger.Debug("discarding resolution for invalidated key", "key", key)
		}
	} else {
		s.logger.Debug("discarding resolution displaced by a newer fetch", "key", key)
	}
	s.mu.Unlock()

	return value, err
}

// Invalidate marks the given entries stale. Stored values are kept (a
// stale value stays visible through Peek until a new successful fetch
// replaces it), but the next EnsureQueryData call for the key will
// re-fetch. Keys without an entry are ignored. Returns the number of
// entries actually invalidated.
func (s *Store) Invalidate(keys ...string) int {
	s.mu.Lock()
	var touched []string
	for _, key := range keys {
		e, ok := s.entries[key]
		if !ok {
			continue
		}
		e.generation++
		if e.status == StatusFresh || e.status == StatusPending {
			e.status = StatusStale
		}
		touched = append(touched, key)
	}
	hooks := make([]func([]string), len(s.onInvalidate))
	copy(hooks, s.onInvalidate)
	s.mu.Unlock()

	if len(touched) == 0 {
		return 0
	}
	s.observe(func(o Observer) { o.Invalidated(len(touched)) })
	for _, hook := range hooks {
		hook(touched)
	}
	return len(touched)
}

// InvalidatePattern invalidates every entry whose key matches the glob
// pattern (doublestar syntax, e.g. "shipments/**" or "order/*").
func (s *Store) InvalidatePattern(pattern string) (int, error) {
	s.mu.Lock()
	var matched []string
	for key := range s.entries {
		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			s.mu.Unlock()
			return 0, err
		}
		if ok {
			matched = append(matched, key)
		}
	}
	s.mu.Unlock()

	return s.Invalidate(matched...), nil
}

// OnInvalidate registers a hook called (outside the store lock) with
// the keys of every invalidation. The router uses this to drop
// memoized loader results so the next navigation re-runs them.
func (s *Store) OnInvalidate(fn func(keys []string)) {
	s.mu.Lock()
	s.onInvalidate = append(s.onInvalidate, fn)
	s.mu.Unlock()
}

// Peek returns the stored value and status for a key without touching
// the entry. Stale entries still expose their last value.
func (s *Store) Peek(key string) (value any, status Status, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, "", false
	}
	return e.value, e.status, true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) observe(fn func(Observer)) {
	if s.observer != nil {
		fn(s.observer)
	}
}
