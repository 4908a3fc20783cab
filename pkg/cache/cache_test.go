package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestEnsureQueryData_DedupesConcurrentFetches(t *testing.T) {
	s := New()
	ctx := context.Background()

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "value", nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([]any, waiters)
	errs := make([]error, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.EnsureQueryData(ctx, "order/123", fetch)
		}(i)
	}

	// Whether the other goroutines join the flight or read the fresh
	// entry afterwards, the fetch must run exactly once.
	<-started
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", got)
	}
	for i := 0; i < waiters; i++ {
		if errs[i] != nil {
			t.Fatalf("waiter %d got error: %v", i, errs[i])
		}
		if results[i] != "value" {
			t.Errorf("waiter %d got %v, want value", i, results[i])
		}
	}
}

func TestEnsureQueryData_FreshEntrySkipsFetch(t *testing.T) {
	s := New()
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.EnsureQueryData(ctx, "customer/c1", fetch)
		if err != nil {
			t.Fatalf("EnsureQueryData failed: %v", err)
		}
		if v != 42 {
			t.Fatalf("got %v, want 42", v)
		}
	}

	if calls != 1 {
		t.Errorf("expected 1 fetch for repeated reads, got %d", calls)
	}
}

func TestEnsureQueryData_ErrorPropagatesVerbatim(t *testing.T) {
	s := New()
	ctx := context.Background()

	boom := errors.New("Order not found")
	_, err := s.EnsureQueryData(ctx, "order/404", func(ctx context.Context) (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the fetch error verbatim, got %v", err)
	}

	_, status, ok := s.Peek("order/404")
	if !ok || status != StatusError {
		t.Errorf("expected ERROR entry, got status=%s ok=%v", status, ok)
	}

	// An error entry is eligible for retry on the next call.
	v, err := s.EnsureQueryData(ctx, "order/404", func(ctx context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil || v != "recovered" {
		t.Errorf("retry after error: got %v, %v", v, err)
	}
}

func TestInvalidate_ForcesRefetchButKeepsValue(t *testing.T) {
	s := New()
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := s.EnsureQueryData(ctx, "corporate-customer/abc", fetch); err != nil {
		t.Fatal(err)
	}

	if n := s.Invalidate("corporate-customer/abc"); n != 1 {
		t.Fatalf("expected 1 invalidation, got %d", n)
	}

	// The stale value stays visible until replaced.
	v, status, ok := s.Peek("corporate-customer/abc")
	if !ok || status != StatusStale || v != 1 {
		t.Fatalf("expected stale value 1, got %v (%s)", v, status)
	}

	v, err := s.EnsureQueryData(ctx, "corporate-customer/abc", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 || calls != 2 {
		t.Errorf("expected a re-fetch after invalidation, got v=%v calls=%d", v, calls)
	}
}

func TestInvalidate_UnknownKeyIsNoop(t *testing.T) {
	s := New()
	if n := s.Invalidate("never-fetched"); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}

func TestInvalidate_DuringFlightPreventsResurrection(t *testing.T) {
	s := New()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.EnsureQueryData(ctx, "trip/t1", func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return "stale response", nil
		})
	}()

	<-started
	s.Invalidate("trip/t1")
	close(release)
	<-done

	// The slow resolution must not have committed a FRESH entry.
	_, status, ok := s.Peek("trip/t1")
	if !ok {
		t.Fatal("expected an entry")
	}
	if status == StatusFresh {
		t.Errorf("invalidated in-flight fetch resurrected the entry (status=%s)", status)
	}
}

func TestLateResolutionDoesNotDisplaceNewerFlight(t *testing.T) {
	s := New()
	ctx := context.Background()

	startedA := make(chan struct{})
	releaseA := make(chan struct{})
	doneA := make(chan struct{})
	go func() {
		defer close(doneA)
		_, _ = s.EnsureQueryData(ctx, "customer/c1", func(ctx context.Context) (any, error) {
			close(startedA)
			<-releaseA
			return "first", nil
		})
	}()
	<-startedA

	// Invalidation while A is in flight mandates a re-fetch, so B
	// legitimately starts a second flight for the same key.
	s.Invalidate("customer/c1")

	startedB := make(chan struct{})
	releaseB := make(chan struct{})
	doneB := make(chan struct{})
	var bValue any
	go func() {
		defer close(doneB)
		bValue, _ = s.EnsureQueryData(ctx, "customer/c1", func(ctx context.Context) (any, error) {
			close(startedB)
			<-releaseB
			return "second", nil
		})
	}()
	<-startedB

	// A resolves late, while B owns the entry. The entry must stay
	// PENDING so later callers keep joining B.
	close(releaseA)
	<-doneA

	_, status, ok := s.Peek("customer/c1")
	if !ok {
		t.Fatal("expected an entry")
	}
	if status != StatusPending {
		t.Fatalf("late resolution displaced the in-flight entry: status=%s", status)
	}

	// A third caller must not start its own fetch for the key.
	var extraFetches int32
	doneC := make(chan struct{})
	var cValue any
	go func() {
		defer close(doneC)
		cValue, _ = s.EnsureQueryData(ctx, "customer/c1", func(ctx context.Context) (any, error) {
			atomic.AddInt32(&extraFetches, 1)
			return "third", nil
		})
	}()

	close(releaseB)
	<-doneB
	<-doneC

	if got := atomic.LoadInt32(&extraFetches); got != 0 {
		t.Fatalf("expected the third caller to join the flight, got %d extra fetches", got)
	}
	if bValue != "second" || cValue != "second" {
		t.Errorf("expected both callers to see the re-fetched value, got B=%v C=%v", bValue, cValue)
	}
}

func TestInvalidatePattern(t *testing.T) {
	s := New()
	ctx := context.Background()

	seed := func(key string) {
		_, _ = s.EnsureQueryData(ctx, key, func(ctx context.Context) (any, error) {
			return key, nil
		})
	}
	seed("shipments/limit=10")
	seed("shipments/limit=20")
	seed("vehicle/v1")

	n, err := s.InvalidatePattern("shipments/**")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 matches, got %d", n)
	}

	_, status, _ := s.Peek("vehicle/v1")
	if status != StatusFresh {
		t.Errorf("unrelated entry touched: %s", status)
	}
}

func TestOnInvalidateHook(t *testing.T) {
	s := New()
	ctx := context.Background()

	var notified []string
	s.OnInvalidate(func(keys []string) {
		notified = append(notified, keys...)
	})

	_, _ = s.EnsureQueryData(ctx, "station/s1", func(ctx context.Context) (any, error) {
		return nil, nil
	})
	s.Invalidate("station/s1")

	if len(notified) != 1 || notified[0] != "station/s1" {
		t.Errorf("hook got %v", notified)
	}
}

func TestKey(t *testing.T) {
	if Key("stations") != "stations" {
		t.Errorf("bare kind: got %s", Key("stations"))
	}
	if Key("order", "123") != "order/123" {
		t.Errorf("id key: got %s", Key("order", "123"))
	}
	// Identical logical requests must produce byte-identical keys.
	if Key("trips", "limit=5&offset=0") != Key("trips", "limit=5&offset=0") {
		t.Error("key construction is not deterministic")
	}
}
