package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Hit()
	m.Hit()
	m.Miss()
	m.Invalidated(3)
	m.Navigation()
	m.Superseded()
	m.LoaderCommitted("order-detail", 25*time.Millisecond)

	if got := testutil.ToFloat64(m.cacheHits); got != 2 {
		t.Errorf("hits = %v", got)
	}
	if got := testutil.ToFloat64(m.cacheMisses); got != 1 {
		t.Errorf("misses = %v", got)
	}
	if got := testutil.ToFloat64(m.cacheInvalidated); got != 3 {
		t.Errorf("invalidated = %v", got)
	}
	if got := testutil.ToFloat64(m.navsSuperseded); got != 1 {
		t.Errorf("superseded = %v", got)
	}
}

func TestRegistersWithoutCollision(t *testing.T) {
	// Two consoles in one process must use separate registries; one
	// registry must accept the full set exactly once.
	reg := prometheus.NewRegistry()
	_ = New(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	_ = New(reg)
}
