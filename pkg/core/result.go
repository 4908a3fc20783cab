package core

// LoadState classifies the outcome of a route loader. Authorization and
// not-found outcomes are states, not raised errors, so branching on a
// result is exhaustive.
type LoadState string

const (
	LoadReady        LoadState = "READY"
	LoadNotFound     LoadState = "NOT_FOUND"
	LoadUnauthorized LoadState = "UNAUTHORIZED"
	LoadFailed       LoadState = "FAILED"
	// LoadSuperseded marks a result discarded because a newer navigation
	// started before this one committed.
	LoadSuperseded LoadState = "SUPERSEDED"
)

// LoadResult is the tagged outcome of one loader (or one navigation).
// Data is set only in the Ready state; Message only in failure states.
type LoadResult struct {
	State   LoadState
	Data    any
	Message string
}

// Ready wraps loader data in a successful result.
func Ready(data any) LoadResult {
	return LoadResult{State: LoadReady, Data: data}
}

// NotFound marks an absent entity.
func NotFound(message string) LoadResult {
	return LoadResult{State: LoadNotFound, Message: message}
}

// Unauthorized marks a rejected guard.
func Unauthorized(message string) LoadResult {
	return LoadResult{State: LoadUnauthorized, Message: message}
}

// Failed marks an unrecovered fetch or validation failure.
func Failed(message string) LoadResult {
	return LoadResult{State: LoadFailed, Message: message}
}

// Superseded marks a result displaced by a later navigation.
func Superseded() LoadResult {
	return LoadResult{State: LoadSuperseded}
}

// OK reports whether the result carries usable data.
func (r LoadResult) OK() bool {
	return r.State == LoadReady
}
