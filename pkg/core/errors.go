package core

import "fmt"

// The console distinguishes five failure classes. Callers branch with
// errors.As; none of them wrap each other.

// ValidationError means a search string failed a route's schema.
// Navigation into the route is blocked before any fetch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid search param %q: %s", e.Field, e.Reason)
}

// AuthorizationError means a route guard rejected the current session.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotFoundError means a fetched entity is absent. It renders as a
// distinct not-found state, not a generic error.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// FetchError carries the message of a failed remote read: either the
// envelope reported success=false, or the transport itself failed.
// Error returns the message verbatim so it can surface unchanged at the
// nearest error boundary.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

// MutationError is a write-path failure. It is surfaced as transient
// feedback only; cache and navigation state stay untouched.
type MutationError struct {
	Message string
}

func (e *MutationError) Error() string {
	return e.Message
}
