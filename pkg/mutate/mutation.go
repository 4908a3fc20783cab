// Package mutate performs writes against the vendor API and keeps the
// query cache honest afterwards: a successful write invalidates the
// exact set of entries it affected and may drive a follow-up
// navigation; a failed write changes nothing but the user feedback.
package mutate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/nav"
)

// WriteFunc performs the remote write and returns the server's
// feedback message.
type WriteFunc func(ctx context.Context) (string, error)

// Feedback is the user-visible effect carrying a success or failure
// message (a toast in a UI, a printed line in the CLI).
type Feedback func(message string, success bool)

// Mutation declares one write: the call itself, the exact cache keys
// its success makes stale, and an optional route to navigate to
// afterwards (one that depends on the now-stale data, so its loader
// re-fetches).
type Mutation struct {
	Name       string
	Write      WriteFunc
	Invalidate []string
	NavigateTo string
}

// Navigator is the follow-up navigation surface; satisfied by
// *nav.Router.
type Navigator interface {
	Navigate(ctx context.Context, target string) (*nav.Navigation, error)
}

// Controller executes mutations against a shared cache and router.
type Controller struct {
	store     *cache.Store
	navigator Navigator
	feedback  Feedback
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithFeedback installs the user-visible feedback effect.
func WithFeedback(fb Feedback) Option {
	return func(c *Controller) {
		c.feedback = fb
	}
}

// NewController creates a Controller. The navigator may be nil when no
// mutation declares a follow-up navigation.
func NewController(store *cache.Store, navigator Navigator, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		navigator: navigator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the mutation. On success it fires the feedback effect
// with the response message, invalidates exactly the declared keys
// (no broader, no narrower), and performs the declared navigation. On
// failure it fires the feedback effect with the error message and
// leaves cache and navigation state untouched; the returned error is a
// *core.MutationError wrapping nothing.
//
// The navigation result of a successful mutation is returned so the
// caller can render the refreshed route ((nil, nil) when the mutation
// declares no follow-up).
func (c *Controller) Execute(ctx context.Context, m Mutation) (*nav.Navigation, error) {
	message, err := m.Write(ctx)
	if err != nil {
		c.logger.Debug("mutation failed", "mutation", m.Name, "error", err)
		c.emit(err.Error(), false)

		var mErr *core.MutationError
		if errors.As(err, &mErr) {
			return nil, err
		}
		return nil, &core.MutationError{Message: err.Error()}
	}

	c.emit(message, true)

	if len(m.Invalidate) > 0 {
		n := c.store.Invalidate(m.Invalidate...)
		c.logger.Debug("mutation invalidated cache entries",
			"mutation", m.Name, "declared", len(m.Invalidate), "invalidated", n)
	}

	if m.NavigateTo == "" || c.navigator == nil {
		return nil, nil
	}
	return c.navigator.Navigate(ctx, m.NavigateTo)
}

func (c *Controller) emit(message string, success bool) {
	if c.feedback != nil {
		c.feedback(message, success)
	}
}
