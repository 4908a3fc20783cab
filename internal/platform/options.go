package platform

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/waybill/internal/session"
	"github.com/aretw0/waybill/pkg/mutate"
)

// options holds the internal configuration for the console.
type options struct {
	logger      *slog.Logger
	httpClient  *http.Client
	session     *session.Session
	sessionFile string
	registry    prometheus.Registerer
	feedback    mutate.Feedback
}

// Option defines a functional option for configuring the console.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client used against the vendor API
// (tests inject an httptest client).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithSession injects a prebuilt session instead of loading one from a
// file. Useful for tests and one-off scripts.
func WithSession(s *session.Session) Option {
	return func(o *options) {
		o.session = s
	}
}

// WithSessionFile sets the session file to load the operator session
// from. Ignored when WithSession is used.
func WithSessionFile(path string) Option {
	return func(o *options) {
		o.sessionFile = path
	}
}

// WithMetrics registers cache and router collectors on the given
// Prometheus registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithFeedback installs the user-visible mutation feedback effect.
func WithFeedback(fb mutate.Feedback) Option {
	return func(o *options) {
		o.feedback = fb
	}
}
