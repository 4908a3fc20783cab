package waybill

import (
	"context"
	"log/slog"
	"net/http"

	_ "embed"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/waybill/internal/platform"
	"github.com/aretw0/waybill/internal/session"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/mutate"
	"github.com/aretw0/waybill/pkg/nav"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Console is the assembled client-side data layer.
type Console = platform.Console

// Navigation is the committed outcome of one navigation.
type Navigation = nav.Navigation

// LoadResult is a tagged per-route loader outcome.
type LoadResult = core.LoadResult

// Mutation declares a write plus its cache and navigation follow-ups.
type Mutation = mutate.Mutation

// Route names for reading data out of a Navigation.
const (
	RouteCustomer       = platform.RouteCustomer
	RouteCorporate      = platform.RouteCorporate
	RouteOrder          = platform.RouteOrder
	RouteOrderSummary   = platform.RouteOrderSummary
	RouteShipments      = platform.RouteShipments
	RouteShipmentDetail = platform.RouteShipmentDetail
	RouteTrips          = platform.RouteTrips
	RouteTripDetail     = platform.RouteTripDetail
	RouteVehicles       = platform.RouteVehicles
	RouteVehicleDetail  = platform.RouteVehicleDetail
	RouteStations       = platform.RouteStations
	RouteFleet          = platform.RouteFleet
	RouteSetup          = platform.RouteSetup
)

// --- Configuration ---

// Option defines a functional option for configuring the console.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithHTTPClient replaces the HTTP client used against the vendor API.
func WithHTTPClient(hc *http.Client) Option {
	return platform.WithHTTPClient(hc)
}

// WithSessionFile sets the YAML file to load the operator session from.
func WithSessionFile(path string) Option {
	return platform.WithSessionFile(path)
}

// WithStaticSession injects a fixed session instead of loading a file.
// Useful for tests and one-off scripts.
func WithStaticSession(token, role, vendorID string) Option {
	return platform.WithSession(session.Static(token, role, vendorID))
}

// WithMetrics registers cache and navigation collectors on the given
// Prometheus registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return platform.WithMetrics(reg)
}

// WithFeedback installs the user-visible mutation feedback effect.
func WithFeedback(fb mutate.Feedback) Option {
	return platform.WithFeedback(fb)
}

// --- Factory ---

// New builds a console against the vendor API at baseURL.
func New(baseURL string, opts ...Option) (*Console, error) {
	return platform.New(baseURL, opts...)
}

// --- Operations ---

// Navigate runs one navigation through a console's router.
func Navigate(ctx context.Context, c *Console, target string) (*Navigation, error) {
	return c.Navigate(ctx, target)
}
