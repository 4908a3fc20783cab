// Package platform is the composition root: it wires the API client,
// query cache, session, router, and mutation controller into a working
// console, and declares the route tree the console navigates.
package platform

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/waybill/pkg/api"
	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/nav"
	"github.com/aretw0/waybill/pkg/params"
)

// Route names, used by callers to pull data out of a Navigation.
const (
	RouteCustomer       = "customer-detail"
	RouteCorporate      = "corporate-detail"
	RouteOrder          = "order-detail"
	RouteOrderSummary   = "order-summary"
	RouteShipments      = "shipments"
	RouteShipmentDetail = "shipment-detail"
	RouteTrips          = "trips"
	RouteTripDetail     = "trip-detail"
	RouteVehicles       = "vehicles"
	RouteVehicleDetail  = "vehicle-detail"
	RouteStations       = "stations"
	RouteFleet          = "fleet-overview"
	RouteSetup          = "setup"
)

// OrderSummary is the condensed order view the summary panel renders
// from its parent's data, without fetching anything itself.
type OrderSummary struct {
	OrderID        string `json:"orderId"`
	CustomerName   string `json:"customerName"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Status         string `json:"status,omitempty"`
}

func shipmentsSchema() *params.Schema {
	return params.NewSchema(
		params.Field{Name: "limit", Kind: params.Int, Default: "20"},
		params.Field{Name: "offset", Kind: params.Int, Default: "0"},
		params.Field{Name: "coverage", Kind: params.Enum, Members: []string{"local", "national", "international"}},
		params.Field{Name: "sort", Kind: params.Enum, Members: []string{"ASC", "DESC"}, Default: "DESC"},
	).WithDeps("limit", "offset", "coverage", "sort")
}

func tripsSchema() *params.Schema {
	return params.NewSchema(
		params.Field{Name: "limit", Kind: params.Int, Default: "20"},
		params.Field{Name: "offset", Kind: params.Int, Default: "0"},
		params.Field{Name: "status", Kind: params.Enum, Members: []string{"scheduled", "active", "completed"}},
	).WithDeps("limit", "offset", "status")
}

func vehiclesSchema() *params.Schema {
	return params.NewSchema(
		params.Field{Name: "limit", Kind: params.Int, Default: "20"},
		params.Field{Name: "offset", Kind: params.Int, Default: "0"},
		params.Field{Name: "status", Kind: params.Enum, Members: []string{"available", "assigned", "maintenance"}},
	).WithDeps("limit", "offset", "status")
}

// requireRole gates a route on the operator's role.
func requireRole(role string) nav.Guard {
	return func(s nav.Session) error {
		if s.Role() != role {
			return &core.AuthorizationError{Message: "this area requires the " + role + " role"}
		}
		return nil
	}
}

// Routes declares the console's route tree against the given client.
// Loaders fetch through the navigation's cache, so two routes naming
// the same entity share one request.
func Routes(client *api.Client) []*nav.Route {
	return []*nav.Route{
		{
			Name:     RouteCustomer,
			Path:     "/customers/:id",
			Boundary: true,
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				id := lc.Params["id"]
				customer, err := cache.EnsureTyped(ctx, lc.Cache, api.CustomerKey(id), func(ctx context.Context) (*core.Customer, error) {
					return client.Customer(ctx, id)
				})
				if err != nil {
					return nil, err
				}
				if customer == nil {
					return nil, &core.NotFoundError{Resource: "customer", ID: id}
				}
				return customer, nil
			},
		},
		{
			Name:     RouteCorporate,
			Path:     "/corporate/:id",
			Boundary: true,
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				id := lc.Params["id"]
				corporate, err := cache.EnsureTyped(ctx, lc.Cache, api.CorporateCustomerKey(id), func(ctx context.Context) (*core.CorporateCustomer, error) {
					return client.CorporateCustomer(ctx, id)
				})
				if err != nil {
					return nil, err
				}
				if corporate == nil {
					return nil, &core.NotFoundError{Resource: "corporate customer", ID: id}
				}
				return corporate, nil
			},
		},
		{
			Name:     RouteOrder,
			Path:     "/orders/:id",
			Boundary: true,
			Loader:   orderLoader(client),
			Children: []*nav.Route{
				{
					Name:   RouteOrderSummary,
					Path:   "summary",
					Loader: orderSummaryLoader,
				},
			},
		},
		{
			Name:     RouteShipments,
			Path:     "/shipments",
			Boundary: true,
			Schema:   shipmentsSchema(),
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				filter := api.EncodeFilter(shipmentsFilter(lc.Search))
				return cache.EnsureTyped(ctx, lc.Cache, api.ShipmentsKey(filter), func(ctx context.Context) (api.List[core.Shipment], error) {
					return client.Shipments(ctx, filter)
				})
			},
		},
		{
			Name:     RouteShipmentDetail,
			Path:     "/shipments/:id",
			Boundary: true,
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				id := lc.Params["id"]
				shipment, err := cache.EnsureTyped(ctx, lc.Cache, api.ShipmentKey(id), func(ctx context.Context) (*core.Shipment, error) {
					return client.Shipment(ctx, id)
				})
				if err != nil {
					return nil, err
				}
				if shipment == nil {
					return nil, &core.NotFoundError{Resource: "shipment", ID: id}
				}
				return shipment, nil
			},
		},
		{
			Name:     RouteTrips,
			Path:     "/trips",
			Boundary: true,
			Schema:   tripsSchema(),
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				filter := api.EncodeFilter(listFilter(lc.Search))
				return cache.EnsureTyped(ctx, lc.Cache, api.TripsKey(filter), func(ctx context.Context) (api.List[core.Trip], error) {
					return client.Trips(ctx, filter)
				})
			},
		},
		{
			Name:     RouteTripDetail,
			Path:     "/trips/:id",
			Boundary: true,
			Loader:   tripLoader(client),
		},
		{
			Name:     RouteVehicles,
			Path:     "/vehicles",
			Boundary: true,
			Schema:   vehiclesSchema(),
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				filter := api.EncodeFilter(listFilter(lc.Search))
				return cache.EnsureTyped(ctx, lc.Cache, api.VehiclesKey(filter), func(ctx context.Context) (api.List[core.Vehicle], error) {
					return client.Vehicles(ctx, filter)
				})
			},
		},
		{
			Name:     RouteVehicleDetail,
			Path:     "/vehicles/:id",
			Boundary: true,
			Loader: func(ctx context.Context, lc *nav.LoadContext) (any, error) {
				id := lc.Params["id"]
				vehicle, err := cache.EnsureTyped(ctx, lc.Cache, api.VehicleKey(id), func(ctx context.Context) (*core.Vehicle, error) {
					return client.Vehicle(ctx, id)
				})
				if err != nil {
					return nil, err
				}
				if vehicle == nil {
					return nil, &core.NotFoundError{Resource: "vehicle", ID: id}
				}
				return vehicle, nil
			},
		},
		{
			Name:     RouteStations,
			Path:     "/stations",
			Boundary: true,
			Loader:   stationsLoader(client),
		},
		{
			Name:     RouteFleet,
			Path:     "/fleet",
			Boundary: true,
			Loader:   fleetLoader(client),
		},
		{
			Name:     RouteSetup,
			Path:     "/setup",
			Guard:    requireRole("admin"),
			Boundary: true,
			Loader:   stationsLoader(client),
		},
	}
}

// orderLoader fetches the order first and then, dependently, the
// customer it belongs to. An absent order short-circuits as not found;
// the customer lookup never runs with a made-up id.
func orderLoader(client *api.Client) nav.LoaderFunc {
	return func(ctx context.Context, lc *nav.LoadContext) (any, error) {
		id := lc.Params["id"]
		order, err := cache.EnsureTyped(ctx, lc.Cache, api.OrderKey(id), func(ctx context.Context) (*core.Order, error) {
			return client.Order(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, &core.NotFoundError{Resource: "order", ID: id}
		}

		customer, err := cache.EnsureTyped(ctx, lc.Cache, api.CustomerKey(order.CustomerID), func(ctx context.Context) (*core.Customer, error) {
			return client.Customer(ctx, order.CustomerID)
		})
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, &core.NotFoundError{Resource: "customer", ID: order.CustomerID}
		}

		return &core.OrderDetail{Order: order, Customer: customer}, nil
	}
}

// orderSummaryLoader reads its parent's composed data. No fetch of its
// own, so it costs nothing beyond the parent.
func orderSummaryLoader(ctx context.Context, lc *nav.LoadContext) (any, error) {
	data, ok := lc.LoaderData(RouteOrder)
	if !ok {
		return nil, &core.NotFoundError{Resource: "order", ID: lc.Params["id"]}
	}
	detail := data.(*core.OrderDetail)
	return &OrderSummary{
		OrderID:        detail.Order.ID,
		CustomerName:   detail.Customer.Name,
		TrackingNumber: detail.Order.TrackingNumber,
		Status:         detail.Order.Status,
	}, nil
}

func tripLoader(client *api.Client) nav.LoaderFunc {
	return func(ctx context.Context, lc *nav.LoadContext) (any, error) {
		id := lc.Params["id"]
		trip, err := cache.EnsureTyped(ctx, lc.Cache, api.TripKey(id), func(ctx context.Context) (*core.Trip, error) {
			return client.Trip(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		if trip == nil {
			return nil, &core.NotFoundError{Resource: "trip", ID: id}
		}

		detail := &core.TripDetail{Trip: trip}
		if trip.VehicleID != "" {
			vehicle, err := cache.EnsureTyped(ctx, lc.Cache, api.VehicleKey(trip.VehicleID), func(ctx context.Context) (*core.Vehicle, error) {
				return client.Vehicle(ctx, trip.VehicleID)
			})
			if err != nil {
				return nil, err
			}
			detail.Vehicle = vehicle
		}
		return detail, nil
	}
}

func stationsLoader(client *api.Client) nav.LoaderFunc {
	return func(ctx context.Context, lc *nav.LoadContext) (any, error) {
		return cache.EnsureTyped(ctx, lc.Cache, api.StationsKey(), func(ctx context.Context) ([]core.Station, error) {
			return client.Stations(ctx)
		})
	}
}

// fleetLoader pulls the vehicle roster and the station network in
// parallel; neither fetch depends on the other.
func fleetLoader(client *api.Client) nav.LoaderFunc {
	return func(ctx context.Context, lc *nav.LoadContext) (any, error) {
		var (
			vehicles api.List[core.Vehicle]
			stations []core.Station
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			vehicles, err = cache.EnsureTyped(gctx, lc.Cache, api.VehiclesKey(""), func(ctx context.Context) (api.List[core.Vehicle], error) {
				return client.Vehicles(ctx, "")
			})
			return err
		})
		g.Go(func() error {
			var err error
			stations, err = cache.EnsureTyped(gctx, lc.Cache, api.StationsKey(), func(ctx context.Context) ([]core.Station, error) {
				return client.Stations(ctx)
			})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &core.FleetOverview{
			Vehicles: vehicles.Items,
			Stations: stations,
			Total:    vehicles.Count,
		}, nil
	}
}

// shipmentsFilter maps shipment search values to the backend's filter
// shape, sort going through the bracketed order criterion.
func shipmentsFilter(search params.Values) api.Filter {
	filter := api.Filter{
		"limit":  search.GetInt("limit"),
		"offset": search.GetInt("offset"),
		"order":  map[string]string{"createdAt": search.Get("sort")},
	}
	if coverage := search.Get("coverage"); coverage != "" {
		filter["coverage"] = coverage
	}
	return filter
}

// listFilter is the common limit/offset/status projection used by the
// trips and vehicles lists.
func listFilter(search params.Values) api.Filter {
	filter := api.Filter{
		"limit":  search.GetInt("limit"),
		"offset": search.GetInt("offset"),
	}
	if status := search.Get("status"); status != "" {
		filter["status"] = status
	}
	return filter
}
