package api

import (
	"context"
	"net/url"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// TripKey is the cache key for one trip.
func TripKey(id string) string {
	return cache.Key("trip", id)
}

// TripsKey is the cache key for a trips page.
func TripsKey(filter string) string {
	if filter == "" {
		return cache.Key("trips")
	}
	return cache.Key("trips", filter)
}

// Trip fetches a single trip. Nil means absent.
func (c *Client) Trip(ctx context.Context, id string) (*core.Trip, error) {
	var out struct {
		envelope
		Trip *core.Trip `json:"trip"`
	}
	if err := c.get(ctx, "/vendor/trips/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out.Trip, nil
}

// Trips fetches one page of trips matching the serialized filter.
func (c *Client) Trips(ctx context.Context, filter string) (List[core.Trip], error) {
	path := "/vendor/trips"
	if filter != "" {
		path += "?" + filter
	}
	var out struct {
		envelope
		Trips []core.Trip `json:"trips"`
		Count int         `json:"count"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return List[core.Trip]{}, err
	}
	return List[core.Trip]{Items: out.Trips, Count: out.Count}, nil
}
