package api

import (
	"context"
	"net/url"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// VehicleKey is the cache key for one vehicle.
func VehicleKey(id string) string {
	return cache.Key("vehicle", id)
}

// VehiclesKey is the cache key for a vehicles page.
func VehiclesKey(filter string) string {
	if filter == "" {
		return cache.Key("vehicles")
	}
	return cache.Key("vehicles", filter)
}

// Vehicle fetches a single vehicle. Nil means absent.
func (c *Client) Vehicle(ctx context.Context, id string) (*core.Vehicle, error) {
	var out struct {
		envelope
		Vehicle *core.Vehicle `json:"vehicle"`
	}
	if err := c.get(ctx, "/vendor/vehicles/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out.Vehicle, nil
}

// Vehicles fetches one page of the fleet matching the serialized filter.
func (c *Client) Vehicles(ctx context.Context, filter string) (List[core.Vehicle], error) {
	path := "/vendor/vehicles"
	if filter != "" {
		path += "?" + filter
	}
	var out struct {
		envelope
		Vehicles []core.Vehicle `json:"vehicles"`
		Count    int            `json:"count"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return List[core.Vehicle]{}, err
	}
	return List[core.Vehicle]{Items: out.Vehicles, Count: out.Count}, nil
}
