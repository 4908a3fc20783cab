package api

import (
	"context"
	"net/url"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// ShipmentKey is the cache key for one shipment.
func ShipmentKey(id string) string {
	return cache.Key("shipment", id)
}

// ShipmentsKey is the cache key for a shipments page. The filter is the
// already-serialized query string (see EncodeFilter), so identical
// filters share one entry.
func ShipmentsKey(filter string) string {
	if filter == "" {
		return cache.Key("shipments")
	}
	return cache.Key("shipments", filter)
}

// Shipment fetches a single shipment. Nil means absent.
func (c *Client) Shipment(ctx context.Context, id string) (*core.Shipment, error) {
	var out struct {
		envelope
		Shipment *core.Shipment `json:"shipment"`
	}
	if err := c.get(ctx, "/vendor/shipments/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out.Shipment, nil
}

// Shipments fetches one page of shipments matching the serialized
// filter (may be empty), plus the total count for pagination.
func (c *Client) Shipments(ctx context.Context, filter string) (List[core.Shipment], error) {
	path := "/vendor/shipments"
	if filter != "" {
		path += "?" + filter
	}
	var out struct {
		envelope
		Shipments []core.Shipment `json:"shipments"`
		Count     int             `json:"count"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return List[core.Shipment]{}, err
	}
	return List[core.Shipment]{Items: out.Shipments, Count: out.Count}, nil
}
