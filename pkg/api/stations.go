package api

import (
	"context"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// StationsKey is the cache key for the station list. Stations are not
// paginated; the whole network fits in one response.
func StationsKey() string {
	return cache.Key("stations")
}

// Stations fetches every station.
func (c *Client) Stations(ctx context.Context) ([]core.Station, error) {
	var out struct {
		envelope
		Stations []core.Station `json:"stations"`
	}
	if err := c.get(ctx, "/vendor/stations", &out); err != nil {
		return nil, err
	}
	return out.Stations, nil
}
