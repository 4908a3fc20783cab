package api

import (
	"context"
	"net/url"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// OrderKey is the cache key for one order.
func OrderKey(id string) string {
	return cache.Key("order", id)
}

// Order fetches a single order. Nil means absent.
func (c *Client) Order(ctx context.Context, id string) (*core.Order, error) {
	var out struct {
		envelope
		Order *core.Order `json:"order"`
	}
	if err := c.get(ctx, "/vendor/orders/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}
