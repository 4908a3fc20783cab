package api

import (
	"context"
	"net/url"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
)

// CustomerKey is the cache key for one customer record.
func CustomerKey(id string) string {
	return cache.Key("customer", id)
}

// Customer fetches a single customer. A nil result means the record is
// absent; the caller decides whether that is a NotFound state.
func (c *Client) Customer(ctx context.Context, id string) (*core.Customer, error) {
	var out struct {
		envelope
		Customer *core.Customer `json:"customer"`
	}
	if err := c.get(ctx, "/vendor/customers/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}

// CorporateCustomerKey is the cache key for one corporate customer
// record, addressed by id or phone number.
func CorporateCustomerKey(idOrPhone string) string {
	return cache.Key("corporate-customer", idOrPhone)
}

// CorporateCustomer fetches a corporate account by id or phone.
func (c *Client) CorporateCustomer(ctx context.Context, idOrPhone string) (*core.CorporateCustomer, error) {
	var out struct {
		envelope
		Customer *core.CorporateCustomer `json:"customer"`
	}
	if err := c.get(ctx, "/vendor/customers/corporate/"+url.PathEscape(idOrPhone), &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}
