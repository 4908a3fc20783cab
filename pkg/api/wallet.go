package api

import (
	"context"
	"net/url"
)

// WalletRefillInput is the body of the wallet refill write.
type WalletRefillInput struct {
	Amount float64 `json:"amount"`
}

// WalletRefill tops up the wallet of a corporate customer. It is the
// write side of the corporate customer resource: a POST, never cached.
// On success it returns the server's feedback message; on failure the
// error carries the envelope message.
func (c *Client) WalletRefill(ctx context.Context, corporateID string, amount float64) (string, error) {
	var out struct {
		envelope
	}
	path := "/vendor/customers/corporate/" + url.PathEscape(corporateID) + "/wallet-refill"
	if err := c.post(ctx, path, WalletRefillInput{Amount: amount}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
