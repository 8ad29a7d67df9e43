package client

import (
	"context"

	"github.com/betbot/cryptsy/cryptsy/types"
)

// MarketData returns data for all markets. v2 selects marketdatav2.
func (c *Client) MarketData(ctx context.Context, v2 bool) (types.Value, error) {
	if v2 {
		return c.PublicQuery(ctx, MethodMarketDataV2, nil)
	}
	return c.PublicQuery(ctx, MethodMarketData, nil)
}

// SingleMarketData returns general data for one market.
func (c *Client) SingleMarketData(ctx context.Context, marketID int) (types.Value, error) {
	return c.PublicQuery(ctx, MethodSingleMarketData, &marketID)
}

// OrderBookData returns the order books of all markets, or of one market
// when marketID is non-nil.
func (c *Client) OrderBookData(ctx context.Context, marketID *int) (types.Value, error) {
	if marketID == nil {
		return c.PublicQuery(ctx, MethodOrderData, nil)
	}
	return c.PublicQuery(ctx, MethodSingleOrderData, marketID)
}
