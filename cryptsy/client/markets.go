package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/betbot/cryptsy/cryptsy/types"
)

func marketParams(marketID int) url.Values {
	return url.Values{"marketid": {strconv.Itoa(marketID)}}
}

// Markets lists active markets. The return member decodes into
// []types.Market.
func (c *Client) Markets(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodGetMarkets, nil)
}

// MarketTrades returns the last 1000 trades of a market, newest first.
// The return member decodes into []types.MarketTrade.
func (c *Client) MarketTrades(ctx context.Context, marketID int) (*types.Result, error) {
	return c.private(ctx, MethodMarketTrades, marketParams(marketID))
}

// MarketOrders returns the open buy and sell orders of a market. The
// return member decodes into types.MarketOrders.
func (c *Client) MarketOrders(ctx context.Context, marketID int) (*types.Result, error) {
	return c.private(ctx, MethodMarketOrders, marketParams(marketID))
}

// Depth returns the market depth. The return member decodes into
// types.Depth.
func (c *Client) Depth(ctx context.Context, marketID int) (*types.Result, error) {
	return c.private(ctx, MethodDepth, marketParams(marketID))
}
