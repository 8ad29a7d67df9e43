package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/shopspring/decimal"
)

// MyOrders returns the account's open orders, all of them when marketID
// is nil. The return member decodes into []types.Order.
func (c *Client) MyOrders(ctx context.Context, marketID *int) (*types.Result, error) {
	if marketID == nil {
		return c.private(ctx, MethodAllMyOrders, nil)
	}
	return c.private(ctx, MethodMyOrders, marketParams(*marketID))
}

// MyTrades returns the account's trades, newest first. With a nil marketID
// every market is queried and limit is ignored; a limit <= 0 means
// DefaultMyTradesLimit. The return member decodes into []types.Trade.
func (c *Client) MyTrades(ctx context.Context, marketID *int, limit int) (*types.Result, error) {
	if marketID == nil {
		return c.private(ctx, MethodAllMyTrades, nil)
	}
	if limit <= 0 {
		limit = DefaultMyTradesLimit
	}
	params := marketParams(*marketID)
	params.Set("limit", strconv.Itoa(limit))
	return c.private(ctx, MethodMyTrades, params)
}

// CreateOrder places a limit order. On success the result carries the new
// order id in OrderID. Buy and Sell are the usual entry points.
func (c *Client) CreateOrder(ctx context.Context, marketID int, orderType types.OrderType, quantity, price decimal.Decimal) (*types.Result, error) {
	if !orderType.Valid() {
		return nil, invalidArgument("unknown order type %q", orderType)
	}
	params := marketParams(marketID)
	params.Set("ordertype", string(orderType))
	params.Set("quantity", quantity.String())
	params.Set("price", price.String())
	return c.private(ctx, MethodCreateOrder, params)
}

// Buy places a buy order for quantity coins at price.
func (c *Client) Buy(ctx context.Context, marketID int, quantity, price decimal.Decimal) (*types.Result, error) {
	return c.CreateOrder(ctx, marketID, types.OrderTypeBuy, quantity, price)
}

// Sell places a sell order for quantity coins at price.
func (c *Client) Sell(ctx context.Context, marketID int, quantity, price decimal.Decimal) (*types.Result, error) {
	return c.CreateOrder(ctx, marketID, types.OrderTypeSell, quantity, price)
}

// CancelOrder cancels one order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*types.Result, error) {
	if orderID == "" {
		return nil, invalidArgument("order id is empty")
	}
	return c.private(ctx, MethodCancelOrder, url.Values{"orderid": {orderID}})
}

// CancelMarketOrders cancels every pending order in one market.
func (c *Client) CancelMarketOrders(ctx context.Context, marketID int) (*types.Result, error) {
	return c.private(ctx, MethodCancelMarketOrders, marketParams(marketID))
}

// CancelAllOrders cancels every pending order. The return member is absent
// when there was nothing to cancel; types.NewCancelReport handles both
// shapes.
func (c *Client) CancelAllOrders(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodCancelAllOrders, nil)
}

// CalculateFees asks what an order would cost in fees. The return member
// decodes into types.FeeEstimate.
func (c *Client) CalculateFees(ctx context.Context, orderType types.OrderType, quantity, price decimal.Decimal) (*types.Result, error) {
	if !orderType.Valid() {
		return nil, invalidArgument("unknown order type %q", orderType)
	}
	return c.private(ctx, MethodCalculateFees, url.Values{
		"ordertype": {string(orderType)},
		"quantity":  {quantity.String()},
		"price":     {price.String()},
	})
}
