package client

import (
	"context"
	"net/url"

	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/shopspring/decimal"
)

// Info returns balances, server time and the open order count. The return
// member decodes into types.AccountInfo.
func (c *Client) Info(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodGetInfo, nil)
}

// MyTransactions returns the account's deposits and withdrawals. The
// return member decodes into []types.Transaction.
func (c *Client) MyTransactions(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodMyTransactions, nil)
}

// GenerateNewAddress creates a deposit address for the referenced
// currency. The return member decodes into types.NewAddress.
func (c *Client) GenerateNewAddress(ctx context.Context, currency types.CurrencyRef) (*types.Result, error) {
	if !currency.Valid() {
		return nil, invalidArgument("a currency id or a currency code is required")
	}
	name, value := currency.Param()
	return c.private(ctx, MethodGenerateNewAddress, url.Values{name: {value}})
}

// GenerateNewAddressFor is GenerateNewAddress for callers holding two
// optional identifiers. Exactly one of currencyID and currencyCode must be
// given.
func (c *Client) GenerateNewAddressFor(ctx context.Context, currencyID *int, currencyCode string) (*types.Result, error) {
	switch {
	case currencyID != nil && currencyCode != "":
		return nil, invalidArgument("give either a currency id or a currency code, not both")
	case currencyID != nil:
		return c.GenerateNewAddress(ctx, types.CurrencyByID(*currencyID))
	case currencyCode != "":
		return c.GenerateNewAddress(ctx, types.CurrencyByCode(currencyCode))
	default:
		return nil, invalidArgument("a currency id or a currency code is required")
	}
}

// MyTransfers returns transfers into and out of the account, newest first.
// The return member decodes into []types.Transfer.
func (c *Client) MyTransfers(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodMyTransfers, nil)
}

// WalletStatus returns the state of every currency's hot wallet. The
// return member decodes into []types.WalletStatus.
func (c *Client) WalletStatus(ctx context.Context) (*types.Result, error) {
	return c.private(ctx, MethodGetWalletStatus, nil)
}

// MakeWithdrawal withdraws amount to a pre-approved address. The exchange
// accepts at most 8 decimals.
func (c *Client) MakeWithdrawal(ctx context.Context, address string, amount decimal.Decimal) (*types.Result, error) {
	if address == "" {
		return nil, invalidArgument("withdrawal address is empty")
	}
	if !amount.IsPositive() {
		return nil, invalidArgument("withdrawal amount must be positive, got %s", amount)
	}
	if !amount.Equal(amount.Truncate(8)) {
		return nil, invalidArgument("withdrawal amount %s has more than 8 decimals", amount)
	}
	return c.private(ctx, MethodMakeWithdrawal, url.Values{
		"address": {address},
		"amount":  {amount.String()},
	})
}
