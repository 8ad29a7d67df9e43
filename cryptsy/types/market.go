package types

import "github.com/shopspring/decimal"

// Market is an active trading pair as listed by getmarkets.
type Market struct {
	MarketID              string          `json:"marketid"`
	Label                 string          `json:"label"`
	PrimaryCurrencyCode   string          `json:"primary_currency_code"`
	PrimaryCurrencyName   string          `json:"primary_currency_name"`
	SecondaryCurrencyCode string          `json:"secondary_currency_code"`
	SecondaryCurrencyName string          `json:"secondary_currency_name"`
	CurrentVolume         decimal.Decimal `json:"current_volume"`
	LastTrade             decimal.Decimal `json:"last_trade"`
	HighTrade             decimal.Decimal `json:"high_trade"`
	LowTrade              decimal.Decimal `json:"low_trade"`
	Created               string          `json:"created"`
}

// MarketTrade is a public trade in a market (markettrades).
type MarketTrade struct {
	TradeID       string          `json:"tradeid"`
	Datetime      string          `json:"datetime"`
	TradePrice    decimal.Decimal `json:"tradeprice"`
	Quantity      decimal.Decimal `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	InitiateOrder string          `json:"initiate_ordertype"`
}

// BookOrder is one resting order in the public book of a market.
type BookOrder struct {
	BuyPrice  decimal.Decimal `json:"buyprice"`
	SellPrice decimal.Decimal `json:"sellprice"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// MarketOrders is the answer of marketorders.
type MarketOrders struct {
	SellOrders []BookOrder `json:"sellorders"`
	BuyOrders  []BookOrder `json:"buyorders"`
}

// Depth is the answer of depth. Each level is a [price, quantity] pair.
type Depth struct {
	Sell [][2]decimal.Decimal `json:"sell"`
	Buy  [][2]decimal.Decimal `json:"buy"`
}
