package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderType is the side of an order as the exchange spells it.
type OrderType string

const (
	OrderTypeBuy  OrderType = "Buy"
	OrderTypeSell OrderType = "Sell"
)

// Valid reports whether t is one of the known order types.
func (t OrderType) Valid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

// Order is one of the account's open orders (myorders / allmyorders).
type Order struct {
	OrderID   string          `json:"orderid"`
	MarketID  string          `json:"marketid,omitempty"`
	Created   string          `json:"created"`
	OrderType OrderType       `json:"ordertype"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	OrigQty   decimal.Decimal `json:"orig_quantity"`
	Total     decimal.Decimal `json:"total"`
}

// Trade is one of the account's own trades (mytrades / allmytrades).
type Trade struct {
	TradeID       string          `json:"tradeid"`
	TradeType     OrderType       `json:"tradetype"`
	Datetime      string          `json:"datetime"`
	MarketID      string          `json:"marketid,omitempty"`
	TradePrice    decimal.Decimal `json:"tradeprice"`
	Quantity      decimal.Decimal `json:"quantity"`
	Fee           decimal.Decimal `json:"fee"`
	Total         decimal.Decimal `json:"total"`
	InitiateOrder string          `json:"initiate_ordertype"`
	OrderID       string          `json:"order_id"`
}

// FeeEstimate is the answer of calculatefees.
type FeeEstimate struct {
	Fee decimal.Decimal `json:"fee"`
	Net decimal.Decimal `json:"net"`
}

// CancelReport is what cancelallorders answered with. Entries holds the
// decoded elements of the return array, which is absent when there was
// nothing to cancel.
type CancelReport struct {
	Success Flag
	Message string
	Entries []any
}

// NewCancelReport builds a report from a cancel response. A missing return
// member yields an empty report and no error.
func NewCancelReport(res *Result) (*CancelReport, error) {
	report := &CancelReport{Success: res.Success, Message: res.Error}
	if !res.HasReturn() {
		return report, nil
	}
	var entries any
	if err := json.Unmarshal(res.Return, &entries); err != nil {
		return nil, err
	}
	switch v := entries.(type) {
	case []any:
		report.Entries = v
	default:
		report.Entries = []any{v}
	}
	return report, nil
}

// OrderIDs returns the orderid of every object entry, in order.
func (r *CancelReport) OrderIDs() []string {
	var ids []string
	for _, entry := range r.Entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		switch id := obj["orderid"].(type) {
		case string:
			ids = append(ids, id)
		case float64:
			ids = append(ids, decimal.NewFromFloat(id).String())
		}
	}
	return ids
}
