package types

import "github.com/shopspring/decimal"

// AccountInfo is the answer of getinfo.
type AccountInfo struct {
	BalancesAvailable map[string]decimal.Decimal `json:"balances_available"`
	BalancesHold      map[string]decimal.Decimal `json:"balances_hold"`
	ServerTimestamp   int64                      `json:"servertimestamp"`
	ServerTimezone    string                     `json:"servertimezone"`
	ServerDatetime    string                     `json:"serverdatetime"`
	OpenOrderCount    int                        `json:"openordercount"`
}

// Transaction is a deposit or a withdrawal (mytransactions).
type Transaction struct {
	Currency  string          `json:"currency"`
	Timestamp string          `json:"timestamp"`
	Datetime  string          `json:"datetime"`
	Timezone  string          `json:"timezone"`
	Type      string          `json:"type"`
	Address   string          `json:"address"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	TrxID     string          `json:"trxid"`
}

// Transfer is a transfer between exchange accounts (mytransfers).
type Transfer struct {
	Currency           string          `json:"currency"`
	RequestTimestamp   string          `json:"request_timestamp"`
	Processed          Flag            `json:"processed"`
	ProcessedTimestamp string          `json:"processed_timestamp"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	Quantity           decimal.Decimal `json:"quantity"`
	Direction          string          `json:"direction"`
}

// WalletStatus describes the exchange hot wallet of one currency
// (getwalletstatus).
type WalletStatus struct {
	CurrencyID    string          `json:"currencyid"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	BlockCount    string          `json:"blockcount"`
	Difficulty    string          `json:"difficulty"`
	Version       string          `json:"version"`
	PeerCount     string          `json:"peercount"`
	HashRate      string          `json:"hashrate"`
	GitRepo       string          `json:"gitrepo"`
	WithdrawalFee decimal.Decimal `json:"withdrawalfee"`
	LastUpdate    string          `json:"lastupdate"`
}

// NewAddress is the answer of generatenewaddress.
type NewAddress struct {
	Address string `json:"address"`
}
