package mockexchange

// Canned bodies modelled on real exchange answers. Numbers come back as
// strings, like the live API does.
var defaultPublic = map[string]string{
	"marketdata": `{"success":1,"return":{"markets":{"LTC":{"marketid":"3","label":"LTC/BTC","lasttradeprice":"0.02510000","volume":"1520.1","lasttradetime":"2014-01-20 10:12:00","primaryname":"LiteCoin","primarycode":"LTC","secondaryname":"BitCoin","secondarycode":"BTC","recenttrades":[],"sellorders":[],"buyorders":[]}}}}`,
	"marketdatav2": `{"success":1,"return":{"markets":{"LTC/BTC":{"marketid":"3","label":"LTC/BTC","lasttradeprice":"0.02510000","volume":"1520.1","primarycode":"LTC","secondarycode":"BTC"}}}}`,
	"singlemarketdata": `{"success":1,"return":{"markets":{"LTC":{"marketid":"3","label":"LTC/BTC","lasttradeprice":"0.02510000"}}}}`,
	"orderdata": `{"success":1,"return":{"LTC":{"marketid":"3","label":"LTC/BTC","sellorders":[{"price":"0.02520000","quantity":"3.0","total":"0.0756"}],"buyorders":[{"price":"0.02500000","quantity":"2.0","total":"0.05"}]}}}`,
	"singleorderdata": `{"success":1,"return":{"LTC":{"marketid":"3","label":"LTC/BTC","sellorders":[{"price":"0.02520000","quantity":"3.0","total":"0.0756"}],"buyorders":[]}}}`,
}

var defaultPrivate = map[string]string{
	"getinfo":            `{"success":"1","return":{"balances_available":{"BTC":"1.50000000","LTC":"20.00000000"},"balances_hold":{"BTC":"0.10000000"},"servertimestamp":1390000000,"servertimezone":"EST","serverdatetime":"2014-01-17 18:06:40","openordercount":2}}`,
	"getmarkets":         `{"success":"1","return":[{"marketid":"3","label":"LTC/BTC","primary_currency_code":"LTC","primary_currency_name":"LiteCoin","secondary_currency_code":"BTC","secondary_currency_name":"BitCoin","current_volume":"1520.1","last_trade":"0.02510000","high_trade":"0.02600000","low_trade":"0.02400000","created":"2013-06-01 00:00:00"}]}`,
	"mytransactions":     `{"success":"1","return":[{"currency":"BTC","timestamp":"1389000000","datetime":"2014-01-06 04:20:00","timezone":"EST","type":"Deposit","address":"1BoatSLRHtKNngkdXEeobR76b53LETtpyT","amount":"0.50000000","fee":"0.00000000","trxid":"abc"}]}`,
	"markettrades":       `{"success":"1","return":[{"tradeid":"901","datetime":"2014-01-20 10:12:00","tradeprice":"0.02510000","quantity":"1.00000000","total":"0.02510000","initiate_ordertype":"Buy"}]}`,
	"marketorders":       `{"success":"1","return":{"sellorders":[{"sellprice":"0.02520000","quantity":"3.00000000","total":"0.07560000"}],"buyorders":[{"buyprice":"0.02500000","quantity":"2.00000000","total":"0.05000000"}]}}`,
	"mytrades":           `{"success":"1","return":[{"tradeid":"77","tradetype":"Buy","datetime":"2014-01-19 09:00:00","tradeprice":"0.02500000","quantity":"2.00000000","fee":"0.00010000","total":"0.05000000","initiate_ordertype":"Buy","order_id":"41"}]}`,
	"allmytrades":        `{"success":"1","return":[{"tradeid":"77","tradetype":"Buy","datetime":"2014-01-19 09:00:00","marketid":"3","tradeprice":"0.02500000","quantity":"2.00000000","fee":"0.00010000","total":"0.05000000","initiate_ordertype":"Buy","order_id":"41"}]}`,
	"myorders":           `{"success":"1","return":[{"orderid":"5","created":"2014-01-20 11:00:00","ordertype":"Sell","price":"0.03000000","quantity":"1.00000000","orig_quantity":"1.00000000","total":"0.03000000"}]}`,
	"allmyorders":        `{"success":"1","return":[{"orderid":"5","marketid":"3","created":"2014-01-20 11:00:00","ordertype":"Sell","price":"0.03000000","quantity":"1.00000000","orig_quantity":"1.00000000","total":"0.03000000"}]}`,
	"depth":              `{"success":"1","return":{"sell":[["0.02520000","3.00000000"]],"buy":[["0.02500000","2.00000000"]]}}`,
	"createorder":        `{"success":"1","orderid":"123","moreinfo":"Your order has been placed."}`,
	"cancelorder":        `{"success":"1","return":"Your order #5 has been cancelled."}`,
	"cancelmarketorders": `{"success":"1","return":[{"orderid":"5"}]}`,
	"cancelallorders":    `{"success":1,"return":[{"orderid":"5"}]}`,
	"calculatefees":      `{"success":"1","return":{"fee":"0.00005000","net":"0.02515000"}}`,
	"generatenewaddress": `{"success":"1","return":{"address":"LQ3B36Yv2rBTxdgAdYpU2UcEZsaNwXeATk"}}`,
	"mytransfers":        `{"success":"1","return":[{"currency":"BTC","request_timestamp":"2014-01-10 10:00:00","processed":"1","processed_timestamp":"2014-01-10 10:05:00","from":"alice","to":"bob","quantity":"0.10000000","direction":"out"}]}`,
	"getwalletstatus":    `{"success":"1","return":[{"currencyid":"3","name":"BitCoin","code":"BTC","blockcount":"280000","difficulty":"1418481395.26","version":"80600","peercount":"8","hashrate":"10000000","gitrepo":"https://github.com/bitcoin/bitcoin","withdrawalfee":"0.00050000","lastupdate":"2014-01-20 12:00:00"}]}`,
	"makewithdrawal":     `{"success":"1","return":"Withdrawal queued."}`,
}

const (
	authFailed    = `{"success":0,"error":"Unable to Authorize Request - Check Your Post Data"}`
	nonceTooLow   = `{"success":0,"error":"Nonce must be greater than the last nonce used"}`
	unknownMethod = `{"success":0,"error":"Unknown method"}`
)
