package client

const (
	DefaultPublicURL  = "http://pubapi.cryptsy.com/api.php"
	DefaultPrivateURL = "https://www.cryptsy.com/api"
)

// Public API methods.
const (
	MethodMarketData       = "marketdata"
	MethodMarketDataV2     = "marketdatav2"
	MethodSingleMarketData = "singlemarketdata"
	MethodOrderData        = "orderdata"
	MethodSingleOrderData  = "singleorderdata"
)

// Private API methods.
const (
	MethodGetInfo            = "getinfo"
	MethodGetMarkets         = "getmarkets"
	MethodMyTransactions     = "mytransactions"
	MethodMarketTrades       = "markettrades"
	MethodMarketOrders       = "marketorders"
	MethodMyTrades           = "mytrades"
	MethodAllMyTrades        = "allmytrades"
	MethodMyOrders           = "myorders"
	MethodAllMyOrders        = "allmyorders"
	MethodDepth              = "depth"
	MethodCreateOrder        = "createorder"
	MethodCancelOrder        = "cancelorder"
	MethodCancelMarketOrders = "cancelmarketorders"
	MethodCancelAllOrders    = "cancelallorders"
	MethodCalculateFees      = "calculatefees"
	MethodGenerateNewAddress = "generatenewaddress"
	MethodMyTransfers        = "mytransfers"
	MethodGetWalletStatus    = "getwalletstatus"
	MethodMakeWithdrawal     = "makewithdrawal"
)

// DefaultMyTradesLimit is the limit sent by MyTrades when none is given.
const DefaultMyTradesLimit = 20000
