package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/betbot/cryptsy/cryptsy/signing"
	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/internal/mockexchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = types.Credentials{Key: "test-public-key", Secret: "test-secret"}

func newTestClient(t *testing.T) (*Client, *mockexchange.Exchange) {
	t.Helper()
	ex := mockexchange.New(testCreds)
	srv := httptest.NewServer(ex.Handler())
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		Credentials: testCreds,
		PublicURL:   srv.URL + mockexchange.PublicPath,
		PrivateURL:  srv.URL + mockexchange.PrivatePath,
		Timeout:     5 * time.Second,
	})
	return c, ex
}

func TestNewClientDefaults(t *testing.T) {
	c := New("k", "s")
	assert.Equal(t, DefaultPublicURL, c.PublicURL())
	assert.Equal(t, DefaultPrivateURL, c.PrivateURL())
	assert.Equal(t, "k", c.Key())
}

func TestPublicMarketDataNoMarketID(t *testing.T) {
	c, ex := newTestClient(t)
	ex.SetPublicResponse("marketdata", `{"success":1,"return":{"markets":{"LTC":{"marketid":"3"}}},"extra":[1,2]}`)

	v, err := c.MarketData(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, types.Value{
		"success": float64(1),
		"return": map[string]any{
			"markets": map[string]any{"LTC": map[string]any{"marketid": "3"}},
		},
		"extra": []any{float64(1), float64(2)},
	}, v)

	calls := ex.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, mockexchange.PublicPath, calls[0].Path)
	assert.Equal(t, url.Values{"method": {"marketdata"}}, calls[0].Query)
}

func TestPublicQueryURL(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotSign string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get(signing.HeaderKey)
		gotSign = r.Header.Get(signing.HeaderSign)
		w.Write([]byte(`{"success":1}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Credentials: testCreds, PublicURL: srv.URL + "/api.php"})

	_, err := c.MarketData(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "/api.php", gotPath)
	assert.Equal(t, "method=marketdata", gotQuery)

	_, err = c.SingleMarketData(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "method=singlemarketdata&marketid=3", gotQuery)

	assert.Empty(t, gotKey)
	assert.Empty(t, gotSign)
}

func TestPublicMethodSelection(t *testing.T) {
	c, ex := newTestClient(t)
	ctx := context.Background()
	market := 3

	_, err := c.MarketData(ctx, true)
	require.NoError(t, err)
	_, err = c.OrderBookData(ctx, nil)
	require.NoError(t, err)
	_, err = c.OrderBookData(ctx, &market)
	require.NoError(t, err)

	calls := ex.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "marketdatav2", calls[0].APIMethod)
	assert.Equal(t, "orderdata", calls[1].APIMethod)
	assert.Empty(t, calls[1].Query.Get("marketid"))
	assert.Equal(t, "singleorderdata", calls[2].APIMethod)
	assert.Equal(t, "3", calls[2].Query.Get("marketid"))
}

func TestPrivateQuerySignature(t *testing.T) {
	c, ex := newTestClient(t)

	tests := []struct {
		method string
		params url.Values
	}{
		{"getinfo", nil},
		{"mytrades", url.Values{"marketid": {"3"}, "limit": {"10"}}},
		{"makewithdrawal", url.Values{"address": {"1Ab+/= &x"}, "amount": {"0.1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			_, err := c.PrivateQuery(context.Background(), tt.method, tt.params)
			require.NoError(t, err)

			calls := ex.Calls()
			last := calls[len(calls)-1]

			assert.True(t, last.Authorized)
			assert.Equal(t, testCreds.Key, last.Key)
			assert.Equal(t, signing.Sign(testCreds.Secret, last.Body), last.Sign)
			assert.Equal(t, tt.method, last.Form.Get("method"))
			assert.NotEmpty(t, last.Form.Get("nonce"))
			for k, v := range tt.params {
				assert.Equal(t, v, last.Form[k])
			}
		})
	}
}

func TestPrivateQueryDoesNotMutateParams(t *testing.T) {
	c, _ := newTestClient(t)
	params := url.Values{"marketid": {"3"}}

	_, err := c.PrivateQuery(context.Background(), "depth", params)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"marketid": {"3"}}, params)
}

func TestNonceNonDecreasing(t *testing.T) {
	c, ex := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		res, err := c.Info(ctx)
		require.NoError(t, err)
		require.True(t, bool(res.Success), "call %d rejected: %s", i, res.Error)
	}

	var last int64
	for _, call := range ex.Calls() {
		n, err := strconv.ParseInt(call.Form.Get("nonce"), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, last)
		last = n
	}
}

// Concurrent calls from one client may reach the exchange out of nonce
// order, so only signatures and nonce uniqueness are checked here.
func TestConcurrentPrivateCalls(t *testing.T) {
	c, ex := newTestClient(t)
	ctx := context.Background()

	const workers, perWorker = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				params := url.Values{"marketid": {strconv.Itoa(w)}}
				if _, err := c.PrivateQuery(ctx, MethodMarketOrders, params); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	calls := ex.Calls()
	require.Len(t, calls, workers*perWorker)
	seen := make(map[string]bool, len(calls))
	for _, call := range calls {
		assert.True(t, call.Authorized, "signature rejected for nonce %s", call.Form.Get("nonce"))
		nonce := call.Form.Get("nonce")
		assert.False(t, seen[nonce], "nonce %s sent twice", nonce)
		seen[nonce] = true
	}
}

func TestPrivateWithoutCredentials(t *testing.T) {
	ex := mockexchange.New(testCreds)
	srv := httptest.NewServer(ex.Handler())
	defer srv.Close()

	c := NewClient(Config{PrivateURL: srv.URL + mockexchange.PrivatePath})
	_, err := c.Info(context.Background())

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, ex.Calls())
}

func TestExchangeErrorIsData(t *testing.T) {
	ex := mockexchange.New(testCreds)
	srv := httptest.NewServer(ex.Handler())
	defer srv.Close()

	c := NewClient(Config{
		Credentials: types.Credentials{Key: testCreds.Key, Secret: "wrong"},
		PrivateURL:  srv.URL + mockexchange.PrivatePath,
	})

	res, err := c.Info(context.Background())
	require.NoError(t, err)
	assert.False(t, bool(res.Success))
	assert.Contains(t, res.Error, "Unable to Authorize")

	var apiErr *types.APIError
	assert.ErrorAs(t, res.Err(), &apiErr)
}

func TestDecodeError(t *testing.T) {
	c, ex := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		reply mockexchange.Reply
	}{
		{"html", mockexchange.Reply{Status: http.StatusBadGateway, Body: "<html>502</html>"}},
		{"truncated", mockexchange.Reply{Status: http.StatusOK, Body: `{"success":1,"return":[`}},
		{"empty", mockexchange.Reply{Status: http.StatusOK, Body: ""}},
		{"null", mockexchange.Reply{Status: http.StatusOK, Body: "null"}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/private", func(t *testing.T) {
			ex.FailNext("cancelallorders", tt.reply)
			_, err := c.CancelAllOrders(ctx)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
			assert.False(t, errors.Is(err, ErrTransport))

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, "cancelallorders", decErr.Method)
			assert.Equal(t, tt.reply.Status, decErr.StatusCode)
		})

		t.Run(tt.name+"/public", func(t *testing.T) {
			ex.FailNext("marketdata", tt.reply)
			_, err := c.MarketData(ctx, false)

			assert.ErrorIs(t, err, ErrDecode)
			assert.False(t, errors.Is(err, ErrTransport))
		})
	}
}

func TestNonSuccessStatusWithJSONIsData(t *testing.T) {
	c, ex := newTestClient(t)
	ex.FailNext("getinfo", mockexchange.Reply{Status: http.StatusInternalServerError, Body: `{"success":0,"error":"maintenance"}`})

	res, err := c.Info(context.Background())
	require.NoError(t, err)
	assert.False(t, bool(res.Success))
	assert.Equal(t, "maintenance", res.Error)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := NewClient(Config{Credentials: testCreds, PublicURL: addr + "/api.php", PrivateURL: addr + "/api"})

	_, err := c.MarketData(context.Background(), false)
	assert.ErrorIs(t, err, ErrTransport)

	_, err = c.CancelAllOrders(context.Background())
	assert.ErrorIs(t, err, ErrTransport)

	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "cancelallorders", tErr.Method)
	assert.NotContains(t, err.Error(), testCreds.Secret)
}

func TestContextCancelled(t *testing.T) {
	c, ex := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Info(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ex.Calls())
}

func TestInProcessTransport(t *testing.T) {
	ex := mockexchange.New(testCreds)
	c := NewClient(Config{
		Credentials: testCreds,
		PublicURL:   "http://exchange.invalid" + mockexchange.PublicPath,
		PrivateURL:  "http://exchange.invalid" + mockexchange.PrivatePath,
		Transport:   ex.Transport(),
	})

	res, err := c.CancelAllOrders(context.Background())
	require.NoError(t, err)
	assert.True(t, bool(res.Success))
	assert.Equal(t, 1, ex.CallCount("cancelallorders"))
}
