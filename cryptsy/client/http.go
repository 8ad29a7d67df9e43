package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/betbot/cryptsy/cryptsy/signing"
	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/pkg/logger"
	sdkhttp "github.com/betbot/cryptsy/pkg/sdk/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PublicQuery calls a public method and returns the decoded top level
// object unchanged. marketID is appended when non-nil.
func (c *Client) PublicQuery(ctx context.Context, method string, marketID *int) (types.Value, error) {
	body, status, err := c.publicRaw(ctx, method, marketID)
	if err != nil {
		return nil, err
	}
	return decodeValue(method, status, body)
}

// PrivateQuery signs and posts a private method with params and returns
// the decoded top level object unchanged. params is not modified.
func (c *Client) PrivateQuery(ctx context.Context, method string, params url.Values) (types.Value, error) {
	body, status, err := c.privateRaw(ctx, method, params)
	if err != nil {
		return nil, err
	}
	return decodeValue(method, status, body)
}

// private posts a private method and decodes the result envelope.
func (c *Client) private(ctx context.Context, method string, params url.Values) (*types.Result, error) {
	body, status, err := c.privateRaw(ctx, method, params)
	if err != nil {
		return nil, err
	}
	res, err := types.ParseResult(body)
	if err != nil {
		return nil, newDecodeError(method, status, body, err)
	}
	if res.Raw == nil {
		return nil, newDecodeError(method, status, body, errNullBody)
	}
	return res, nil
}

func (c *Client) publicRaw(ctx context.Context, method string, marketID *int) ([]byte, int, error) {
	endpoint := c.publicURL + "?method=" + url.QueryEscape(method)
	if marketID != nil {
		endpoint += "&marketid=" + strconv.Itoa(*marketID)
	}

	resp, err := c.send(ctx, method, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	return resp.Body(), resp.StatusCode(), nil
}

func (c *Client) privateRaw(ctx context.Context, method string, params url.Values) ([]byte, int, error) {
	if c.creds.Empty() {
		return nil, 0, invalidArgument("%s: private method called without credentials", method)
	}

	signed := signing.SignForm(c.creds, method, params, c.nonces.Next())
	resp, err := c.send(ctx, method, http.MethodPost, c.privateURL, &sdkhttp.RequestOptions{
		Headers: signed.Headers,
		Form:    &signed.Body,
	})
	if err != nil {
		return nil, 0, err
	}
	return resp.Body(), resp.StatusCode(), nil
}

func (c *Client) send(ctx context.Context, method, httpMethod, endpoint string, opt *sdkhttp.RequestOptions) (*resty.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var trace *logrus.Entry
	if httpDebug && logger.IsDebug() {
		trace = logger.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     method,
			"http":       httpMethod,
		})
	}

	start := time.Now()
	resp, err := c.http.DoRequest(ctx, httpMethod, endpoint, opt)
	if err != nil {
		if trace != nil {
			trace.WithField("duration", time.Since(start)).Debug("request failed")
		}
		return nil, &TransportError{Method: method, Err: err}
	}
	if trace != nil {
		trace.WithFields(logrus.Fields{
			"status":   resp.StatusCode(),
			"duration": time.Since(start),
		}).Debug("request done")
	}
	return resp, nil
}

// decodeValue requires the body to be a JSON object. Non-2xx responses
// with a JSON body are returned as data like any other.
func decodeValue(method string, status int, body []byte) (types.Value, error) {
	var v types.Value
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, newDecodeError(method, status, body, err)
	}
	if v == nil {
		return nil, newDecodeError(method, status, body, errNullBody)
	}
	return v, nil
}
