package client

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/betbot/cryptsy/cryptsy/signing"
	"github.com/betbot/cryptsy/cryptsy/types"
	sdkhttp "github.com/betbot/cryptsy/pkg/sdk/http"
)

// httpDebug enables request tracing at debug level (CRYPTSY_HTTP_DEBUG=1).
// Only the method, status, duration and a request id are traced.
var httpDebug = os.Getenv("CRYPTSY_HTTP_DEBUG") != ""

// Config is everything a Client needs. Only Credentials are required, and
// only for private calls.
type Config struct {
	Credentials types.Credentials
	PublicURL   string
	PrivateURL  string
	// Timeout bounds a whole round trip. Zero leaves it to the transport
	// and to the caller's context.
	Timeout   time.Duration
	ProxyURL  string
	Transport http.RoundTripper
}

// Client talks to the exchange. It holds no connection state of its own
// and is safe for concurrent use.
type Client struct {
	publicURL  string
	privateURL string
	creds      types.Credentials
	http       *sdkhttp.Client
	nonces     *signing.NonceSource
}

// NewClient builds a client from cfg, filling in the production URLs.
func NewClient(cfg Config) *Client {
	publicURL := strings.TrimSpace(cfg.PublicURL)
	if publicURL == "" {
		publicURL = DefaultPublicURL
	}
	privateURL := strings.TrimSpace(cfg.PrivateURL)
	if privateURL == "" {
		privateURL = DefaultPrivateURL
	}

	return &Client{
		publicURL:  publicURL,
		privateURL: privateURL,
		creds:      cfg.Credentials,
		http: sdkhttp.NewClient(sdkhttp.Options{
			Timeout:   cfg.Timeout,
			ProxyURL:  cfg.ProxyURL,
			Transport: cfg.Transport,
		}),
		nonces: signing.NewNonceSource(),
	}
}

// New is shorthand for a production client with the given key pair.
func New(key, secret string) *Client {
	return NewClient(Config{Credentials: types.Credentials{Key: key, Secret: secret}})
}

// PublicURL returns the public endpoint in use.
func (c *Client) PublicURL() string {
	return c.publicURL
}

// PrivateURL returns the private endpoint in use.
func (c *Client) PrivateURL() string {
	return c.privateURL
}

// Key returns the public half of the credentials.
func (c *Client) Key() string {
	return c.creds.Key
}
