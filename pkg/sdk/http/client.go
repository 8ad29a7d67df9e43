package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const userAgent = "cryptsy-go"

// Client 公共和私有接口共用的 resty 封装。
// 不做重试，请求失败直接返回给调用方。
type Client struct {
	client *resty.Client
}

// Options 客户端选项，零值使用 transport 默认值
type Options struct {
	Timeout   time.Duration
	ProxyURL  string
	Transport http.RoundTripper
}

func NewClient(opts Options) *Client {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	// resty 会自动从环境变量读取代理配置（HTTP_PROXY, HTTPS_PROXY, NO_PROXY），显式代理优先
	if opts.ProxyURL != "" {
		client.SetProxy(opts.ProxyURL)
	}

	return &Client{client: client}
}

type RequestOptions struct {
	Headers map[string]string
	// Form 原样作为 application/x-www-form-urlencoded 请求体发送，
	// 保证发送的字节与签名的字节完全一致
	Form *string
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	r := c.client.R()
	if ctx != nil {
		r.SetContext(ctx)
	}
	r.SetHeader("Accept", "application/json")
	return r
}

// DoRequest 向完整 URL 发送一次请求，返回已读取 body 的响应
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, opt *RequestOptions) (*resty.Response, error) {
	rc := c.newRequest(ctx)
	if opt != nil {
		for k, v := range opt.Headers {
			rc.SetHeader(k, v)
		}
		if opt.Form != nil {
			rc.SetHeader("Content-Type", "application/x-www-form-urlencoded")
			rc.SetBody(*opt.Form)
		}
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		return rc.Get(endpoint)
	case http.MethodPost:
		return rc.Post(endpoint)
	default:
		return nil, errors.Errorf("unsupported method: %s", method)
	}
}
