package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRequestFormVerbatim(t *testing.T) {
	var gotBody, gotType, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		gotKey = r.Header.Get("Key")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	form := "method=getinfo&nonce=1&z=%2B"
	resp, err := c.DoRequest(context.Background(), http.MethodPost, srv.URL, &RequestOptions{
		Headers: map[string]string{"Key": "abc"},
		Form:    &form,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, form, gotBody)
	assert.Equal(t, "application/x-www-form-urlencoded", gotType)
	assert.Equal(t, "abc", gotKey)
}

func TestDoRequestKeepsQueryOrder(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Options{})
	_, err := c.DoRequest(context.Background(), http.MethodGet, srv.URL+"/api.php?method=singlemarketdata&marketid=3", nil)
	require.NoError(t, err)
	assert.Equal(t, "method=singlemarketdata&marketid=3", gotQuery)
}

func TestDoRequestNoRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Options{})
	resp, err := c.DoRequest(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(1), hits.Load())
}

func TestDoRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(Options{Timeout: 20 * time.Millisecond})
	_, err := c.DoRequest(context.Background(), http.MethodGet, srv.URL, nil)
	assert.Error(t, err)
}

func TestDoRequestUnsupportedMethod(t *testing.T) {
	c := NewClient(Options{})
	_, err := c.DoRequest(context.Background(), http.MethodDelete, "http://127.0.0.1:1", nil)
	assert.EqualError(t, err, "unsupported method: DELETE")
}
