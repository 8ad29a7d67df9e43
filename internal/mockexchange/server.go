// Package mockexchange is an in-process fake of the exchange API. It checks
// signatures and nonces like the real service, records every call and
// serves canned answers, so tests and dry runs never touch the network.
package mockexchange

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/betbot/cryptsy/cryptsy/signing"
	"github.com/betbot/cryptsy/cryptsy/types"

	"github.com/gin-gonic/gin"
)

const (
	PublicPath  = "/api.php"
	PrivatePath = "/api"
)

// Call is one request as the exchange saw it.
type Call struct {
	Path      string
	APIMethod string
	Query     url.Values
	Form      url.Values
	Body      string
	Key       string
	Sign      string
	// Authorized is true when Key matched and Sign verified.
	Authorized bool
}

// Reply is a raw answer, used for error injection.
type Reply struct {
	Status int
	Body   string
}

// Exchange is the fake. The zero value is not usable; call New.
type Exchange struct {
	mu sync.Mutex

	creds     types.Credentials
	public    map[string]string
	private   map[string]string
	failNext  map[string]Reply
	calls     []Call
	lastNonce int64

	router *gin.Engine
}

// New returns a fake that accepts requests signed with creds.
func New(creds types.Credentials) *Exchange {
	e := &Exchange{
		creds:    creds,
		public:   make(map[string]string, len(defaultPublic)),
		private:  make(map[string]string, len(defaultPrivate)),
		failNext: make(map[string]Reply),
	}
	for k, v := range defaultPublic {
		e.public[k] = v
	}
	for k, v := range defaultPrivate {
		e.private[k] = v
	}
	e.router = e.newRouter()
	return e
}

func (e *Exchange) newRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(PublicPath, e.handlePublic)
	r.POST(PrivatePath, e.handlePrivate)
	return r
}

// Handler serves the fake API.
func (e *Exchange) Handler() http.Handler {
	return e.router
}

// Transport returns a RoundTripper that answers from the fake without
// opening a socket. Scheme and host of the request are ignored.
func (e *Exchange) Transport() http.RoundTripper {
	return roundTripper{handler: e.router}
}

// SetPublicResponse replaces the canned body of a public method.
func (e *Exchange) SetPublicResponse(method, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.public[method] = body
}

// SetPrivateResponse replaces the canned body of a private method.
func (e *Exchange) SetPrivateResponse(method, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.private[method] = body
}

// FailNext makes the next call of method answer with reply, once.
func (e *Exchange) FailNext(method string, reply Reply) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext[method] = reply
}

// Calls returns a copy of the calls seen so far, oldest first.
func (e *Exchange) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// CallCount returns how many times method was called.
func (e *Exchange) CallCount(method string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.calls {
		if c.APIMethod == method {
			n++
		}
	}
	return n
}

func (e *Exchange) handlePublic(c *gin.Context) {
	query := c.Request.URL.Query()
	method := query.Get("method")

	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, Call{
		Path:      PublicPath,
		APIMethod: method,
		Query:     query,
		Key:       c.GetHeader(signing.HeaderKey),
		Sign:      c.GetHeader(signing.HeaderSign),
	})

	if reply, ok := e.takeFailure(method); ok {
		writeRaw(c, reply)
		return
	}
	body, ok := e.public[method]
	if !ok {
		body = unknownMethod
	}
	writeRaw(c, Reply{Status: http.StatusOK, Body: body})
}

func (e *Exchange) handlePrivate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	body := string(raw)
	form, err := url.ParseQuery(body)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	call := Call{
		Path:      PrivatePath,
		APIMethod: form.Get("method"),
		Form:      form,
		Body:      body,
		Key:       c.GetHeader(signing.HeaderKey),
		Sign:      c.GetHeader(signing.HeaderSign),
	}
	call.Authorized = call.Key == e.creds.Key && signing.Verify(e.creds.Secret, body, call.Sign)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, call)

	if !call.Authorized {
		writeRaw(c, Reply{Status: http.StatusOK, Body: authFailed})
		return
	}

	nonce, err := strconv.ParseInt(form.Get("nonce"), 10, 64)
	if err != nil || nonce <= e.lastNonce {
		writeRaw(c, Reply{Status: http.StatusOK, Body: nonceTooLow})
		return
	}
	e.lastNonce = nonce

	if reply, ok := e.takeFailure(call.APIMethod); ok {
		writeRaw(c, reply)
		return
	}
	answer, ok := e.private[call.APIMethod]
	if !ok {
		answer = unknownMethod
	}
	writeRaw(c, Reply{Status: http.StatusOK, Body: answer})
}

// takeFailure must be called with mu held.
func (e *Exchange) takeFailure(method string) (Reply, bool) {
	reply, ok := e.failNext[method]
	if ok {
		delete(e.failNext, method)
	}
	return reply, ok
}

func writeRaw(c *gin.Context, reply Reply) {
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	c.Data(status, "application/json", []byte(reply.Body))
}

type roundTripper struct {
	handler http.Handler
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}
	rec := httptest.NewRecorder()
	rt.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
