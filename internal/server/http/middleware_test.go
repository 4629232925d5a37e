package http

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	a := newTestAPI(t, Settings{CORSAllowedOrigins: []string{"http://localhost:3000"}})

	w := a.do(t, http.MethodOptions, "/api/login", nil, func(r *http.Request) { r.Header.Set("Origin", "http://localhost:3000") })
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = a.do(t, http.MethodGet, "/healthz", nil, func(r *http.Request) { r.Header.Set("Origin", "http://evil.example") })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	a := newTestAPI(t, Settings{RequestsPerMinute: 10})

	// burst is a tenth of the per-minute budget
	w := a.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_NilAllowsAll(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0))
	a := newTestAPI(t, Settings{})
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/healthz", nil, nil).Code)
	}
}

func TestRequestID(t *testing.T) {
	a := newTestAPI(t, Settings{})

	w := a.do(t, http.MethodGet, "/healthz", nil, func(r *http.Request) { r.Header.Set("X-Request-ID", "req-1") })
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = a.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	a := newTestAPI(t, Settings{})
	s := &HTTPServer{engine: a.router, logger: logging.Discard()}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
