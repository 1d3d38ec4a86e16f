package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	code := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, code("10.0.0.1:1000"))
	// The port changes per connection, the host is the key.
	assert.Equal(t, http.StatusOK, code("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, code("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, code("10.0.0.2:1000"))
	assert.Equal(t, http.StatusOK, code("no-port"))
}
