package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req, _ := http.NewRequest("GET", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	CORSMiddleware(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.fortimeet.example")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req, _ := http.NewRequest("GET", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	CORSMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, "https://app.fortimeet.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewarePreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req, _ := http.NewRequest("OPTIONS", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	CORSMiddleware(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestLoggerPreservesStatusCode(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req, _ := http.NewRequest("GET", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	RequestLogger(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestTimeoutMiddlewareCompletesInTime(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	TimeoutMiddleware(time.Second)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTimeoutMiddlewareTimesOut(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// block until the middleware cancels the request context
		<-r.Context().Done()
	})

	req, _ := http.NewRequest("GET", "/api/meetings", nil)
	rr := httptest.NewRecorder()

	TimeoutMiddleware(10 * time.Millisecond)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
	assert.Contains(t, rr.Body.String(), "request timeout")
}
