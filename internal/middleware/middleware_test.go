package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoSession(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(request.GetSessionID(r)))
}

func TestHandleSessionIssuesAndReusesCookie(t *testing.T) {
	m := NewMiddleware(session.NewManager(time.Hour), time.Hour)
	handler := m.HandleSession(http.HandlerFunc(echoSession))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, cookies[0].Value, w.Body.String())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, r)
	assert.Equal(t, cookies[0].Value, w2.Body.String())

	r = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	w3 := httptest.NewRecorder()
	handler.ServeHTTP(w3, r)
	assert.NotEqual(t, "forged", w3.Body.String())
	assert.NotEqual(t, cookies[0].Value, w3.Body.String())
}

func TestHandleSessionStoresSession(t *testing.T) {
	m := NewMiddleware(session.NewManager(time.Hour), time.Hour)
	var got *session.Session
	handler := m.HandleSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(request.SessionContextKey).(*session.Session)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, got)
	assert.NotEmpty(t, got.ID)
}

func TestHandleCORS(t *testing.T) {
	m := NewMiddleware(session.NewManager(time.Hour), time.Hour)
	called := false
	handler := m.HandleCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/books", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.False(t, called, "preflight must not reach the handler")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/books", nil))
	assert.True(t, called)
}

func TestLoggingRequestStoresClientIP(t *testing.T) {
	m := NewMiddleware(session.NewManager(time.Hour), time.Hour)
	var ip string
	handler := m.LoggingRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = request.ClientIP(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestRecover(t *testing.T) {
	m := NewMiddleware(session.NewManager(time.Hour), time.Hour)
	handler := m.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "198.51.100.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.2:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, rl.allow("client"))
	}
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.allow("a")
	rl.prune(time.Now().Add(2 * limiterIdleTimeout))
	assert.Empty(t, rl.visitors)
}
