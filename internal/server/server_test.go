package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/store"
	"github.com/Xunop/e-livraria/internal/version"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testHandler() http.Handler {
	config.GetDefaultOptions()
	s := store.NewStoreFromBooks([]model.Book{{ID: "b1", Title: "Dom Casmurro", Price: decimal.NewFromInt(25)}})
	return setupHandler(s, session.NewManager(time.Hour), nil)
}

func TestHealthcheck(t *testing.T) {
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestVersion(t *testing.T) {
	h := testHandler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, version.GetCurrentVersion(), w.Body.String())
}

func TestAPIMounted(t *testing.T) {
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/b1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dom Casmurro")

	w = httptest.NewRecorder()
	testHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/books", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
